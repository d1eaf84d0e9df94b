// Package mpclient provides the entry points for creating marketplace API clients.
package mpclient

import (
	"fmt"
	"strings"

	"github.com/fairground-io/mpapi/internal/client"
	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// New creates a Data API client from config.
func New(config *mpapi.Config) (mpapi.Client, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	dataClient, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create data client: %w", err)
	}

	return dataClient, nil
}

// NewSearch creates a Search API client from config.
func NewSearch(config *mpapi.Config) (mpapi.SearchClient, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	searchClient, err := client.NewSearch(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return searchClient, nil
}

// normalize validates the config and canonicalizes the endpoint: trailing
// slash trimmed, https assumed when no scheme is given.
func normalize(config *mpapi.Config) (*mpapi.Config, error) {
	if config == nil {
		return nil, mpapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, mpapi.ErrEndpointRequired
	}

	endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	normalized := *config
	normalized.APIEndpoint = endpoint

	return &normalized, nil
}
