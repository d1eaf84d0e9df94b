package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fairground-io/mpapi/internal/constants"
	"github.com/fairground-io/mpapi/pkg/mpapi"
	"github.com/fairground-io/mpapi/pkg/mpclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// CreateClient builds a Data API client from the effective configuration
// (flags, environment, config file).
func CreateClient() (mpapi.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, mpapi.ErrNoEndpointConfigured
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, fmt.Errorf("%w: run 'mp login' or pass --token", mpapi.ErrNotAuthenticated)
	}

	config := &mpapi.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
		UpdatedBy:   viper.GetString("updated_by"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZerologAdapter()
	}

	client, err := mpclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// CreateSearchClient builds a Search API client from the effective
// configuration. The search endpoint and token are independent of the Data
// API's.
func CreateSearchClient() (mpapi.SearchClient, error) {
	endpoint := viper.GetString("search_api")
	if endpoint == "" {
		return nil, fmt.Errorf("%w: set --search-api or search_api in the config file", mpapi.ErrNoEndpointConfigured)
	}

	config := &mpapi.Config{
		APIEndpoint: endpoint,
		AccessToken: viper.GetString("search_token"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZerologAdapter()
	}

	client, err := mpclient.NewSearch(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// saveConfig persists the current viper settings to the config file, creating
// it on first use.
func saveConfig() error {
	err := viper.WriteConfig()
	if err == nil {
		return nil
	}

	// No config file yet: write the default one.
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".mp")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = viper.WriteConfigAs(configPath)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return os.Chmod(configPath, constants.ConfigFilePerm)
}

// collectPages drains a page iterator, optionally stopping after maxItems.
// Zero means no limit.
func collectPages[T any](iterator *mpapi.PageIterator[T], maxItems int) ([]T, error) {
	var items []T

	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)

		if maxItems > 0 && len(items) >= maxItems {
			break
		}
	}

	return items, nil
}
