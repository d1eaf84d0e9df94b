// Package client implements the mpapi.Client and mpapi.SearchClient
// interfaces. Every method is a mechanical composition of the shared request
// executor in internal/http.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fairground-io/mpapi/internal/auth"
	"github.com/fairground-io/mpapi/internal/constants"
	"github.com/fairground-io/mpapi/internal/http"
	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// Client implements the mpapi.Client interface for the Data API.
type Client struct {
	httpClient *http.Client
	tokens     auth.TokenManager
	baseURL    string
	updatedBy  string
	logger     mpapi.Logger

	services    mpapi.ServicesClient
	suppliers   mpapi.SuppliersClient
	users       mpapi.UsersClient
	frameworks  mpapi.FrameworksClient
	briefs      mpapi.BriefsClient
	auditEvents mpapi.AuditEventsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *mpapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a Data API client.
func New(config *mpapi.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, mpapi.ErrEndpointRequired
	}

	tokens := auth.NewStaticTokenManager(config.AccessToken)
	httpClient := http.NewClient(config.APIEndpoint, tokens, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		tokens:     tokens,
		baseURL:    config.APIEndpoint,
		updatedBy:  config.UpdatedBy,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.services = NewServicesClient(c.httpClient, c.updatedBy)
	c.suppliers = NewSuppliersClient(c.httpClient, c.updatedBy)
	c.users = NewUsersClient(c.httpClient, c.updatedBy)
	c.frameworks = NewFrameworksClient(c.httpClient, c.updatedBy)
	c.briefs = NewBriefsClient(c.httpClient, c.updatedBy)
	c.auditEvents = NewAuditEventsClient(c.httpClient)
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.tokens.SetToken(token)
}

// GetStatus implements mpapi.Client.GetStatus.
func (c *Client) GetStatus(ctx context.Context) (*mpapi.Status, error) {
	return getStatus(ctx, c.httpClient)
}

// Services implements mpapi.Client.Services.
func (c *Client) Services() mpapi.ServicesClient {
	return c.services
}

// Suppliers implements mpapi.Client.Suppliers.
func (c *Client) Suppliers() mpapi.SuppliersClient {
	return c.suppliers
}

// Users implements mpapi.Client.Users.
func (c *Client) Users() mpapi.UsersClient {
	return c.users
}

// Frameworks implements mpapi.Client.Frameworks.
func (c *Client) Frameworks() mpapi.FrameworksClient {
	return c.frameworks
}

// Briefs implements mpapi.Client.Briefs.
func (c *Client) Briefs() mpapi.BriefsClient {
	return c.briefs
}

// AuditEvents implements mpapi.Client.AuditEvents.
func (c *Client) AuditEvents() mpapi.AuditEventsClient {
	return c.auditEvents
}

func getStatus(ctx context.Context, httpClient *http.Client) (*mpapi.Status, error) {
	resp, err := httpClient.Get(ctx, constants.APIPathStatus, nil)
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	var status mpapi.Status

	err = unmarshalResponse(resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing status response: %w", err)
	}

	return &status, nil
}

// unmarshalResponse decodes a 2xx response body. An empty body is legal and
// leaves out at its zero value; malformed JSON is surfaced to the caller.
func unmarshalResponse(body []byte, out interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	return json.Unmarshal(body, out)
}

// resolveUpdatedBy picks the per-call attribution or the client default.
// Mutating calls fail before any network I/O when neither is set.
func resolveUpdatedBy(perCall, fallback string) (string, error) {
	if perCall != "" {
		return perCall, nil
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", mpapi.ErrUpdatedByRequired
}
