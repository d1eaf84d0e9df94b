package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fairground-io/mpapi/internal/auth"
	"github.com/fairground-io/mpapi/internal/constants"
	"github.com/fairground-io/mpapi/internal/http"
	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// SearchAPIClient implements the mpapi.SearchClient interface. It talks to
// the Search API, which shares the Data API's auth, pagination, and error
// conventions but nests results under the "documents" key.
type SearchAPIClient struct {
	httpClient *http.Client
	tokens     auth.TokenManager
	baseURL    string
}

// NewSearch creates a Search API client.
func NewSearch(config *mpapi.Config) (*SearchAPIClient, error) {
	if config.APIEndpoint == "" {
		return nil, mpapi.ErrEndpointRequired
	}

	tokens := auth.NewStaticTokenManager(config.AccessToken)
	httpClient := http.NewClient(config.APIEndpoint, tokens, createHTTPClientOptions(config)...)

	return &SearchAPIClient{
		httpClient: httpClient,
		tokens:     tokens,
		baseURL:    config.APIEndpoint,
	}, nil
}

// GetStatus implements mpapi.SearchClient.GetStatus.
func (c *SearchAPIClient) GetStatus(ctx context.Context) (*mpapi.Status, error) {
	return getStatus(ctx, c.httpClient)
}

// Search runs a query against an index and returns the first page of hits.
func (c *SearchAPIClient) Search(ctx context.Context, indexName string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Document], error) {
	if indexName == "" {
		return nil, mpapi.ErrIndexNameRequired
	}

	return c.SearchWithPath(ctx, "/"+indexName+"/search", params)
}

// SearchWithPath fetches the result page at path; used by the pagination
// iterator to follow next links across result pages.
func (c *SearchAPIClient) SearchWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Document], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.Document](resp.Body, constants.ResourceKeyDocuments)
	if err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return page, nil
}

// ListWithPath implements mpapi.PageLister for search results.
func (c *SearchAPIClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Document], error) {
	return c.SearchWithPath(ctx, path, params)
}

// IndexDocument adds or replaces one document in an index.
func (c *SearchAPIClient) IndexDocument(ctx context.Context, indexName, documentID string, document mpapi.Document) error {
	if indexName == "" {
		return mpapi.ErrIndexNameRequired
	}

	path := fmt.Sprintf("/%s/documents/%s", indexName, documentID)
	body := mpapi.IndexRequest{Document: document}

	_, err := c.httpClient.Put(ctx, path, &body)
	if err != nil {
		return fmt.Errorf("indexing document: %w", err)
	}

	return nil
}

// DeleteDocument removes one document from an index. Deleting an absent
// document is not an error: the NotFound kind is swallowed here because the
// end state is the one the caller asked for.
func (c *SearchAPIClient) DeleteDocument(ctx context.Context, indexName, documentID string) error {
	if indexName == "" {
		return mpapi.ErrIndexNameRequired
	}

	path := fmt.Sprintf("/%s/documents/%s", indexName, documentID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		if mpapi.IsNotFound(err) {
			return nil
		}

		return fmt.Errorf("deleting document: %w", err)
	}

	return nil
}

// CreateIndex creates a search index with a named mapping.
func (c *SearchAPIClient) CreateIndex(ctx context.Context, indexName string, request *mpapi.CreateIndexRequest) error {
	if indexName == "" {
		return mpapi.ErrIndexNameRequired
	}

	_, err := c.httpClient.Put(ctx, "/"+indexName, request)
	if err != nil {
		return fmt.Errorf("creating index: %w", err)
	}

	return nil
}

// SetAlias points aliasName at a concrete index so searches can switch
// atomically between index generations.
func (c *SearchAPIClient) SetAlias(ctx context.Context, aliasName, target string) error {
	if aliasName == "" || target == "" {
		return mpapi.ErrIndexNameRequired
	}

	body := mpapi.SetAliasRequest{
		Type:      "alias",
		AliasName: aliasName,
		Target:    target,
	}

	_, err := c.httpClient.Put(ctx, "/"+aliasName, &body)
	if err != nil {
		return fmt.Errorf("setting alias: %w", err)
	}

	return nil
}
