package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fairground-io/mpapi/internal/constants"
	"github.com/fairground-io/mpapi/internal/http"
	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// FrameworksClient implements the mpapi.FrameworksClient interface.
type FrameworksClient struct {
	httpClient *http.Client
	updatedBy  string
}

// NewFrameworksClient creates a new FrameworksClient.
func NewFrameworksClient(httpClient *http.Client, updatedBy string) *FrameworksClient {
	return &FrameworksClient{
		httpClient: httpClient,
		updatedBy:  updatedBy,
	}
}

// Get retrieves a framework by slug.
func (c *FrameworksClient) Get(ctx context.Context, slug string) (*mpapi.Framework, error) {
	path := constants.APIPathFrameworks + "/" + slug

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting framework: %w", err)
	}

	var envelope struct {
		Framework mpapi.Framework `json:"frameworks"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing framework response: %w", err)
	}

	return &envelope.Framework, nil
}

// List lists one page of frameworks.
func (c *FrameworksClient) List(ctx context.Context, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Framework], error) {
	return c.ListWithPath(ctx, constants.APIPathFrameworks, params)
}

// ListWithPath lists the page at path.
func (c *FrameworksClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Framework], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing frameworks: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.Framework](resp.Body, constants.ResourceKeyFrameworks)
	if err != nil {
		return nil, fmt.Errorf("parsing frameworks list response: %w", err)
	}

	return page, nil
}

// GetInterest retrieves a supplier's interest record for a framework.
func (c *FrameworksClient) GetInterest(ctx context.Context, slug string, supplierID int) (*mpapi.FrameworkInterest, error) {
	path := fmt.Sprintf("%s/%d/frameworks/%s", constants.APIPathSuppliers, supplierID, slug)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting framework interest: %w", err)
	}

	return decodeFrameworkInterest(resp.Body)
}

// RegisterInterest registers a supplier's interest in a framework.
func (c *FrameworksClient) RegisterInterest(ctx context.Context, slug string, supplierID int, updatedBy string) (*mpapi.FrameworkInterest, error) {
	resolved, err := resolveUpdatedBy(updatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	path := constants.APIPathSuppliers + "/" + strconv.Itoa(supplierID) + "/frameworks/" + slug
	body := map[string]interface{}{"updated_by": resolved}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("registering framework interest: %w", err)
	}

	return decodeFrameworkInterest(resp.Body)
}

func decodeFrameworkInterest(body []byte) (*mpapi.FrameworkInterest, error) {
	var envelope struct {
		Interest mpapi.FrameworkInterest `json:"frameworkInterest"`
	}

	err := unmarshalResponse(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing framework interest response: %w", err)
	}

	return &envelope.Interest, nil
}
