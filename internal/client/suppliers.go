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

// SuppliersClient implements the mpapi.SuppliersClient interface.
type SuppliersClient struct {
	httpClient *http.Client
	updatedBy  string
}

// NewSuppliersClient creates a new SuppliersClient.
func NewSuppliersClient(httpClient *http.Client, updatedBy string) *SuppliersClient {
	return &SuppliersClient{
		httpClient: httpClient,
		updatedBy:  updatedBy,
	}
}

// Get retrieves a single supplier.
func (c *SuppliersClient) Get(ctx context.Context, supplierID int) (*mpapi.Supplier, error) {
	path := constants.APIPathSuppliers + "/" + strconv.Itoa(supplierID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting supplier: %w", err)
	}

	var envelope struct {
		Supplier mpapi.Supplier `json:"suppliers"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing supplier response: %w", err)
	}

	return &envelope.Supplier, nil
}

// List lists one page of suppliers.
func (c *SuppliersClient) List(ctx context.Context, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Supplier], error) {
	return c.ListWithPath(ctx, constants.APIPathSuppliers, params)
}

// ListWithPath lists the page at path.
func (c *SuppliersClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Supplier], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.Supplier](resp.Body, constants.ResourceKeySuppliers)
	if err != nil {
		return nil, fmt.Errorf("parsing suppliers list response: %w", err)
	}

	return page, nil
}

// ListForFramework lists suppliers registered on a framework.
func (c *SuppliersClient) ListForFramework(ctx context.Context, frameworkSlug string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Supplier], error) {
	path := fmt.Sprintf("%s/%s/suppliers", constants.APIPathFrameworks, frameworkSlug)

	return c.ListWithPath(ctx, path, params)
}

// Create creates a supplier record.
func (c *SuppliersClient) Create(ctx context.Context, request *mpapi.SupplierCreateRequest) (*mpapi.Supplier, error) {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	body := *request
	body.UpdatedBy = updatedBy

	resp, err := c.httpClient.Post(ctx, constants.APIPathSuppliers, &body)
	if err != nil {
		return nil, fmt.Errorf("creating supplier: %w", err)
	}

	var envelope struct {
		Supplier mpapi.Supplier `json:"suppliers"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing supplier response: %w", err)
	}

	return &envelope.Supplier, nil
}

// Update applies a partial update to a supplier record.
func (c *SuppliersClient) Update(ctx context.Context, supplierID int, request *mpapi.SupplierUpdateRequest) (*mpapi.Supplier, error) {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	body := *request
	body.UpdatedBy = updatedBy

	path := constants.APIPathSuppliers + "/" + strconv.Itoa(supplierID)

	resp, err := c.httpClient.Post(ctx, path, &body)
	if err != nil {
		return nil, fmt.Errorf("updating supplier: %w", err)
	}

	var envelope struct {
		Supplier mpapi.Supplier `json:"suppliers"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing supplier response: %w", err)
	}

	return &envelope.Supplier, nil
}
