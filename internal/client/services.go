package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fairground-io/mpapi/internal/constants"
	"github.com/fairground-io/mpapi/internal/http"
	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// ServicesClient implements the mpapi.ServicesClient interface.
type ServicesClient struct {
	httpClient *http.Client
	updatedBy  string
}

// NewServicesClient creates a new ServicesClient.
func NewServicesClient(httpClient *http.Client, updatedBy string) *ServicesClient {
	return &ServicesClient{
		httpClient: httpClient,
		updatedBy:  updatedBy,
	}
}

// Get retrieves a single service. A 404 surfaces as an APIError with kind
// ErrorKindNotFound; callers that want return-nil semantics branch with
// mpapi.IsNotFound.
func (c *ServicesClient) Get(ctx context.Context, serviceID string) (*mpapi.Service, error) {
	path := constants.APIPathServices + "/" + serviceID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting service: %w", err)
	}

	var envelope struct {
		Service mpapi.Service `json:"services"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing service response: %w", err)
	}

	return &envelope.Service, nil
}

// List lists one page of services.
func (c *ServicesClient) List(ctx context.Context, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Service], error) {
	return c.ListWithPath(ctx, constants.APIPathServices, params)
}

// ListWithPath lists the page at path; used directly by the pagination
// iterator to follow next links.
func (c *ServicesClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Service], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.Service](resp.Body, constants.ResourceKeyServices)
	if err != nil {
		return nil, fmt.Errorf("parsing services list response: %w", err)
	}

	return page, nil
}

// Update applies a partial update to a service.
func (c *ServicesClient) Update(ctx context.Context, serviceID string, request *mpapi.ServiceUpdateRequest) (*mpapi.Service, error) {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	body := *request
	body.UpdatedBy = updatedBy

	path := constants.APIPathServices + "/" + serviceID

	resp, err := c.httpClient.Post(ctx, path, &body)
	if err != nil {
		return nil, fmt.Errorf("updating service: %w", err)
	}

	var envelope struct {
		Service mpapi.Service `json:"services"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing service response: %w", err)
	}

	return &envelope.Service, nil
}

// UpdateStatus transitions a service to a new lifecycle status.
func (c *ServicesClient) UpdateStatus(ctx context.Context, serviceID, status, updatedBy string) (*mpapi.Service, error) {
	resolved, err := resolveUpdatedBy(updatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/status/%s", constants.APIPathServices, serviceID, status)
	body := map[string]interface{}{"updated_by": resolved}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating service status: %w", err)
	}

	var envelope struct {
		Service mpapi.Service `json:"services"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing service response: %w", err)
	}

	return &envelope.Service, nil
}

// Revert restores a service to an archived revision.
func (c *ServicesClient) Revert(ctx context.Context, serviceID string, request *mpapi.ServiceRevertRequest) error {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return err
	}

	body := *request
	body.UpdatedBy = updatedBy

	path := fmt.Sprintf("%s/%s/revert", constants.APIPathServices, serviceID)

	_, err = c.httpClient.Post(ctx, path, &body)
	if err != nil {
		return fmt.Errorf("reverting service: %w", err)
	}

	return nil
}
