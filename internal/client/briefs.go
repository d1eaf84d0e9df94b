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

// BriefsClient implements the mpapi.BriefsClient interface.
type BriefsClient struct {
	httpClient *http.Client
	updatedBy  string
}

// NewBriefsClient creates a new BriefsClient.
func NewBriefsClient(httpClient *http.Client, updatedBy string) *BriefsClient {
	return &BriefsClient{
		httpClient: httpClient,
		updatedBy:  updatedBy,
	}
}

// Get retrieves a single brief.
func (c *BriefsClient) Get(ctx context.Context, briefID int) (*mpapi.Brief, error) {
	path := constants.APIPathBriefs + "/" + strconv.Itoa(briefID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting brief: %w", err)
	}

	return decodeBrief(resp.Body)
}

// List lists one page of briefs.
func (c *BriefsClient) List(ctx context.Context, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Brief], error) {
	return c.ListWithPath(ctx, constants.APIPathBriefs, params)
}

// ListWithPath lists the page at path.
func (c *BriefsClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.Brief], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing briefs: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.Brief](resp.Body, constants.ResourceKeyBriefs)
	if err != nil {
		return nil, fmt.Errorf("parsing briefs list response: %w", err)
	}

	return page, nil
}

// Create creates a brief in draft state.
func (c *BriefsClient) Create(ctx context.Context, request *mpapi.BriefCreateRequest) (*mpapi.Brief, error) {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	body := *request
	body.UpdatedBy = updatedBy

	resp, err := c.httpClient.Post(ctx, constants.APIPathBriefs, &body)
	if err != nil {
		return nil, fmt.Errorf("creating brief: %w", err)
	}

	return decodeBrief(resp.Body)
}

// UpdateStatus transitions a brief to a new lifecycle status.
func (c *BriefsClient) UpdateStatus(ctx context.Context, briefID int, status, updatedBy string) (*mpapi.Brief, error) {
	resolved, err := resolveUpdatedBy(updatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d/status/%s", constants.APIPathBriefs, briefID, status)
	body := map[string]interface{}{"updated_by": resolved}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating brief status: %w", err)
	}

	return decodeBrief(resp.Body)
}

func decodeBrief(body []byte) (*mpapi.Brief, error) {
	var envelope struct {
		Brief mpapi.Brief `json:"briefs"`
	}

	err := unmarshalResponse(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing brief response: %w", err)
	}

	return &envelope.Brief, nil
}
