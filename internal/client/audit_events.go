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

// AuditEventsClient implements the mpapi.AuditEventsClient interface. Audit
// events carry their own attribution in the event payload, so no updated_by
// injection happens here.
type AuditEventsClient struct {
	httpClient *http.Client
}

// NewAuditEventsClient creates a new AuditEventsClient.
func NewAuditEventsClient(httpClient *http.Client) *AuditEventsClient {
	return &AuditEventsClient{
		httpClient: httpClient,
	}
}

// List lists one page of audit events.
func (c *AuditEventsClient) List(ctx context.Context, params *mpapi.QueryParams) (*mpapi.Page[mpapi.AuditEvent], error) {
	return c.ListWithPath(ctx, constants.APIPathAuditEvents, params)
}

// ListWithPath lists the page at path.
func (c *AuditEventsClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.AuditEvent], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.AuditEvent](resp.Body, constants.ResourceKeyAuditEvents)
	if err != nil {
		return nil, fmt.Errorf("parsing audit events list response: %w", err)
	}

	return page, nil
}

// Create records a new audit event.
func (c *AuditEventsClient) Create(ctx context.Context, request *mpapi.AuditEventCreateRequest) (*mpapi.AuditEvent, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathAuditEvents, request)
	if err != nil {
		return nil, fmt.Errorf("creating audit event: %w", err)
	}

	var envelope struct {
		AuditEvent mpapi.AuditEvent `json:"auditEvents"`
	}

	err = unmarshalResponse(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing audit event response: %w", err)
	}

	return &envelope.AuditEvent, nil
}

// Acknowledge marks an audit event as processed.
func (c *AuditEventsClient) Acknowledge(ctx context.Context, eventID int, updatedBy string) error {
	if updatedBy == "" {
		return mpapi.ErrUpdatedByRequired
	}

	path := constants.APIPathAuditEvents + "/" + strconv.Itoa(eventID) + "/acknowledge"
	body := map[string]interface{}{"updated_by": updatedBy}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("acknowledging audit event: %w", err)
	}

	return nil
}
