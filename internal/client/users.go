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

// UsersClient implements the mpapi.UsersClient interface.
type UsersClient struct {
	httpClient *http.Client
	updatedBy  string
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *http.Client, updatedBy string) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
		updatedBy:  updatedBy,
	}
}

// Get retrieves a single user.
func (c *UsersClient) Get(ctx context.Context, userID int) (*mpapi.User, error) {
	path := constants.APIPathUsers + "/" + strconv.Itoa(userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return decodeUser(resp.Body)
}

// GetByEmail looks a user up by email address. The API models this as a
// filtered collection; the first match is returned and no match surfaces as
// the NotFound kind so callers can branch the same way as for Get.
func (c *UsersClient) GetByEmail(ctx context.Context, email string) (*mpapi.User, error) {
	query := url.Values{}
	query.Set("email_address", email)

	resp, err := c.httpClient.Get(ctx, constants.APIPathUsers, query)
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.User](resp.Body, constants.ResourceKeyUsers)
	if err != nil {
		return nil, fmt.Errorf("parsing users response: %w", err)
	}

	if len(page.Items) == 0 {
		return nil, mpapi.NewHTTPError(404, fmt.Sprintf("no user with email address %q", email), nil)
	}

	return &page.Items[0], nil
}

// List lists one page of users.
func (c *UsersClient) List(ctx context.Context, params *mpapi.QueryParams) (*mpapi.Page[mpapi.User], error) {
	return c.ListWithPath(ctx, constants.APIPathUsers, params)
}

// ListWithPath lists the page at path.
func (c *UsersClient) ListWithPath(ctx context.Context, path string, params *mpapi.QueryParams) (*mpapi.Page[mpapi.User], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	page, err := mpapi.UnmarshalPage[mpapi.User](resp.Body, constants.ResourceKeyUsers)
	if err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return page, nil
}

// Create creates a user account.
func (c *UsersClient) Create(ctx context.Context, request *mpapi.UserCreateRequest) (*mpapi.User, error) {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	body := *request
	body.UpdatedBy = updatedBy

	resp, err := c.httpClient.Post(ctx, constants.APIPathUsers, &body)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return decodeUser(resp.Body)
}

// Update applies a partial update to a user record.
func (c *UsersClient) Update(ctx context.Context, userID int, request *mpapi.UserUpdateRequest) (*mpapi.User, error) {
	updatedBy, err := resolveUpdatedBy(request.UpdatedBy, c.updatedBy)
	if err != nil {
		return nil, err
	}

	body := *request
	body.UpdatedBy = updatedBy

	path := constants.APIPathUsers + "/" + strconv.Itoa(userID)

	resp, err := c.httpClient.Post(ctx, path, &body)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return decodeUser(resp.Body)
}

func decodeUser(body []byte) (*mpapi.User, error) {
	var envelope struct {
		User mpapi.User `json:"users"`
	}

	err := unmarshalResponse(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &envelope.User, nil
}
