package mpapi

import (
	"context"
	"time"
)

// ServicesClient operates on marketplace service listings.
type ServicesClient interface {
	Get(ctx context.Context, serviceID string) (*Service, error)
	List(ctx context.Context, params *QueryParams) (*Page[Service], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[Service], error)
	Update(ctx context.Context, serviceID string, request *ServiceUpdateRequest) (*Service, error)
	UpdateStatus(ctx context.Context, serviceID, status, updatedBy string) (*Service, error)
	Revert(ctx context.Context, serviceID string, request *ServiceRevertRequest) error
}

// SuppliersClient operates on supplier records.
type SuppliersClient interface {
	Get(ctx context.Context, supplierID int) (*Supplier, error)
	List(ctx context.Context, params *QueryParams) (*Page[Supplier], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[Supplier], error)
	ListForFramework(ctx context.Context, frameworkSlug string, params *QueryParams) (*Page[Supplier], error)
	Create(ctx context.Context, request *SupplierCreateRequest) (*Supplier, error)
	Update(ctx context.Context, supplierID int, request *SupplierUpdateRequest) (*Supplier, error)
}

// UsersClient operates on marketplace accounts.
type UsersClient interface {
	Get(ctx context.Context, userID int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, params *QueryParams) (*Page[User], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[User], error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, userID int, request *UserUpdateRequest) (*User, error)
}

// FrameworksClient operates on procurement frameworks.
type FrameworksClient interface {
	Get(ctx context.Context, slug string) (*Framework, error)
	List(ctx context.Context, params *QueryParams) (*Page[Framework], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[Framework], error)
	GetInterest(ctx context.Context, slug string, supplierID int) (*FrameworkInterest, error)
	RegisterInterest(ctx context.Context, slug string, supplierID int, updatedBy string) (*FrameworkInterest, error)
}

// BriefsClient operates on buyer briefs.
type BriefsClient interface {
	Get(ctx context.Context, briefID int) (*Brief, error)
	List(ctx context.Context, params *QueryParams) (*Page[Brief], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[Brief], error)
	Create(ctx context.Context, request *BriefCreateRequest) (*Brief, error)
	UpdateStatus(ctx context.Context, briefID int, status, updatedBy string) (*Brief, error)
}

// AuditEventsClient operates on the audit trail.
type AuditEventsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[AuditEvent], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[AuditEvent], error)
	Create(ctx context.Context, request *AuditEventCreateRequest) (*AuditEvent, error)
	Acknowledge(ctx context.Context, eventID int, updatedBy string) error
}

// ResourceClients provides access to all Data API resource clients.
type ResourceClients interface {
	Services() ServicesClient
	Suppliers() SuppliersClient
	Users() UsersClient
	Frameworks() FrameworksClient
	Briefs() BriefsClient
	AuditEvents() AuditEventsClient
}

// Client is the Data API client.
type Client interface {
	ResourceClients

	// GetStatus hits /_status and reports API health.
	GetStatus(ctx context.Context) (*Status, error)
}

// SearchClient is the Search API client. Search results carry their items
// under the "documents" resource key and paginate with the same links
// convention as the Data API.
type SearchClient interface {
	GetStatus(ctx context.Context) (*Status, error)
	Search(ctx context.Context, indexName string, params *QueryParams) (*Page[Document], error)
	SearchWithPath(ctx context.Context, path string, params *QueryParams) (*Page[Document], error)
	// ListWithPath aliases SearchWithPath so a SearchClient satisfies
	// PageLister[Document] for the pagination iterator.
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*Page[Document], error)
	IndexDocument(ctx context.Context, indexName, documentID string, document Document) error
	DeleteDocument(ctx context.Context, indexName, documentID string) error
	CreateIndex(ctx context.Context, indexName string, request *CreateIndexRequest) error
	SetAlias(ctx context.Context, aliasName, target string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Data or Search API
// client.
//
// Authentication is a caller-supplied bearer token; the client never fetches
// or refreshes tokens itself. The connection timeout is fixed at construction
// time and is a constant, not a per-call policy. Retries are disabled unless
// RetryMax is set explicitly; the library performs one HTTP call per logical
// operation by default.
type Config struct {
	// APIEndpoint: base URL for the API (e.g. "https://api.example.com").
	// Normalized by the facade constructors: trailing slash trimmed, "https://"
	// prefixed when no scheme is present.
	APIEndpoint string

	// AccessToken is sent as `Authorization: Bearer <token>` on every request.
	// Leave empty for unauthenticated calls.
	AccessToken string

	// UpdatedBy is the default attribution recorded with every mutating Data
	// API call. Individual requests may override it; if neither is set a
	// mutating call fails with ErrUpdatedByRequired before any network I/O.
	UpdatedBy string

	// HTTPTimeout is the connection-level timeout applied to the underlying
	// transport. Zero means the library default.
	HTTPTimeout time.Duration

	// RetryMax enables opt-in transparent retries for transient failures.
	// Zero (the default) means a single attempt per call.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
