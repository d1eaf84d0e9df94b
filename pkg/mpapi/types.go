package mpapi

import (
	"encoding/json"
	"fmt"
	"time"
)

// PageLinks represents the pagination links embedded in a collection page.
// A page whose Next link is empty is the terminal page of the sequence.
type PageLinks struct {
	Self string `json:"self,omitempty" yaml:"self,omitempty"`
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
	Prev string `json:"prev,omitempty" yaml:"prev,omitempty"`
	Last string `json:"last,omitempty" yaml:"last,omitempty"`
}

// HasNext reports whether the server supplied a next-page link.
func (l PageLinks) HasNext() bool {
	return l.Next != ""
}

// Page is one page of a paginated collection: the items found under the
// resource key, plus the links object used to reach the next page.
type Page[T any] struct {
	Items []T       `json:"items" yaml:"items"`
	Links PageLinks `json:"links" yaml:"links"`
	Meta  *PageMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// PageMeta carries optional collection metadata some endpoints return.
type PageMeta struct {
	Total int `json:"total,omitempty" yaml:"total,omitempty"`
}

// UnmarshalPage decodes one collection page whose items list sits under
// resourceKey. A missing `links` object is tolerated (the original APIs omit
// it on unpaginated collections); a missing resource key is an error since it
// means the caller asked for the wrong collection.
func UnmarshalPage[T any](data []byte, resourceKey string) (*Page[T], error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing collection page: %w", err)
	}

	page := &Page[T]{}

	raw, ok := envelope[resourceKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrResourceKeyMissing, resourceKey)
	}

	err = json.Unmarshal(raw, &page.Items)
	if err != nil {
		return nil, fmt.Errorf("parsing %q items: %w", resourceKey, err)
	}

	if rawLinks, ok := envelope["links"]; ok {
		err = json.Unmarshal(rawLinks, &page.Links)
		if err != nil {
			return nil, fmt.Errorf("parsing page links: %w", err)
		}
	}

	if rawMeta, ok := envelope["meta"]; ok {
		err = json.Unmarshal(rawMeta, &page.Meta)
		if err != nil {
			return nil, fmt.Errorf("parsing page meta: %w", err)
		}
	}

	return page, nil
}

// Status represents the `/_status` response of either API.
type Status struct {
	Status  string `json:"status"            yaml:"status"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	DBName  string `json:"db_name,omitempty" yaml:"db_name,omitempty"`
}

// Service represents a marketplace service listing.
type Service struct {
	ID            string                 `json:"id"                      yaml:"id"`
	SupplierID    int                    `json:"supplierId"              yaml:"supplierId"`
	SupplierName  string                 `json:"supplierName,omitempty"  yaml:"supplierName,omitempty"`
	FrameworkSlug string                 `json:"frameworkSlug"           yaml:"frameworkSlug"`
	Lot           string                 `json:"lot"                     yaml:"lot"`
	Status        string                 `json:"status"                  yaml:"status"`
	Title         string                 `json:"serviceName,omitempty"   yaml:"serviceName,omitempty"`
	UpdatedAt     time.Time              `json:"updatedAt,omitempty"     yaml:"updatedAt,omitempty"`
	CreatedAt     time.Time              `json:"createdAt,omitempty"     yaml:"createdAt,omitempty"`
	Data          map[string]interface{} `json:"serviceData,omitempty"   yaml:"serviceData,omitempty"`
}

// ServiceUpdateRequest represents a partial update to a service. Keys in Data
// are merged into the service record by the API; the client performs no shape
// validation.
type ServiceUpdateRequest struct {
	Data map[string]interface{} `json:"services"             yaml:"services"`
	// UpdatedBy attributes the change; filled from the client default when empty.
	UpdatedBy string `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// ServiceRevertRequest reverts a service to an archived revision.
type ServiceRevertRequest struct {
	ArchivedServiceID int    `json:"archivedServiceId"    yaml:"archivedServiceId"`
	UpdatedBy         string `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// ContactInformation is a supplier contact record.
type ContactInformation struct {
	ContactName string `json:"contactName,omitempty" yaml:"contactName,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	Address1    string `json:"address1,omitempty"    yaml:"address1,omitempty"`
	City        string `json:"city,omitempty"        yaml:"city,omitempty"`
	Postcode    string `json:"postcode,omitempty"    yaml:"postcode,omitempty"`
}

// Supplier represents a registered supplier organisation.
type Supplier struct {
	ID                 int                  `json:"id"                           yaml:"id"`
	Name               string               `json:"name"                         yaml:"name"`
	DunsNumber         string               `json:"dunsNumber,omitempty"         yaml:"dunsNumber,omitempty"`
	CompaniesHouseID   string               `json:"companiesHouseNumber,omitempty" yaml:"companiesHouseNumber,omitempty"`
	Description        string               `json:"description,omitempty"        yaml:"description,omitempty"`
	ContactInformation []ContactInformation `json:"contactInformation,omitempty" yaml:"contactInformation,omitempty"`
}

// SupplierCreateRequest creates a supplier record.
type SupplierCreateRequest struct {
	Supplier  Supplier `json:"suppliers"            yaml:"suppliers"`
	UpdatedBy string   `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// SupplierUpdateRequest applies a partial update to a supplier record.
type SupplierUpdateRequest struct {
	Supplier  map[string]interface{} `json:"suppliers"            yaml:"suppliers"`
	UpdatedBy string                 `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// User represents a marketplace account.
type User struct {
	ID           int       `json:"id"                     yaml:"id"`
	Name         string    `json:"name"                   yaml:"name"`
	EmailAddress string    `json:"emailAddress"           yaml:"emailAddress"`
	Role         string    `json:"role"                   yaml:"role"`
	Active       bool      `json:"active"                 yaml:"active"`
	SupplierID   int       `json:"supplierId,omitempty"   yaml:"supplierId,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"    yaml:"createdAt,omitempty"`
	LoggedInAt   time.Time `json:"loggedInAt,omitempty"   yaml:"loggedInAt,omitempty"`
}

// UserCreateRequest creates an account.
type UserCreateRequest struct {
	User      UserAttributes `json:"users"                yaml:"users"`
	UpdatedBy string         `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// UserAttributes are the writable fields of a user record.
type UserAttributes struct {
	Name         string `json:"name"                 yaml:"name"`
	EmailAddress string `json:"emailAddress"         yaml:"emailAddress"`
	Password     string `json:"password,omitempty"   yaml:"password,omitempty"`
	Role         string `json:"role"                 yaml:"role"`
	SupplierID   int    `json:"supplierId,omitempty" yaml:"supplierId,omitempty"`
}

// UserUpdateRequest applies a partial update to a user record.
type UserUpdateRequest struct {
	User      map[string]interface{} `json:"users"                yaml:"users"`
	UpdatedBy string                 `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// Framework represents a procurement framework iteration.
type Framework struct {
	ID                 int       `json:"id"                           yaml:"id"`
	Slug               string    `json:"slug"                         yaml:"slug"`
	Name               string    `json:"name"                         yaml:"name"`
	Family             string    `json:"framework,omitempty"          yaml:"framework,omitempty"`
	Status             string    `json:"status"                       yaml:"status"`
	ClarificationsOpen bool      `json:"clarificationQuestionsOpen"   yaml:"clarificationQuestionsOpen"`
	ApplicationsClose  time.Time `json:"applicationsCloseAtUTC,omitempty" yaml:"applicationsCloseAtUTC,omitempty"`
}

// FrameworkInterest records a supplier's registered interest in a framework.
type FrameworkInterest struct {
	SupplierID    int    `json:"supplierId"    yaml:"supplierId"`
	FrameworkSlug string `json:"frameworkSlug" yaml:"frameworkSlug"`
	OnFramework   bool   `json:"onFramework"   yaml:"onFramework"`
}

// Brief represents a published buyer requirement.
type Brief struct {
	ID            int       `json:"id"                      yaml:"id"`
	Title         string    `json:"title"                   yaml:"title"`
	FrameworkSlug string    `json:"frameworkSlug"           yaml:"frameworkSlug"`
	LotSlug       string    `json:"lotSlug"                 yaml:"lotSlug"`
	Status        string    `json:"status"                  yaml:"status"`
	CreatedAt     time.Time `json:"createdAt,omitempty"     yaml:"createdAt,omitempty"`
	PublishedAt   time.Time `json:"publishedAt,omitempty"   yaml:"publishedAt,omitempty"`
}

// BriefCreateRequest creates a brief in draft state.
type BriefCreateRequest struct {
	Brief     map[string]interface{} `json:"briefs"               yaml:"briefs"`
	UpdatedBy string                 `json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// AuditEvent records one change made through the Data API.
type AuditEvent struct {
	ID           int                    `json:"id"                     yaml:"id"`
	Type         string                 `json:"type"                   yaml:"type"`
	User         string                 `json:"user,omitempty"         yaml:"user,omitempty"`
	CreatedAt    time.Time              `json:"createdAt,omitempty"    yaml:"createdAt,omitempty"`
	Acknowledged bool                   `json:"acknowledged"           yaml:"acknowledged"`
	ObjectType   string                 `json:"objectType,omitempty"   yaml:"objectType,omitempty"`
	ObjectID     string                 `json:"objectId,omitempty"     yaml:"objectId,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"         yaml:"data,omitempty"`
}

// AuditEventCreateRequest records a new audit event.
type AuditEventCreateRequest struct {
	AuditEvent AuditEventAttributes `json:"auditEvents" yaml:"auditEvents"`
}

// AuditEventAttributes are the writable fields of an audit event.
type AuditEventAttributes struct {
	Type       string                 `json:"type"                 yaml:"type"`
	User       string                 `json:"user,omitempty"       yaml:"user,omitempty"`
	ObjectType string                 `json:"objectType,omitempty" yaml:"objectType,omitempty"`
	ObjectID   string                 `json:"objectId,omitempty"   yaml:"objectId,omitempty"`
	Data       map[string]interface{} `json:"data"                 yaml:"data"`
}

// Document is one search hit. Search results are duck-typed JSON mappings;
// shape validation belongs to the caller.
type Document map[string]interface{}

// ID returns the document's id field when present.
func (d Document) ID() string {
	if id, ok := d["id"].(string); ok {
		return id
	}

	return ""
}

// IndexRequest indexes one serialized document.
type IndexRequest struct {
	Document Document `json:"document" yaml:"document"`
}

// CreateIndexRequest creates a search index of a given mapping type.
type CreateIndexRequest struct {
	Type    string `json:"type"    yaml:"type"`
	Mapping string `json:"mapping" yaml:"mapping"`
}

// SetAliasRequest points an alias at a concrete index.
type SetAliasRequest struct {
	Type      string `json:"type"  yaml:"type"`
	AliasName string `json:"name"  yaml:"name"`
	Target    string `json:"target" yaml:"target"`
}
