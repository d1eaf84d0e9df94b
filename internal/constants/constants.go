// Package constants holds shared path, timing, and permission constants.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts. Timeouts are fixed at client construction; there
// is no per-call timeout policy.
const (
	// DefaultHTTPTimeout is the default connection-level timeout.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as status checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits for the opt-in retry configuration. The default client makes a
// single attempt per call.
const (
	// DefaultRetryWaitMin is the minimum backoff between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API paths.
const (
	// APIPathStatus is the health endpoint exposed by both APIs.
	APIPathStatus = "/_status"

	// APIPathServices is the services collection.
	APIPathServices = "/services"

	// APIPathSuppliers is the suppliers collection.
	APIPathSuppliers = "/suppliers"

	// APIPathUsers is the users collection.
	APIPathUsers = "/users"

	// APIPathFrameworks is the frameworks collection.
	APIPathFrameworks = "/frameworks"

	// APIPathBriefs is the briefs collection.
	APIPathBriefs = "/briefs"

	// APIPathAuditEvents is the audit events collection.
	APIPathAuditEvents = "/audit-events"
)

// Resource keys: the JSON field under which each collection endpoint nests
// its items list.
const (
	ResourceKeyServices    = "services"
	ResourceKeySuppliers   = "suppliers"
	ResourceKeyUsers       = "users"
	ResourceKeyFrameworks  = "frameworks"
	ResourceKeyBriefs      = "briefs"
	ResourceKeyAuditEvents = "auditEvents"
	ResourceKeyDocuments   = "documents"
)

// DefaultUserAgent identifies the client on every request.
const DefaultUserAgent = "MP-API-Client-Go/1.0"
