package mpapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind identifies the class of failure carried by an APIError.
type ErrorKind int

const (
	// ErrorKindHTTP is any non-2xx response not otherwise classified.
	ErrorKindHTTP ErrorKind = iota
	// ErrorKindNotFound is a 404 response.
	ErrorKindNotFound
	// ErrorKindInvalidRequest is a 400 response, optionally carrying
	// field-level error details from the API.
	ErrorKindInvalidRequest
	// ErrorKindRequestFailed is a transport-level failure: no response was
	// received, so there is no status code.
	ErrorKindRequestFailed
)

// String returns a stable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindInvalidRequest:
		return "invalid_request"
	case ErrorKindRequestFailed:
		return "request_failed"
	case ErrorKindHTTP:
		return "http_error"
	default:
		return "http_error"
	}
}

// APIError represents a failed call to the Data or Search API. Every non-2xx
// response and every transport failure surfaces as one of these; callers
// discriminate on Kind (or use the IsNotFound/IsInvalidRequest/IsRequestFailed
// helpers) rather than on a type hierarchy.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string

	// FieldErrors holds the structured `error` payload returned by the API on
	// 400 responses, keyed by field name. Nil otherwise.
	FieldErrors map[string]interface{}

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Kind == ErrorKindRequestFailed {
		return fmt.Sprintf("request failed: %s", e.Message)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// Unwrap exposes the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewHTTPError builds an APIError for a non-2xx response, classifying 404 and
// 400 into their dedicated kinds.
func NewHTTPError(statusCode int, message string, fieldErrors map[string]interface{}) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", statusCode)
		}
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    message,
	}

	switch statusCode {
	case http.StatusNotFound:
		apiErr.Kind = ErrorKindNotFound
	case http.StatusBadRequest:
		apiErr.Kind = ErrorKindInvalidRequest
		apiErr.FieldErrors = fieldErrors
	default:
		apiErr.Kind = ErrorKindHTTP
	}

	return apiErr
}

// NewRequestError wraps a transport-level failure where no response was
// received.
func NewRequestError(cause error) *APIError {
	msg := "unknown transport error"
	if cause != nil {
		msg = cause.Error()
	}

	return &APIError{
		Kind:    ErrorKindRequestFailed,
		Message: msg,
		cause:   cause,
	}
}

// IsNotFound reports whether err is an APIError for a 404 response. Callers
// commonly treat this as "absent resource" rather than a fatal failure.
func IsNotFound(err error) bool {
	return errorKindIs(err, ErrorKindNotFound)
}

// IsInvalidRequest reports whether err is an APIError for a 400 response.
func IsInvalidRequest(err error) bool {
	return errorKindIs(err, ErrorKindInvalidRequest)
}

// IsRequestFailed reports whether err is a transport-level failure with no
// status code, typically retryable by the caller's own policy.
func IsRequestFailed(err error) bool {
	return errorKindIs(err, ErrorKindRequestFailed)
}

// ErrorStatus returns the HTTP status code carried by err, or 0 when err is
// not an APIError or carries no status (transport failures).
func ErrorStatus(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

func errorKindIs(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrEndpointRequired     = errors.New("API endpoint is required")
	ErrUpdatedByRequired    = errors.New("updated_by must be set on the client or supplied per call")
	ErrIndexNameRequired    = errors.New("index name is required")
	ErrNoMoreItems          = errors.New("no more items")
	ErrResourceKeyMissing   = errors.New("resource key missing from page body")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNoEndpointConfigured = errors.New("no API endpoint configured")
)
