package mpapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		message    string
		wantKind   ErrorKind
		wantMsg    string
	}{
		{
			name:       "404 classified as not found",
			statusCode: 404,
			message:    "service not found",
			wantKind:   ErrorKindNotFound,
			wantMsg:    "service not found (status: 404)",
		},
		{
			name:       "400 classified as invalid request",
			statusCode: 400,
			message:    "invalid payload",
			wantKind:   ErrorKindInvalidRequest,
			wantMsg:    "invalid payload (status: 400)",
		},
		{
			name:       "other statuses stay generic",
			statusCode: 503,
			message:    "unavailable",
			wantKind:   ErrorKindHTTP,
			wantMsg:    "unavailable (status: 503)",
		},
		{
			name:       "empty message falls back to status text",
			statusCode: 403,
			wantKind:   ErrorKindHTTP,
			wantMsg:    "Forbidden (status: 403)",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := NewHTTPError(testCase.statusCode, testCase.message, nil)
			assert.Equal(t, testCase.wantKind, err.Kind)
			assert.Equal(t, testCase.statusCode, err.StatusCode)
			assert.Equal(t, testCase.wantMsg, err.Error())
		})
	}
}

func TestNewHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	fields := map[string]interface{}{"serviceName": "answer_required"}

	err := NewHTTPError(400, "invalid", fields)
	assert.Equal(t, fields, err.FieldErrors)

	// Field errors only attach to the invalid-request kind.
	err = NewHTTPError(500, "broken", fields)
	assert.Nil(t, err.FieldErrors)
}

func TestNewRequestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewRequestError(cause)

	assert.Equal(t, ErrorKindRequestFailed, err.Kind)
	assert.Equal(t, 0, err.StatusCode)
	assert.Equal(t, "request failed: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := NewHTTPError(404, "gone", nil)
	invalid := NewHTTPError(400, "bad", nil)
	transport := NewRequestError(errors.New("refused"))
	generic := NewHTTPError(500, "broken", nil)

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(invalid))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))

	assert.True(t, IsInvalidRequest(invalid))
	assert.False(t, IsInvalidRequest(generic))

	assert.True(t, IsRequestFailed(transport))
	assert.False(t, IsRequestFailed(generic))
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()

	// Predicates see through fmt.Errorf wrapping, the way callers receive
	// errors from resource clients.
	wrapped := fmt.Errorf("getting service: %w", NewHTTPError(404, "gone", nil))

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, 404, ErrorStatus(wrapped))
}

func TestErrorStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 409, ErrorStatus(NewHTTPError(409, "conflict", nil)))
	assert.Equal(t, 0, ErrorStatus(NewRequestError(errors.New("refused"))))
	assert.Equal(t, 0, ErrorStatus(errors.New("plain")))
	assert.Equal(t, 0, ErrorStatus(nil))
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not_found", ErrorKindNotFound.String())
	assert.Equal(t, "invalid_request", ErrorKindInvalidRequest.String())
	assert.Equal(t, "request_failed", ErrorKindRequestFailed.String())
	assert.Equal(t, "http_error", ErrorKindHTTP.String())
}
