package client

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// newTestClient builds a Data API client against a test server URL with a
// default attribution identity.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&mpapi.Config{
		APIEndpoint: serverURL,
		AccessToken: "test-token",
		UpdatedBy:   "ops@example.com",
	})
	require.NoError(t, err)

	return client
}

// writeJSON encodes v to the response writer with the given status.
func writeJSON(t *testing.T, writer http.ResponseWriter, status int, v interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	require.NoError(t, json.NewEncoder(writer).Encode(v))
}

// decodeBody decodes the request body into a generic map for assertions on
// what the client actually sent.
func decodeBody(t *testing.T, request *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

	return body
}
