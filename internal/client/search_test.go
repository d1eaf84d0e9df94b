package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairground-io/mpapi/pkg/mpapi"
)

func newTestSearchClient(t *testing.T, serverURL string) *SearchAPIClient {
	t.Helper()

	client, err := NewSearch(&mpapi.Config{
		APIEndpoint: serverURL,
		AccessToken: "search-token",
	})
	require.NoError(t, err)

	return client
}

func TestNewSearch(t *testing.T) {
	t.Parallel()

	_, err := NewSearch(&mpapi.Config{})
	require.ErrorIs(t, err, mpapi.ErrEndpointRequired)
}

func TestSearchAPIClient_Search(t *testing.T) {
	t.Parallel()
	t.Run("first page of hits", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/g-cloud-9/search", request.URL.Path)
			assert.Equal(t, "hosting", request.URL.Query().Get("q"))
			assert.Equal(t, "Bearer search-token", request.Header.Get("Authorization"))
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"documents": []map[string]interface{}{
					{"id": "1", "serviceName": "Cloud Hosting"},
					{"id": "2", "serviceName": "Managed Hosting"},
				},
				"links": map[string]string{},
			})
		}))
		defer server.Close()

		client := newTestSearchClient(t, server.URL)
		params := mpapi.NewQueryParams().WithQuery("hosting")

		page, err := client.Search(context.Background(), "g-cloud-9", params)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "1", page.Items[0].ID())
	})

	t.Run("index name required", func(t *testing.T) {
		t.Parallel()

		client := newTestSearchClient(t, "https://search.example.com")

		_, err := client.Search(context.Background(), "", nil)
		require.ErrorIs(t, err, mpapi.ErrIndexNameRequired)
	})
}

// TestSearchAPIClient_Iterate walks search results across linked pages.
func TestSearchAPIClient_Iterate(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/g-cloud-9/search", func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("page") == "2" {
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"documents": []map[string]interface{}{{"id": "3"}},
				"links":     map[string]string{},
			})

			return
		}

		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"documents": []map[string]interface{}{{"id": "1"}, {"id": "2"}},
			"links":     map[string]string{"next": server.URL + "/g-cloud-9/search?page=2"},
		})
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	client := newTestSearchClient(t, server.URL)
	iterator := mpapi.NewPageIterator[mpapi.Document](context.Background(), client, "/g-cloud-9/search", nil)

	docs, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "3", docs[2].ID())
}

func TestSearchAPIClient_IndexDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/g-cloud-9/documents/1234567890123456", request.URL.Path)

		body := decodeBody(t, request)
		doc, ok := body["document"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Cloud Hosting", doc["serviceName"])

		writeJSON(t, writer, http.StatusOK, map[string]string{"message": "acknowledged"})
	}))
	defer server.Close()

	client := newTestSearchClient(t, server.URL)

	err := client.IndexDocument(context.Background(), "g-cloud-9", "1234567890123456", mpapi.Document{
		"id":          "1234567890123456",
		"serviceName": "Cloud Hosting",
	})
	require.NoError(t, err)
}

func TestSearchAPIClient_DeleteDocument(t *testing.T) {
	t.Parallel()
	t.Run("deletes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/g-cloud-9/documents/123", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestSearchClient(t, server.URL)

		require.NoError(t, client.DeleteDocument(context.Background(), "g-cloud-9", "123"))
	})

	t.Run("absent document is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, http.StatusNotFound, map[string]string{"error": "not found"})
		}))
		defer server.Close()

		client := newTestSearchClient(t, server.URL)

		require.NoError(t, client.DeleteDocument(context.Background(), "g-cloud-9", "missing"))
	})

	t.Run("other failures surface", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestSearchClient(t, server.URL)

		err := client.DeleteDocument(context.Background(), "g-cloud-9", "123")
		require.Error(t, err)
		assert.Equal(t, 500, mpapi.ErrorStatus(err))
	})
}

func TestSearchAPIClient_CreateIndex(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/g-cloud-9-2026-08", request.URL.Path)

		body := decodeBody(t, request)
		assert.Equal(t, "index", body["type"])
		assert.Equal(t, "services", body["mapping"])

		writeJSON(t, writer, http.StatusOK, map[string]string{"message": "created"})
	}))
	defer server.Close()

	client := newTestSearchClient(t, server.URL)

	err := client.CreateIndex(context.Background(), "g-cloud-9-2026-08", &mpapi.CreateIndexRequest{
		Type:    "index",
		Mapping: "services",
	})
	require.NoError(t, err)
}

func TestSearchAPIClient_SetAlias(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/g-cloud-9", request.URL.Path)

		body := decodeBody(t, request)
		assert.Equal(t, "alias", body["type"])
		assert.Equal(t, "g-cloud-9-2026-08", body["target"])

		writeJSON(t, writer, http.StatusOK, map[string]string{"message": "acknowledged"})
	}))
	defer server.Close()

	client := newTestSearchClient(t, server.URL)

	require.NoError(t, client.SetAlias(context.Background(), "g-cloud-9", "g-cloud-9-2026-08"))
}
