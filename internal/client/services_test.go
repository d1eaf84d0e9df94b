package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairground-io/mpapi/pkg/mpapi"
)

func TestServicesClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/services/1234567890123456", request.URL.Path)
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"services": map[string]interface{}{
					"id":          "1234567890123456",
					"status":      "published",
					"serviceName": "Cloud Hosting",
				},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		service, err := client.Services().Get(context.Background(), "1234567890123456")
		require.NoError(t, err)
		assert.Equal(t, "1234567890123456", service.ID)
		assert.Equal(t, "published", service.Status)
		assert.Equal(t, "Cloud Hosting", service.Title)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, http.StatusNotFound, map[string]string{"error": "service not found"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Services().Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, mpapi.IsNotFound(err))
	})
}

func TestServicesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/services", request.URL.Path)
		assert.Equal(t, "123", request.URL.Query().Get("supplier_id"))
		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"services": []map[string]interface{}{
				{"id": "1", "status": "published"},
				{"id": "2", "status": "enabled"},
			},
			"links": map[string]string{},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	params := mpapi.NewQueryParams().WithFilter("supplier_id", "123")

	page, err := client.Services().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "1", page.Items[0].ID)
	assert.False(t, page.Links.HasNext())
}

// TestServicesClient_Iterate drives the pagination iterator through a real
// server serving three linked pages.
func TestServicesClient_Iterate(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/services", func(writer http.ResponseWriter, request *http.Request) {
		page := request.URL.Query().Get("page")
		switch page {
		case "", "1":
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"services": []map[string]interface{}{{"id": "1"}, {"id": "2"}},
				"links":    map[string]string{"next": server.URL + "/services?page=2"},
			})
		case "2":
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"services": []map[string]interface{}{{"id": "3"}, {"id": "4"}},
				"links":    map[string]string{"next": server.URL + "/services?page=3"},
			})
		case "3":
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"services": []map[string]interface{}{{"id": "5"}},
				"links":    map[string]string{},
			})
		default:
			writeJSON(t, writer, http.StatusNotFound, map[string]string{"error": "no such page"})
		}
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)
	iterator := mpapi.NewPageIterator[mpapi.Service](context.Background(), client.Services(), "/services", nil)

	var ids []string

	err := iterator.ForEach(func(service mpapi.Service) error {
		ids = append(ids, service.ID)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
}

func TestServicesClient_Update(t *testing.T) {
	t.Parallel()
	t.Run("injects client default updated_by", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/services/123", request.URL.Path)

			body := decodeBody(t, request)
			assert.Equal(t, "ops@example.com", body["updated_by"])
			assert.Equal(t, map[string]interface{}{"serviceName": "New Name"}, body["services"])

			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"services": map[string]interface{}{"id": "123", "serviceName": "New Name"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		service, err := client.Services().Update(context.Background(), "123", &mpapi.ServiceUpdateRequest{
			Data: map[string]interface{}{"serviceName": "New Name"},
		})
		require.NoError(t, err)
		assert.Equal(t, "New Name", service.Title)
	})

	t.Run("per-call updated_by wins", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body := decodeBody(t, request)
			assert.Equal(t, "admin@example.com", body["updated_by"])
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{"services": map[string]interface{}{"id": "123"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Services().Update(context.Background(), "123", &mpapi.ServiceUpdateRequest{
			Data:      map[string]interface{}{"serviceName": "New Name"},
			UpdatedBy: "admin@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("fails before I/O without updated_by", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := New(&mpapi.Config{APIEndpoint: server.URL})
		require.NoError(t, err)

		_, err = client.Services().Update(context.Background(), "123", &mpapi.ServiceUpdateRequest{
			Data: map[string]interface{}{"serviceName": "New Name"},
		})
		require.ErrorIs(t, err, mpapi.ErrUpdatedByRequired)
		assert.Zero(t, requests)
	})

	t.Run("validation failure carries field errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, http.StatusBadRequest, map[string]interface{}{
				"error": map[string]string{"serviceName": "under_character_limit"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Services().Update(context.Background(), "123", &mpapi.ServiceUpdateRequest{
			Data: map[string]interface{}{"serviceName": ""},
		})
		require.Error(t, err)
		assert.True(t, mpapi.IsInvalidRequest(err))

		apiErr := &mpapi.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "under_character_limit", apiErr.FieldErrors["serviceName"])
	})
}

func TestServicesClient_UpdateStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/services/123/status/enabled", request.URL.Path)

		body := decodeBody(t, request)
		assert.Equal(t, "ops@example.com", body["updated_by"])

		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"services": map[string]interface{}{"id": "123", "status": "enabled"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	service, err := client.Services().UpdateStatus(context.Background(), "123", "enabled", "")
	require.NoError(t, err)
	assert.Equal(t, "enabled", service.Status)
}

func TestServicesClient_Revert(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/services/123/revert", request.URL.Path)

		body := decodeBody(t, request)
		assert.Equal(t, float64(42), body["archivedServiceId"])
		assert.Equal(t, "ops@example.com", body["updated_by"])

		writer.WriteHeader(http.StatusOK)
		fmt.Fprint(writer, "{}")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Services().Revert(context.Background(), "123", &mpapi.ServiceRevertRequest{
		ArchivedServiceID: 42,
	})
	require.NoError(t, err)
}
