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

func TestSuppliersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/suppliers/92345", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"suppliers": map[string]interface{}{
				"id":   92345,
				"name": "Example Hosting Ltd",
				"contactInformation": []map[string]interface{}{
					{"contactName": "Jo Bloggs", "email": "jo@example.com"},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	supplier, err := client.Suppliers().Get(context.Background(), 92345)
	require.NoError(t, err)
	assert.Equal(t, 92345, supplier.ID)
	assert.Equal(t, "Example Hosting Ltd", supplier.Name)
	require.Len(t, supplier.ContactInformation, 1)
	assert.Equal(t, "jo@example.com", supplier.ContactInformation[0].Email)
}

func TestSuppliersClient_ListForFramework(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/frameworks/g-cloud-9/suppliers", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"suppliers": []map[string]interface{}{
				{"id": 1, "name": "First"},
				{"id": 2, "name": "Second"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	page, err := client.Suppliers().ListForFramework(context.Background(), "g-cloud-9", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "First", page.Items[0].Name)
}

func TestSuppliersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/suppliers", request.URL.Path)

		body := decodeBody(t, request)
		assert.Equal(t, "ops@example.com", body["updated_by"])

		supplier, ok := body["suppliers"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "New Supplier", supplier["name"])

		writeJSON(t, writer, http.StatusCreated, map[string]interface{}{
			"suppliers": map[string]interface{}{"id": 700001, "name": "New Supplier"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	supplier, err := client.Suppliers().Create(context.Background(), &mpapi.SupplierCreateRequest{
		Supplier: mpapi.Supplier{Name: "New Supplier"},
	})
	require.NoError(t, err)
	assert.Equal(t, 700001, supplier.ID)
}

func TestSuppliersClient_Update(t *testing.T) {
	t.Parallel()
	t.Run("partial update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/suppliers/92345", request.URL.Path)

			body := decodeBody(t, request)
			assert.Equal(t, map[string]interface{}{"description": "Updated"}, body["suppliers"])

			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"suppliers": map[string]interface{}{"id": 92345, "description": "Updated"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		supplier, err := client.Suppliers().Update(context.Background(), 92345, &mpapi.SupplierUpdateRequest{
			Supplier: map[string]interface{}{"description": "Updated"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Updated", supplier.Description)
	})

	t.Run("requires updated_by", func(t *testing.T) {
		t.Parallel()

		client, err := New(&mpapi.Config{APIEndpoint: "https://api.example.com"})
		require.NoError(t, err)

		_, err = client.Suppliers().Update(context.Background(), 92345, &mpapi.SupplierUpdateRequest{
			Supplier: map[string]interface{}{"description": "Updated"},
		})
		require.ErrorIs(t, err, mpapi.ErrUpdatedByRequired)
	})
}
