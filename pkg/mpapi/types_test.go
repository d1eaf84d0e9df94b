package mpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalPage(t *testing.T) {
	t.Parallel()
	t.Run("items and links", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"services": [
				{"id": "123", "status": "published"},
				{"id": "456", "status": "enabled"}
			],
			"links": {
				"self": "https://api.example.com/services",
				"next": "https://api.example.com/services?page=2"
			}
		}`)

		page, err := UnmarshalPage[Service](body, "services")
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "123", page.Items[0].ID)
		assert.Equal(t, "published", page.Items[0].Status)
		assert.True(t, page.Links.HasNext())
		assert.Equal(t, "https://api.example.com/services?page=2", page.Links.Next)
	})

	t.Run("missing links tolerated", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"services": [{"id": "123"}]}`)

		page, err := UnmarshalPage[Service](body, "services")
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.False(t, page.Links.HasNext())
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"users": [], "links": {}}`)

		page, err := UnmarshalPage[User](body, "users")
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.False(t, page.Links.HasNext())
	})

	t.Run("missing resource key is an error", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"users": [], "links": {}}`)

		_, err := UnmarshalPage[Service](body, "services")
		require.ErrorIs(t, err, ErrResourceKeyMissing)
		assert.Contains(t, err.Error(), `"services"`)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		t.Parallel()

		_, err := UnmarshalPage[Service]([]byte(`{"services": [`), "services")
		require.Error(t, err)
	})

	t.Run("meta parsed when present", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"auditEvents": [], "meta": {"total": 42}}`)

		page, err := UnmarshalPage[AuditEvent](body, "auditEvents")
		require.NoError(t, err)
		require.NotNil(t, page.Meta)
		assert.Equal(t, 42, page.Meta.Total)
	})
}

func TestDocument_ID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123", Document{"id": "123"}.ID())
	assert.Empty(t, Document{"id": 123}.ID())
	assert.Empty(t, Document{}.ID())
}

func TestPageLinks_HasNext(t *testing.T) {
	t.Parallel()

	assert.False(t, PageLinks{}.HasNext())
	assert.True(t, PageLinks{Next: "/services?page=2"}.HasNext())
}
