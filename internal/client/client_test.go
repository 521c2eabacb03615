package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/esig/internal/client"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(&esig.Config{Username: "user", Password: "secret"})
		require.ErrorIs(t, err, ErrEndpointRequired)
	})

	t.Run("rejects unsupported API version", func(t *testing.T) {
		t.Parallel()

		_, err := New(&esig.Config{Endpoint: "https://esig.example.com", APIVersion: "v2"})
		require.ErrorIs(t, err, esig.ErrUnsupportedAPIVersion)
	})

	t.Run("appends v4 path by default", func(t *testing.T) {
		t.Parallel()

		client, err := New(&esig.Config{Endpoint: "https://esig.example.com/"})
		require.NoError(t, err)
		assert.Equal(t, "https://esig.example.com/esig/webportalapi/v4", client.BaseURL())
	})

	t.Run("appends v3 path", func(t *testing.T) {
		t.Parallel()

		client, err := New(&esig.Config{Endpoint: "https://esig.example.com", APIVersion: esig.APIVersionV3})
		require.NoError(t, err)
		assert.Equal(t, "https://esig.example.com/webportalapi/v3", client.BaseURL())
	})

	t.Run("v4 client serves every resource but legacy", func(t *testing.T) {
		t.Parallel()

		client, err := New(&esig.Config{Endpoint: "https://esig.example.com", Username: "user", Password: "secret"})
		require.NoError(t, err)

		assert.NotNil(t, client.Packages())
		assert.NotNil(t, client.Documents())
		assert.NotNil(t, client.Elements())
		assert.NotNil(t, client.Stakeholders())
		assert.NotNil(t, client.Actors())
		assert.NotNil(t, client.SigningMethods())
		assert.NotNil(t, client.AuditTrails())
		assert.Nil(t, client.Legacy())
	})

	t.Run("v3 client only serves legacy", func(t *testing.T) {
		t.Parallel()

		client, err := New(&esig.Config{Endpoint: "https://esig.example.com", APIVersion: esig.APIVersionV3})
		require.NoError(t, err)

		assert.NotNil(t, client.Legacy())
		assert.Nil(t, client.Packages())
		assert.Nil(t, client.Documents())
		assert.Nil(t, client.Elements())
		assert.Nil(t, client.Stakeholders())
		assert.Nil(t, client.Actors())
		assert.Nil(t, client.SigningMethods())
		assert.Nil(t, client.AuditTrails())
	})
}

func TestAPIPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version esig.APIVersion
		want    string
		wantErr bool
	}{
		{version: "", want: "/esig/webportalapi/v4"},
		{version: esig.APIVersionV4, want: "/esig/webportalapi/v4"},
		{version: esig.APIVersionV3, want: "/webportalapi/v3"},
		{version: "v5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.version), func(t *testing.T) {
			t.Parallel()

			got, err := APIPath(tt.version)
			if tt.wantErr {
				require.ErrorIs(t, err, esig.ErrUnsupportedAPIVersion)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
