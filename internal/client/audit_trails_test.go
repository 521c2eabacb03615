package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

func TestAuditTrailsClient_Download(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		language string
		wantPath string
	}{
		{name: "default language", language: "", wantPath: v4Prefix + "/packages/package-id/audittrail/en"},
		{name: "dutch", language: "nl", wantPath: v4Prefix + "/packages/package-id/audittrail/nl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "application/pdf, */*", r.Header.Get("Accept"))

				_, _ = w.Write([]byte("%PDF-"))
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			data, err := client.AuditTrails().Download(context.Background(), "package-id", tt.language)
			require.NoError(t, err)
			assert.Equal(t, []byte("%PDF-"), data)
		})
	}
}

func TestAuditTrailsClient_DownloadStream(t *testing.T) {
	t.Parallel()

	t.Run("stream", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("%PDF-"))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		stream, err := client.AuditTrails().DownloadStream(context.Background(), "package-id", "fr")
		require.NoError(t, err)

		defer func() { _ = stream.Close() }()

		data, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-"), data)
	})

	t.Run("not finished", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`[{"ErrorCode":"Package.NotFinished","ErrorMessage":"The package is not finished."}]`))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.AuditTrails().DownloadStream(context.Background(), "package-id", "fr")
		require.Error(t, err)
		assert.True(t, esig.HasErrorCode(err, "Package.NotFinished"))
	})
}
