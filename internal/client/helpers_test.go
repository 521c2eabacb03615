package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

const v4Prefix = "/esig/webportalapi/v4"

// NewTestClient creates a v4 client for a test server.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&esig.Config{Endpoint: baseURL, Username: "user", Password: "secret"})
	require.NoError(t, err)

	return client
}

// TestOperation describes one request a resource client is expected to send
// and the canned response the server returns.
type TestOperation struct {
	Name         string
	Method       string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// serve starts a server asserting op's method and path. captured receives
// the decoded request body, if any.
func serve(t *testing.T, op TestOperation, captured *map[string]interface{}) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, op.ExpectedPath, request.URL.Path)
		assert.Equal(t, op.Method, request.Method)

		if captured != nil {
			body, _ := io.ReadAll(request.Body)
			if len(body) > 0 {
				assert.NoError(t, json.Unmarshal(body, captured))
			}
		}

		writer.Header().Set("Content-Type", "application/json")

		status := op.StatusCode
		if status == 0 {
			status = http.StatusOK
		}

		writer.WriteHeader(status)

		switch response := op.Response.(type) {
		case nil:
		case string:
			_, _ = writer.Write([]byte(response))
		default:
			_ = json.NewEncoder(writer).Encode(response)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// RunOperation runs fn against a server for op and checks the error.
func RunOperation(t *testing.T, op TestOperation, fn func(*testing.T, *Client) error) {
	t.Helper()
	t.Run(op.Name, func(t *testing.T) {
		t.Parallel()

		server := serve(t, op, nil)

		err := fn(t, NewTestClient(t, server.URL))
		if op.WantErr {
			require.Error(t, err)
			assert.Contains(t, err.Error(), op.ErrMessage)
		} else {
			require.NoError(t, err)
		}
	})
}

// failIfCalled fails the test on any request. Used where validation must
// stop a request before it is sent.
func failIfCalled(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
		writer.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(server.Close)

	return server
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

const notFoundBody = `[{"ErrorCode":"Package.NotFound","ErrorMessage":"The package could not be found."}]`
