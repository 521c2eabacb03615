package esigclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/esig/internal/client"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// New creates a new client for config. config is not modified.
func New(config *esig.Config) (esig.Client, error) {
	if config == nil {
		return nil, esig.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, esig.ErrEndpointRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, esig.ErrCredentialsRequired
	}

	normalized := *config
	normalized.Endpoint = NormalizeEndpoint(config.Endpoint)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithPassword creates a v4 client authenticating with username and password.
func NewWithPassword(endpoint, username, password string) (esig.Client, error) {
	return New(&esig.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}

// NormalizeEndpoint trims a trailing slash and adds "https://" when endpoint
// has no scheme.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
