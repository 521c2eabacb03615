package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// SigningMethodsClient implements the esig.SigningMethodsClient interface.
type SigningMethodsClient struct {
	httpClient *http_internal.Client
}

// NewSigningMethodsClient creates a new SigningMethodsClient.
func NewSigningMethodsClient(httpClient *http_internal.Client) *SigningMethodsClient {
	return &SigningMethodsClient{
		httpClient: httpClient,
	}
}

// List lists signing methods. A nil isActive returns active and disabled methods.
func (c *SigningMethodsClient) List(ctx context.Context, isActive *bool) ([]esig.SigningMethod, error) {
	var query url.Values
	if isActive != nil {
		query = url.Values{"isActive": []string{strconv.FormatBool(*isActive)}}
	}

	resp, err := c.httpClient.Get(ctx, "/signingmethods", query)
	if err != nil {
		return nil, fmt.Errorf("listing signing methods: %w", err)
	}

	var methods []esig.SigningMethod

	err = json.Unmarshal(resp.Body, &methods)
	if err != nil {
		return nil, fmt.Errorf("parsing signing methods response: %w", err)
	}

	return methods, nil
}
