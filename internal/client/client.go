package client

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/esig/internal/constants"
	"github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// Static errors for err113 compliance.
var (
	ErrEndpointRequired = errors.New("endpoint is required")
)

// Client implements the esig.Client interface.
type Client struct {
	httpClient *http.Client
	schema     *schema.Set
	baseURL    string
	logger     esig.Logger

	// Resource clients
	packages       *PackagesClient
	documents      *DocumentsClient
	elements       *ElementsClient
	stakeholders   *StakeholdersClient
	actors         *ActorsClient
	signingMethods *SigningMethodsClient
	auditTrails    *AuditTrailsClient
	legacy         *LegacyPackagesClient
}

// buildHTTPOptions maps the transport overrides of config to http options.
func buildHTTPOptions(config *esig.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// APIPath returns the path appended to the endpoint for version.
func APIPath(version esig.APIVersion) (string, error) {
	switch version {
	case esig.APIVersionV4, "":
		return constants.APIPathV4, nil
	case esig.APIVersionV3:
		return constants.APIPathV3, nil
	default:
		return "", fmt.Errorf("%w: %q", esig.ErrUnsupportedAPIVersion, version)
	}
}

// resourcePath formats a request path, escaping every segment.
func resourcePath(format string, segments ...string) string {
	escaped := make([]any, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}

	return fmt.Sprintf(format, escaped...)
}

// New creates a client for config.Endpoint. The endpoint must not carry the
// API path; it is appended here.
func New(config *esig.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, ErrEndpointRequired
	}

	set, err := schema.ForVersion(config.APIVersion)
	if err != nil {
		return nil, err
	}

	apiPath, err := APIPath(config.APIVersion)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSuffix(config.Endpoint, "/") + apiPath

	var credentials *http.Credentials
	if config.Username != "" || config.Password != "" {
		credentials = &http.Credentials{Username: config.Username, Password: config.Password}
	}

	httpClient := http.NewClient(baseURL, credentials, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		schema:     set,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	if c.schema.Version == esig.APIVersionV3 {
		c.legacy = NewLegacyPackagesClient(c.httpClient, c.schema)

		return
	}

	c.packages = NewPackagesClient(c.httpClient, c.schema)
	c.documents = NewDocumentsClient(c.httpClient, c.schema)
	c.elements = NewElementsClient(c.httpClient, c.schema)
	c.stakeholders = NewStakeholdersClient(c.httpClient, c.schema)
	c.actors = NewActorsClient(c.httpClient, c.schema)
	c.signingMethods = NewSigningMethodsClient(c.httpClient)
	c.auditTrails = NewAuditTrailsClient(c.httpClient)
}

// BaseURL returns the endpoint including the API path.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Packages implements esig.Client.Packages.
func (c *Client) Packages() esig.PackagesClient {
	if c.packages == nil {
		return nil
	}

	return c.packages
}

// Documents implements esig.Client.Documents.
func (c *Client) Documents() esig.DocumentsClient {
	if c.documents == nil {
		return nil
	}

	return c.documents
}

// Elements implements esig.Client.Elements.
func (c *Client) Elements() esig.ElementsClient {
	if c.elements == nil {
		return nil
	}

	return c.elements
}

// Stakeholders implements esig.Client.Stakeholders.
func (c *Client) Stakeholders() esig.StakeholdersClient {
	if c.stakeholders == nil {
		return nil
	}

	return c.stakeholders
}

// Actors implements esig.Client.Actors.
func (c *Client) Actors() esig.ActorsClient {
	if c.actors == nil {
		return nil
	}

	return c.actors
}

// SigningMethods implements esig.Client.SigningMethods.
func (c *Client) SigningMethods() esig.SigningMethodsClient {
	if c.signingMethods == nil {
		return nil
	}

	return c.signingMethods
}

// AuditTrails implements esig.Client.AuditTrails.
func (c *Client) AuditTrails() esig.AuditTrailsClient {
	if c.auditTrails == nil {
		return nil
	}

	return c.auditTrails
}

// Legacy implements esig.Client.Legacy.
func (c *Client) Legacy() esig.LegacyPackagesClient {
	if c.legacy == nil {
		return nil
	}

	return c.legacy
}
