package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/esig/internal/constants"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// Logger is the structured logger used for request tracing. esig.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Credentials are sent as an HTTP Basic authorization header.
type Credentials struct {
	Username string
	Password string
}

func (c *Credentials) header() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
}

// Client is the transport shared by every resource client.
type Client struct {
	baseURL     string
	credentials *Credentials
	httpClient  *retryablehttp.Client
	logger      Logger
	debug       bool
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries on connection errors, 429 and 5xx responses.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client. The client is copied
// and its redirect policy replaced; redirects are never followed.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient == nil {
			return
		}

		clone := *httpClient
		clone.CheckRedirect = noRedirect
		c.httpClient.HTTPClient = &clone
	}
}

// Request describes an API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is encoded as JSON, except for []byte which is sent as is with
	// ContentType.
	Body        any
	ContentType string
	Headers     map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Part is one part of a multipart/form-data body.
type Part struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     io.Reader
}

// NewClient creates a transport for baseURL. A nil credentials value sends
// no Authorization header.
func NewClient(baseURL string, credentials *Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.CheckRedirect = noRedirect

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  retryClient,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL every path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and reads the whole response. On a non-2xx status
// both the response and an *esig.HTTPError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpResp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(body),
		})
	}

	if !isSuccess(httpResp.StatusCode) {
		return resp, c.statusError(httpResp, body)
	}

	return resp, nil
}

// Stream sends the request and returns the open response body on success.
// The caller must close it.
func (c *Client) Stream(ctx context.Context, req *Request) (io.ReadCloser, error) {
	httpResp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"stream": true,
		})
	}

	if !isSuccess(httpResp.StatusCode) {
		defer func() { _ = httpResp.Body.Close() }()

		body, readErr := io.ReadAll(httpResp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("reading error body: %w", readErr)
		}

		return nil, c.statusError(httpResp, body)
	}

	return httpResp.Body, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// PostRaw performs a POST request with a pre-encoded body.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        body,
		ContentType: contentType,
	})
}

// PostMultipart sends parts as a multipart/form-data body. Parts with a nil
// Content are skipped.
func (c *Client) PostMultipart(ctx context.Context, path string, parts ...Part) (*Response, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, part := range parts {
		if part.Content == nil {
			continue
		}

		header := make(textproto.MIMEHeader)
		disposition := fmt.Sprintf(`form-data; name=%q`, part.FieldName)

		if part.FileName != "" {
			disposition += fmt.Sprintf(`; filename=%q`, part.FileName)
		}

		header.Set("Content-Disposition", disposition)

		if part.ContentType != "" {
			header.Set("Content-Type", part.ContentType)
		}

		w, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", part.FieldName, err)
		}

		_, err = io.Copy(w, part.Content)
		if err != nil {
			return nil, fmt.Errorf("writing part %s: %w", part.FieldName, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	return c.PostRaw(ctx, path, buf.Bytes(), writer.FormDataContentType())
}

// JSONPart encodes v as a JSON form part.
func JSONPart(fieldName string, v any) (Part, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Part{}, fmt.Errorf("encoding part %s: %w", fieldName, err)
	}

	return Part{
		FieldName:   fieldName,
		ContentType: constants.ContentTypeJSON,
		Content:     bytes.NewReader(data),
	}, nil
}

func (c *Client) send(ctx context.Context, req *Request) (*http.Response, error) {
	if req == nil {
		return nil, constants.ErrNilRequest
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	var payload interface{}
	if body != nil {
		payload = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.credentials != nil {
		httpReq.Header.Set("Authorization", c.credentials.header())
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("HTTP request failed", map[string]interface{}{
				"method": req.Method,
				"url":    fullURL,
				"error":  err.Error(),
			})
		}

		return nil, fmt.Errorf("executing request: %w", err)
	}

	return httpResp, nil
}

func (c *Client) statusError(resp *http.Response, body []byte) error {
	httpErr := esig.NewHTTPError(resp.Request.Method, resp.Request.URL.String(), resp.StatusCode, body)

	if c.logger != nil {
		c.logger.Warn("HTTP request returned an error status", map[string]interface{}{
			"method": resp.Request.Method,
			"url":    resp.Request.URL.String(),
			"status": resp.StatusCode,
		})
	}

	return esig.EnrichError(httpErr)
}

func encodeBody(req *Request) ([]byte, string, error) {
	switch body := req.Body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return body, req.ContentType, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("encoding request body: %w", err)
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeJSON
		}

		return data, contentType, nil
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}
