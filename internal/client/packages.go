package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fivetwenty-io/esig/internal/constants"
	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// PackagesClient implements the esig.PackagesClient interface.
type PackagesClient struct {
	httpClient *http_internal.Client
	schema     *schema.Set
}

// NewPackagesClient creates a new PackagesClient.
func NewPackagesClient(httpClient *http_internal.Client, set *schema.Set) *PackagesClient {
	return &PackagesClient{
		httpClient: httpClient,
		schema:     set,
	}
}

// Create creates a new package.
func (c *PackagesClient) Create(ctx context.Context, input *esig.CreatePackageInput) (*esig.Package, error) {
	if input == nil {
		return nil, fmt.Errorf("creating package: %w", esig.ErrInputRequired)
	}

	err := input.Validate()
	if err != nil {
		return nil, err
	}

	payload, err := encodeObject(c.schema.Package, input)
	if err != nil {
		return nil, fmt.Errorf("creating package: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/packages", payload)
	if err != nil {
		return nil, fmt.Errorf("creating package: %w", err)
	}

	var pkg esig.Package

	err = decodeObject(c.schema.Package, resp.Body, &pkg)
	if err != nil {
		return nil, fmt.Errorf("parsing package response: %w", err)
	}

	return &pkg, nil
}

// Get retrieves a specific package.
func (c *PackagesClient) Get(ctx context.Context, packageID string) (*esig.Package, error) {
	resp, err := c.httpClient.Get(ctx, resourcePath("/packages/%s", packageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting package: %w", err)
	}

	var pkg esig.Package

	err = decodeObject(c.schema.Package, resp.Body, &pkg)
	if err != nil {
		return nil, fmt.Errorf("parsing package response: %w", err)
	}

	return &pkg, nil
}

// GetStatus returns the status of a package.
func (c *PackagesClient) GetStatus(ctx context.Context, packageID string) (esig.PackageStatus, error) {
	resp, err := c.httpClient.Get(ctx, resourcePath("/packages/%s/status", packageID), nil)
	if err != nil {
		return "", fmt.Errorf("getting package status: %w", err)
	}

	var status esig.PackageStatus

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return "", fmt.Errorf("parsing package status: %w", err)
	}

	return status, nil
}

// UpdateStatus moves a draft package to Pending or revokes a pending one.
func (c *PackagesClient) UpdateStatus(ctx context.Context, packageID string, status esig.PackageStatus) error {
	if status != esig.PackageStatusPending && status != esig.PackageStatusRevoked {
		return fmt.Errorf("%w: %s", esig.ErrInvalidStatus, status)
	}

	_, err := c.httpClient.Put(ctx, resourcePath("/packages/%s/status", packageID), status)
	if err != nil {
		return fmt.Errorf("updating package status: %w", err)
	}

	return nil
}

// Delete deletes a package.
func (c *PackagesClient) Delete(ctx context.Context, packageID string) error {
	_, err := c.httpClient.Delete(ctx, resourcePath("/packages/%s", packageID))
	if err != nil {
		return fmt.Errorf("deleting package: %w", err)
	}

	return nil
}

// Download downloads every document of a finished package as a zip archive.
func (c *PackagesClient) Download(ctx context.Context, packageID string) ([]byte, error) {
	resp, err := c.httpClient.Do(ctx, downloadRequest(resourcePath("/packages/%s/download", packageID), constants.ContentTypeZip))
	if err != nil {
		return nil, fmt.Errorf("downloading package: %w", err)
	}

	return resp.Body, nil
}

// DownloadStream is Download without buffering. The caller closes the reader.
func (c *PackagesClient) DownloadStream(ctx context.Context, packageID string) (io.ReadCloser, error) {
	body, err := c.httpClient.Stream(ctx, downloadRequest(resourcePath("/packages/%s/download", packageID), constants.ContentTypeZip))
	if err != nil {
		return nil, fmt.Errorf("downloading package: %w", err)
	}

	return body, nil
}

func downloadRequest(path, accept string) *http_internal.Request {
	return &http_internal.Request{
		Method:  http.MethodGet,
		Path:    path,
		Headers: map[string]string{"Accept": accept + ", " + constants.ContentTypeAny},
	}
}
