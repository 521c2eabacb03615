package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/esig/internal/constants"
	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// LegacyPackagesClient implements the esig.LegacyPackagesClient interface
// against the v3 API.
type LegacyPackagesClient struct {
	httpClient *http_internal.Client
	schema     *schema.Set
}

// NewLegacyPackagesClient creates a new LegacyPackagesClient.
func NewLegacyPackagesClient(httpClient *http_internal.Client, set *schema.Set) *LegacyPackagesClient {
	return &LegacyPackagesClient{
		httpClient: httpClient,
		schema:     set,
	}
}

// Create creates an empty package.
func (c *LegacyPackagesClient) Create(ctx context.Context, input *esig.LegacyCreatePackageInput) (*esig.LegacyCreatePackageResponse, error) {
	if input == nil {
		return nil, fmt.Errorf("creating package: %w", esig.ErrInputRequired)
	}

	payload, err := encodeObject(c.schema.Package, input)
	if err != nil {
		return nil, fmt.Errorf("creating package: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/packages", payload)
	if err != nil {
		return nil, fmt.Errorf("creating package: %w", err)
	}

	var created esig.LegacyCreatePackageResponse

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing package response: %w", err)
	}

	return &created, nil
}

// AddDocument uploads a document as a multipart form: the JSON metadata,
// the document and, for XML documents, an optional PDF representation.
func (c *LegacyPackagesClient) AddDocument(ctx context.Context, packageID string, input *esig.LegacyAddDocumentInput) (*esig.LegacyAddDocumentResponse, error) {
	if input == nil {
		return nil, fmt.Errorf("adding document: %w", esig.ErrInputRequired)
	}

	err := input.Validate()
	if err != nil {
		return nil, err
	}

	payload, err := encodeObject(c.schema.Document, input)
	if err != nil {
		return nil, fmt.Errorf("adding document: %w", err)
	}

	data, err := http_internal.JSONPart("Data", payload)
	if err != nil {
		return nil, fmt.Errorf("adding document: %w", err)
	}

	contentType := constants.ContentTypePDF
	if input.DocumentType != "" {
		contentType = input.DocumentType
	}

	resp, err := c.httpClient.PostMultipart(ctx, resourcePath("/packages/%s/documents", packageID),
		data,
		http_internal.Part{
			FieldName:   "Document",
			FileName:    input.DocumentName,
			ContentType: contentType,
			Content:     input.Document,
		},
		http_internal.Part{
			FieldName:   "Representation",
			FileName:    input.DocumentName + ".pdf",
			ContentType: constants.ContentTypePDF,
			Content:     input.Representation,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("adding document: %w", err)
	}

	var added esig.LegacyAddDocumentResponse

	err = json.Unmarshal(resp.Body, &added)
	if err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &added, nil
}

// SetProcessInformation sets the stakeholders and actors of a package.
func (c *LegacyPackagesClient) SetProcessInformation(ctx context.Context, packageID string, input *esig.LegacyProcessInformation) error {
	if input == nil {
		return fmt.Errorf("setting process information: %w", esig.ErrInputRequired)
	}

	payload, err := encodeObject(c.schema.ProcessInformation, input)
	if err != nil {
		return fmt.Errorf("setting process information: %w", err)
	}

	_, err = c.httpClient.Put(ctx, resourcePath("/packages/%s/process", packageID), payload)
	if err != nil {
		return fmt.Errorf("setting process information: %w", err)
	}

	return nil
}

// GetStatus returns the package status with its documents and actors.
func (c *LegacyPackagesClient) GetStatus(ctx context.Context, packageID string) (*esig.LegacyStatusResponse, error) {
	resp, err := c.httpClient.Get(ctx, resourcePath("/packages/%s/status", packageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting package status: %w", err)
	}

	var status esig.LegacyStatusResponse

	err = decodeObject(c.schema.Status, resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing package status: %w", err)
	}

	return &status, nil
}

// SetStatus moves a draft package to Pending or revokes a pending one.
func (c *LegacyPackagesClient) SetStatus(ctx context.Context, packageID string, status esig.PackageStatus) error {
	if status != esig.PackageStatusPending && status != esig.PackageStatusRevoked {
		return fmt.Errorf("%w: %s", esig.ErrInvalidStatus, status)
	}

	body := map[string]esig.PackageStatus{"Status": status}

	_, err := c.httpClient.Put(ctx, resourcePath("/packages/%s/status", packageID), body)
	if err != nil {
		return fmt.Errorf("setting package status: %w", err)
	}

	return nil
}

// Download downloads the signed documents of a finished package as a zip archive.
func (c *LegacyPackagesClient) Download(ctx context.Context, packageID string) ([]byte, error) {
	resp, err := c.httpClient.Do(ctx, downloadRequest(resourcePath("/packages/%s/download", packageID), constants.ContentTypeZip))
	if err != nil {
		return nil, fmt.Errorf("downloading package: %w", err)
	}

	return resp.Body, nil
}

// Delete deletes a package.
func (c *LegacyPackagesClient) Delete(ctx context.Context, packageID string) error {
	_, err := c.httpClient.Delete(ctx, resourcePath("/packages/%s", packageID))
	if err != nil {
		return fmt.Errorf("deleting package: %w", err)
	}

	return nil
}
