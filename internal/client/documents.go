package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/esig/internal/constants"
	http_internal "github.com/fivetwenty-io/esig/internal/http"
	"github.com/fivetwenty-io/esig/internal/schema"
	"github.com/fivetwenty-io/esig/pkg/esig"
)

// DocumentsClient implements the esig.DocumentsClient interface.
type DocumentsClient struct {
	httpClient *http_internal.Client
	schema     *schema.Set
}

// NewDocumentsClient creates a new DocumentsClient.
func NewDocumentsClient(httpClient *http_internal.Client, set *schema.Set) *DocumentsClient {
	return &DocumentsClient{
		httpClient: httpClient,
		schema:     set,
	}
}

func documentsPath(packageID string) string {
	return resourcePath("/packages/%s/documents", packageID)
}

// List lists the documents of a package. An empty status lists all of them.
func (c *DocumentsClient) List(ctx context.Context, packageID string, status esig.DocumentStatus) ([]esig.Document, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{string(status)}}
	}

	resp, err := c.httpClient.Get(ctx, documentsPath(packageID), query)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var documents []esig.Document

	err = decodeObjectList(c.schema.Document, resp.Body, &documents)
	if err != nil {
		return nil, fmt.Errorf("parsing documents response: %w", err)
	}

	return documents, nil
}

// Create adds a document to a draft package.
func (c *DocumentsClient) Create(ctx context.Context, packageID string, input *esig.AddDocumentInput) (*esig.Document, error) {
	if input == nil {
		return nil, fmt.Errorf("creating document: %w", esig.ErrInputRequired)
	}

	err := input.Validate()
	if err != nil {
		return nil, err
	}

	payload, err := encodeObject(c.schema.Document, input)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, documentsPath(packageID), payload)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	var document esig.Document

	err = decodeObject(c.schema.Document, resp.Body, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &document, nil
}

// Get retrieves a specific document.
func (c *DocumentsClient) Get(ctx context.Context, packageID, documentID string) (*esig.Document, error) {
	return c.get(ctx, documentsPath(packageID)+"/"+url.PathEscape(documentID))
}

// GetByOrderIndex retrieves a document by its 1-based position in the
// package. See esig.DocumentOrderIndex for the index reported on documents.
func (c *DocumentsClient) GetByOrderIndex(ctx context.Context, packageID string, orderIndex int) (*esig.Document, error) {
	if orderIndex < 1 {
		return nil, fmt.Errorf("%w: %d", esig.ErrInvalidOrderIndex, orderIndex)
	}

	return c.get(ctx, documentsPath(packageID)+"/"+strconv.Itoa(orderIndex))
}

func (c *DocumentsClient) get(ctx context.Context, path string) (*esig.Document, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	var document esig.Document

	err = decodeObject(c.schema.Document, resp.Body, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &document, nil
}

// Delete removes a document from a draft package.
func (c *DocumentsClient) Delete(ctx context.Context, packageID, documentID string) error {
	_, err := c.httpClient.Delete(ctx, documentsPath(packageID)+"/"+url.PathEscape(documentID))
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	return nil
}

// Download downloads a single document as PDF.
func (c *DocumentsClient) Download(ctx context.Context, packageID, documentID string) ([]byte, error) {
	resp, err := c.httpClient.Do(ctx, downloadRequest(documentDownloadPath(packageID, documentID), constants.ContentTypePDF))
	if err != nil {
		return nil, fmt.Errorf("downloading document: %w", err)
	}

	return resp.Body, nil
}

// DownloadStream is Download without buffering. The caller closes the reader.
func (c *DocumentsClient) DownloadStream(ctx context.Context, packageID, documentID string) (io.ReadCloser, error) {
	body, err := c.httpClient.Stream(ctx, downloadRequest(documentDownloadPath(packageID, documentID), constants.ContentTypePDF))
	if err != nil {
		return nil, fmt.Errorf("downloading document: %w", err)
	}

	return body, nil
}

func documentDownloadPath(packageID, documentID string) string {
	return resourcePath("/packages/%s/download/%s", packageID, documentID)
}
