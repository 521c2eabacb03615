package client

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/esig/internal/constants"
	http_internal "github.com/fivetwenty-io/esig/internal/http"
)

// AuditTrailsClient implements the esig.AuditTrailsClient interface.
type AuditTrailsClient struct {
	httpClient *http_internal.Client
}

// NewAuditTrailsClient creates a new AuditTrailsClient.
func NewAuditTrailsClient(httpClient *http_internal.Client) *AuditTrailsClient {
	return &AuditTrailsClient{
		httpClient: httpClient,
	}
}

// auditTrailPath defaults language to English.
func auditTrailPath(packageID, language string) string {
	if language == "" {
		language = constants.DefaultAuditTrailLanguage
	}

	return resourcePath("/packages/%s/audittrail/%s", packageID, language)
}

// Download downloads the audit trail of a finished package as PDF. language
// is a 2-letter ISO 639-1 code.
func (c *AuditTrailsClient) Download(ctx context.Context, packageID, language string) ([]byte, error) {
	resp, err := c.httpClient.Do(ctx, downloadRequest(auditTrailPath(packageID, language), constants.ContentTypePDF))
	if err != nil {
		return nil, fmt.Errorf("downloading audit trail: %w", err)
	}

	return resp.Body, nil
}

// DownloadStream is Download without buffering. The caller closes the reader.
func (c *AuditTrailsClient) DownloadStream(ctx context.Context, packageID, language string) (io.ReadCloser, error) {
	body, err := c.httpClient.Stream(ctx, downloadRequest(auditTrailPath(packageID, language), constants.ContentTypePDF))
	if err != nil {
		return nil, fmt.Errorf("downloading audit trail: %w", err)
	}

	return body, nil
}
