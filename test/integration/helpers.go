//go:build integration

package integration

import (
	"context"
	"encoding/base64"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/esigclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Endpoint  string
	Username  string
	Password  string
	Initiator string
	PDFPath   string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:  os.Getenv("ESIG_IT_ENDPOINT"),
		Username:  os.Getenv("ESIG_IT_USERNAME"),
		Password:  os.Getenv("ESIG_IT_PASSWORD"),
		Initiator: os.Getenv("ESIG_IT_INITIATOR"),
		PDFPath:   os.Getenv("ESIG_IT_PDF"),
		Verbose:   os.Getenv("ESIG_IT_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test unless a platform is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Endpoint == "" || config.Username == "" || config.Password == "" {
		t.Skip("ESIG_IT_ENDPOINT, ESIG_IT_USERNAME or ESIG_IT_PASSWORD not set, skipping integration test")
	}

	if config.Initiator == "" {
		t.Skip("ESIG_IT_INITIATOR not set, skipping integration test")
	}
}

// PDF returns the test document, skipping the test when none is configured.
func (config *TestConfig) PDF(t *testing.T) []byte {
	t.Helper()

	if config.PDFPath == "" {
		t.Skip("ESIG_IT_PDF not set, skipping document test")
	}

	data, err := os.ReadFile(config.PDFPath)
	require.NoError(t, err)

	return data
}

// NewClient creates a client for version, logging through the test log
// when verbose output is requested.
func (config *TestConfig) NewClient(t *testing.T, version esig.APIVersion) esig.Client {
	t.Helper()

	clientConfig := &esig.Config{
		Endpoint:   config.Endpoint,
		Username:   config.Username,
		Password:   config.Password,
		APIVersion: version,
	}

	if config.Verbose {
		clientConfig.Debug = true
		clientConfig.Logger = esig.NewZapLogger(zaptest.NewLogger(t))
	}

	client, err := esigclient.New(clientConfig)
	require.NoError(t, err)

	return client
}

// GenerateTestName generates a unique package or document name.
func GenerateTestName(prefix string) string {
	return esig.SanitizeName(prefix + " " + uuid.NewString())
}

// AcquirePackage creates a draft package that is deleted when the test ends.
func AcquirePackage(t *testing.T, client esig.Client, initiator string) *esig.Package {
	t.Helper()

	pkg, err := client.Packages().Create(context.Background(), &esig.CreatePackageInput{
		Name:      GenerateTestName("it"),
		Initiator: initiator,
		Status:    esig.PackageStatusDraft,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := client.Packages().Delete(ctx, pkg.ID); err != nil && !esig.IsNotFound(err) {
			t.Errorf("failed to delete package %s: %v", pkg.ID, err)
		}
	})

	return pkg
}

// AcquireLegacyPackage creates a v3 package that is deleted when the test ends.
func AcquireLegacyPackage(t *testing.T, client esig.LegacyPackagesClient, initiator string) string {
	t.Helper()

	created, err := client.Create(context.Background(), &esig.LegacyCreatePackageInput{
		Initiator:   initiator,
		PackageName: GenerateTestName("it-v3"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := client.Delete(ctx, created.PackageID); err != nil && !esig.IsNotFound(err) {
			t.Errorf("failed to delete package %s: %v", created.PackageID, err)
		}
	})

	return created.PackageID
}

// DocumentOptions wraps a PDF for upload.
func DocumentOptions(pdf []byte) esig.DocumentOptions {
	return esig.DocumentOptions{
		Base64Data:  base64.StdEncoding.EncodeToString(pdf),
		ContentType: "application/pdf",
	}
}
