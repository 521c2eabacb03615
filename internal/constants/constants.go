package constants

import "time"

// DownloadFilePerm is the permission for documents written by the CLI.
const DownloadFilePerm = 0600

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DownloadHTTPTimeout is used by the CLI when streaming package archives.
	DownloadHTTPTimeout = 5 * time.Minute
)

// Retry limits. The platform does not define a retry policy, so requests
// are sent once unless the caller opts in.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API paths appended to the configured endpoint.
const (
	// APIPathV4 is the path of the current REST API.
	APIPathV4 = "/esig/webportalapi/v4"

	// APIPathV3 is the path of the legacy multipart API.
	APIPathV3 = "/webportalapi/v3"
)

// Content types.
const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypePDF  = "application/pdf"
	ContentTypeZip  = "application/zip"
	ContentTypeAny  = "*/*"
)

// DefaultUserAgent is sent unless the config overrides it.
const DefaultUserAgent = "esig-go-client/1.0"

// Output format constants.
const (
	// FormatTable renders rows with tablewriter.
	FormatTable = "table"

	// FormatJSON renders indented JSON.
	FormatJSON = "json"

	// FormatYAML renders YAML.
	FormatYAML = "yaml"
)

// NotAvailable is shown for null fields in tables.
const NotAvailable = "-"

// EnvPrefix is the prefix of environment variables read by the CLI.
const EnvPrefix = "ESIG"

// DefaultAuditTrailLanguage is used when no language is given.
const DefaultAuditTrailLanguage = "en"
