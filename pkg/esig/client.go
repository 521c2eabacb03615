package esig

import (
	"context"
	"io"
	"net/http"
	"time"
)

// APIVersion selects the path prefix and the shape registries used by a client.
type APIVersion string

// Supported API versions.
const (
	APIVersionV4 APIVersion = "v4"
	// APIVersionV3 is the legacy multipart API.
	APIVersionV3 APIVersion = "v3"
)

// PackagesClient manages packages.
type PackagesClient interface {
	Create(ctx context.Context, input *CreatePackageInput) (*Package, error)
	Get(ctx context.Context, packageID string) (*Package, error)
	GetStatus(ctx context.Context, packageID string) (PackageStatus, error)
	UpdateStatus(ctx context.Context, packageID string, status PackageStatus) error
	Delete(ctx context.Context, packageID string) error
	Download(ctx context.Context, packageID string) ([]byte, error)
	DownloadStream(ctx context.Context, packageID string) (io.ReadCloser, error)
}

// DocumentsClient manages the documents of a package.
type DocumentsClient interface {
	List(ctx context.Context, packageID string, status DocumentStatus) ([]Document, error)
	Create(ctx context.Context, packageID string, input *AddDocumentInput) (*Document, error)
	Get(ctx context.Context, packageID, documentID string) (*Document, error)
	GetByOrderIndex(ctx context.Context, packageID string, orderIndex int) (*Document, error)
	Delete(ctx context.Context, packageID, documentID string) error
	Download(ctx context.Context, packageID, documentID string) ([]byte, error)
	DownloadStream(ctx context.Context, packageID, documentID string) (io.ReadCloser, error)
}

// ElementsClient manages the elements placed on a document.
type ElementsClient interface {
	Create(ctx context.Context, packageID, documentID string, element ElementInput) (*Element, error)
	CreateCheckboxField(ctx context.Context, packageID, documentID string, field *CheckboxFieldInput) (*Element, error)
	CreateRadioGroup(ctx context.Context, packageID, documentID string, group *RadioGroupInput) (*Element, error)
	CreateSigningField(ctx context.Context, packageID, documentID string, field *SigningFieldInput) (*Element, error)
	CreateTextBoxField(ctx context.Context, packageID, documentID string, field *TextBoxFieldInput) (*Element, error)
	List(ctx context.Context, packageID, documentID string) ([]Element, error)
	Get(ctx context.Context, packageID, documentID, elementID string) (*Element, error)
	Delete(ctx context.Context, packageID, documentID, elementID string) error
	ListUnplaced(ctx context.Context, packageID string) ([]Element, error)
}

// StakeholdersClient manages the stakeholders of a package.
type StakeholdersClient interface {
	List(ctx context.Context, packageID string) ([]Stakeholder, error)
	Create(ctx context.Context, packageID string, stakeholder StakeholderInput) (*Stakeholder, error)
	Get(ctx context.Context, packageID, stakeholderID string) (*Stakeholder, error)
}

// ActorsClient manages the actors of a stakeholder.
type ActorsClient interface {
	List(ctx context.Context, packageID, stakeholderID string) ([]Actor, error)
	Create(ctx context.Context, packageID, stakeholderID string, actor ActorInput) (*Actor, error)
	Get(ctx context.Context, packageID, stakeholderID, actorID string) (*Actor, error)
	Delete(ctx context.Context, packageID, stakeholderID, actorID string) error
}

// SigningMethodsClient lists the signing methods configured on the platform.
type SigningMethodsClient interface {
	List(ctx context.Context, isActive *bool) ([]SigningMethod, error)
}

// AuditTrailsClient downloads package audit trails.
type AuditTrailsClient interface {
	Download(ctx context.Context, packageID, language string) ([]byte, error)
	DownloadStream(ctx context.Context, packageID, language string) (io.ReadCloser, error)
}

// LegacyPackagesClient talks to the v3 API, which uploads documents as
// multipart forms and configures the signing process in a separate call.
type LegacyPackagesClient interface {
	Create(ctx context.Context, input *LegacyCreatePackageInput) (*LegacyCreatePackageResponse, error)
	AddDocument(ctx context.Context, packageID string, input *LegacyAddDocumentInput) (*LegacyAddDocumentResponse, error)
	SetProcessInformation(ctx context.Context, packageID string, input *LegacyProcessInformation) error
	GetStatus(ctx context.Context, packageID string) (*LegacyStatusResponse, error)
	SetStatus(ctx context.Context, packageID string, status PackageStatus) error
	Download(ctx context.Context, packageID string) ([]byte, error)
	Delete(ctx context.Context, packageID string) error
}

// Client gives access to every resource client. A v3 client only serves
// Legacy; the other accessors return nil.
type Client interface {
	Packages() PackagesClient
	Documents() DocumentsClient
	Elements() ElementsClient
	Stakeholders() StakeholdersClient
	Actors() ActorsClient
	SigningMethods() SigningMethodsClient
	AuditTrails() AuditTrailsClient
	// Legacy returns the v3 client. It is nil unless the client was built
	// with APIVersionV3.
	Legacy() LegacyPackagesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an esig.Client.
//
// Only Endpoint, Username and Password are required. esigclient.New trims a
// trailing slash from Endpoint, adds "https://" if no scheme is present and
// appends the API path for APIVersion.
type Config struct {
	// Endpoint: platform URL without path, e.g. "https://company.connective.eu".
	Endpoint string
	// Username and Password are sent as an HTTP Basic authorization header.
	Username string
	Password string
	// APIVersion defaults to APIVersionV4.
	APIVersion APIVersion

	// Optional transport overrides
	// HTTPTimeout: per-request timeout of the underlying http.Client. Zero
	// means the default of 30 seconds.
	HTTPTimeout time.Duration
	// RetryMax: number of retries on connection errors and 5xx responses.
	// The platform defines no retry policy, so the default is 0.
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff when RetryMax > 0.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPClient: optional base client, e.g. for custom TLS settings. Its
	// redirect policy is replaced so that redirects are never followed.
	HTTPClient *http.Client
}
