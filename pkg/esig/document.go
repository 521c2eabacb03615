package esig

// DocumentStatus is the status of a document within a package.
type DocumentStatus string

// Document statuses.
const (
	DocumentStatusDraft      DocumentStatus = "draft"
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusInProgress DocumentStatus = "inProgress"
	DocumentStatusEnding     DocumentStatus = "ending"
	DocumentStatusFinished   DocumentStatus = "finished"
	DocumentStatusArchived   DocumentStatus = "archived"
	DocumentStatusRejected   DocumentStatus = "rejected"
	DocumentStatusRevoked    DocumentStatus = "revoked"
	DocumentStatusExpired    DocumentStatus = "expired"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// Document content types accepted on upload.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXML  = "application/xml"
	ContentTypeDOC  = "application/msword"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

// PdfOptions apply when DocumentOptions.TargetType is application/pdf.
type PdfOptions struct {
	// TargetFormat is pdf, pdfa1a or pdfa2a.
	TargetFormat string `json:"TargetFormat,omitempty"`
	// PdfErrorHandling is Ignore, DetectWarn, DetectFail, DetectFixWarn or DetectFixFail.
	PdfErrorHandling string `json:"PdfErrorHandling,omitempty"`
}

// DocumentOptions carries the document content.
type DocumentOptions struct {
	TargetType  string      `json:"TargetType,omitempty"`
	PdfOptions  *PdfOptions `json:"PdfOptions,omitempty"`
	Base64Data  string      `json:"Base64data"`
	ContentType string      `json:"ContentType"`
}

// RepresentationOptions carries a PDF representation of an XML document.
type RepresentationOptions struct {
	Base64Data  string `json:"Base64data"`
	ContentType string `json:"ContentType"`
}

// AddDocumentInput adds a document to a package. Name should be passed
// through SanitizeName and carry no extension.
type AddDocumentInput struct {
	Name                  string                 `json:"Name"`
	Language              string                 `json:"Language"`
	IsOptional            *bool                  `json:"IsOptional,omitempty"`
	ExternalReference     string                 `json:"ExternalReference,omitempty"`
	Elements              []ElementInput         `json:"Elements,omitempty"`
	ProofCorrelationID    string                 `json:"ProofCorrelationId,omitempty"`
	DocumentOptions       DocumentOptions        `json:"DocumentOptions"`
	RepresentationOptions *RepresentationOptions `json:"RepresentationOptions,omitempty"`
}

// Document is a document as returned by the platform.
//
// OrderIndex is reported off by one: the first document reports 2 while
// GetByOrderIndex expects 1. Use DocumentOrderIndex to convert.
type Document struct {
	ID                 string           `json:"Id"                 yaml:"Id"`
	PackageID          string           `json:"PackageId"          yaml:"PackageId"`
	Name               string           `json:"Name"               yaml:"Name"`
	CreationDate       string           `json:"CreationDate"       yaml:"CreationDate"`
	IsOptional         bool             `json:"IsOptional"         yaml:"IsOptional"`
	MediaType          string           `json:"MediaType"          yaml:"MediaType"`
	Language           Nullable[string] `json:"Language"           yaml:"Language"`
	Status             DocumentStatus   `json:"Status"             yaml:"Status"`
	Elements           []Element        `json:"Elements"           yaml:"Elements"`
	ExternalReference  Nullable[string] `json:"ExternalReference"  yaml:"ExternalReference"`
	OrderIndex         int              `json:"OrderIndex"         yaml:"OrderIndex"`
	ProofCorrelationID Nullable[string] `json:"ProofCorrelationId" yaml:"ProofCorrelationId"`
}

// DocumentOrderIndex returns the index GetByOrderIndex expects for d.
func DocumentOrderIndex(d *Document) int {
	return d.OrderIndex - 1
}
