package esig

import "io"

// Legacy (v3) actor types.
const (
	LegacyActorApprover = "Approver"
	LegacyActorSigner   = "Signer"
	LegacyActorReceiver = "Receiver"
)

// Legacy (v3) stakeholder types.
const (
	LegacyStakeholderPerson       = "Person"
	LegacyStakeholderPersonGroup  = "PersonGroup"
	LegacyStakeholderContactGroup = "ContactGroup"
)

// LegacyCreatePackageInput creates an empty v3 package.
type LegacyCreatePackageInput struct {
	Initiator                       string `json:"Initiator,omitempty"`
	PackageName                     string `json:"PackageName,omitempty"`
	CallBackURL                     string `json:"CallBackUrl,omitempty"`
	CorrelationID                   string `json:"CorrelationId,omitempty"`
	DocumentGroupCode               string `json:"DocumentGroupCode,omitempty"`
	ThemeCode                       string `json:"ThemeCode,omitempty"`
	DownloadUnsignedFiles           *bool  `json:"DownloadUnsignedFiles,omitempty"`
	ReassignEnabled                 *bool  `json:"ReassignEnabled,omitempty"`
	ActionURLExpirationPeriodInDays *int   `json:"ActionUrlExpirationPeriodInDays,omitempty"`
	ExpiryTimestamp                 string `json:"ExpiryTimestamp,omitempty"`
	ExternalPackageReference        string `json:"ExternalPackageReference,omitempty"`
	ExternalPackageData             string `json:"ExternalPackageData,omitempty"`
	F2FRedirectURL                  string `json:"F2FRedirectUrl,omitempty"`
	NotificationCallBackURL         string `json:"NotificationCallBackUrl,omitempty"`
}

// LegacyCreatePackageResponse is returned by the v3 package create call.
type LegacyCreatePackageResponse struct {
	CreationTimestamp string `json:"CreationTimestamp" yaml:"CreationTimestamp"`
	PackageID         string `json:"PackageId"         yaml:"PackageId"`
}

// LegacySigningField locates a signing field either by coordinates
// (PageNumber, Width, Height, Left, Top) or by MarkerOrFieldID.
type LegacySigningField struct {
	Label           string `json:"Label"`
	PageNumber      *int   `json:"PageNumber,omitempty"`
	Width           string `json:"Width,omitempty"`
	Height          string `json:"Height,omitempty"`
	Left            string `json:"Left,omitempty"`
	Top             string `json:"Top,omitempty"`
	MarkerOrFieldID string `json:"MarkerOrFieldId,omitempty"`
}

// LegacyAddDocumentInput uploads a PDF or XML document. Document is sent as
// the second multipart part; Representation, a PDF rendering of an XML
// document, as the optional third.
type LegacyAddDocumentInput struct {
	DocumentLanguage          string               `json:"DocumentLanguage"`
	DocumentName              string               `json:"DocumentName"`
	CorrelationID             string               `json:"CorrelationId,omitempty"`
	SigningFields             []LegacySigningField `json:"SigningFields"`
	DocumentType              string               `json:"DocumentType,omitempty"`
	ExternalDocumentReference string               `json:"ExternalDocumentReference,omitempty"`
	PdfErrorHandling          string               `json:"PdfErrorHandling,omitempty"`
	TargetType                string               `json:"TargetType,omitempty"`

	Document       io.Reader `json:"-"`
	Representation io.Reader `json:"-"`
}

// LegacySignatureLocation is a signing location created from a document upload.
type LegacySignatureLocation struct {
	ID         string `json:"Id"         yaml:"Id"`
	Label      string `json:"Label"      yaml:"Label"`
	PageNumber int    `json:"PageNumber" yaml:"PageNumber"`
}

// LegacyAddDocumentResponse is returned by the v3 document upload.
type LegacyAddDocumentResponse struct {
	DocumentID        string                    `json:"DocumentId"        yaml:"DocumentId"`
	CreationTimestamp string                    `json:"CreationTimestamp" yaml:"CreationTimestamp"`
	Locations         []LegacySignatureLocation `json:"Locations"         yaml:"Locations"`
}

// LegacyLocation assigns a signing location to a signer.
type LegacyLocation struct {
	ID              string `json:"Id"`
	LegalNoticeCode string `json:"LegalNoticeCode,omitempty"`
	LegalNoticeText string `json:"LegalNoticeText,omitempty"`
}

// LegacySigningType is a signing method allowed for a signer.
// MandatedSignerValidation is Disabled, MatchId (with MandatedSignerIds) or
// NameAndBirthDate (with MatchLevel).
type LegacySigningType struct {
	SigningType              string   `json:"SigningType"`
	CommitmentTypes          []string `json:"CommitmentTypes,omitempty"`
	SignaturePolicyID        string   `json:"SignaturePolicyId,omitempty"`
	MandatedSignerValidation string   `json:"MandatedSignerValidation,omitempty"`
	MandatedSignerIDs        []string `json:"MandatedSignerIds,omitempty"`
	MatchLevel               *int     `json:"MatchLevel,omitempty"`
}

// LegacyActor is a v3 actor. Type selects which fields apply.
type LegacyActor struct {
	Type              string              `json:"Type"`
	OrderIndex        *int                `json:"OrderIndex,omitempty"`
	SendNotifications *bool               `json:"SendNotifications,omitempty"`
	RedirectURL       string              `json:"RedirectURL,omitempty"`
	RedirectType      RedirectType        `json:"RedirectType,omitempty"`
	Locations         []LegacyLocation    `json:"Locations,omitempty"`
	SigningTypes      []LegacySigningType `json:"SigningTypes,omitempty"`
	Phonenumber       string              `json:"Phonenumber,omitempty"`
	UserRoles         []string            `json:"UserRoles,omitempty"`
	LegalNoticeCode   string              `json:"LegalNoticeCode,omitempty"`
	LegalNoticeText   string              `json:"LegalNoticeText,omitempty"`
}

// LegacyPerson is a person in the v3 process information.
type LegacyPerson struct {
	EmailAddress                 string `json:"EmailAddress"`
	FirstName                    string `json:"FirstName"`
	LastName                     string `json:"LastName"`
	Language                     string `json:"Language"`
	BirthDate                    string `json:"BirthDate,omitempty"`
	Phonenumber                  string `json:"Phonenumber,omitempty"`
	ExternalStakeholderReference string `json:"ExternalStakeholderReference,omitempty"`
}

// LegacyStakeholder is a v3 stakeholder. Type selects which fields apply:
// Person uses the embedded LegacyPerson, PersonGroup uses PersonGroupName
// and Persons, ContactGroup uses ContactGroupCode.
type LegacyStakeholder struct {
	Type string `json:"Type"`
	*LegacyPerson

	PersonGroupName  string         `json:"PersonGroupName,omitempty"`
	Persons          []LegacyPerson `json:"Persons,omitempty"`
	ContactGroupCode string         `json:"ContactGroupCode,omitempty"`
	Actors           []LegacyActor  `json:"Actors"`
}

// LegacyProcessInformation configures who acts on a v3 package.
type LegacyProcessInformation struct {
	Stakeholders []LegacyStakeholder `json:"Stakeholders"`
}

// LegacyPackageDocument is a document in a v3 status response.
type LegacyPackageDocument struct {
	DocumentID                string           `json:"DocumentId"                yaml:"DocumentId"`
	ExternalDocumentReference Nullable[string] `json:"ExternalDocumentReference" yaml:"ExternalDocumentReference"`
	DocumentName              string           `json:"DocumentName"              yaml:"DocumentName"`
	DocumentType              string           `json:"DocumentType"              yaml:"DocumentType"`
}

// LegacyActionURL is an action URL in a v3 status response.
type LegacyActionURL struct {
	EmailAddress string `json:"EmailAddress" yaml:"EmailAddress"`
	URL          string `json:"Url"          yaml:"Url"`
}

// LegacyActorLocation is a signing location in a v3 status response.
type LegacyActorLocation struct {
	ID              string           `json:"Id"              yaml:"Id"`
	UsedSigningType Nullable[string] `json:"UsedSigningType" yaml:"UsedSigningType"`
}

// LegacyPackageActor is an actor in a v3 status response.
type LegacyPackageActor struct {
	Type               string                `json:"Type"               yaml:"Type"`
	ActorID            string                `json:"ActorId"            yaml:"ActorId"`
	ActionURL          Nullable[string]      `json:"ActionUrl"          yaml:"ActionUrl"`
	ActionURLs         []LegacyActionURL     `json:"ActionUrls"         yaml:"ActionUrls"`
	ActorStatus        string                `json:"ActorStatus"        yaml:"ActorStatus"`
	CompletedBy        Nullable[string]      `json:"CompletedBy"        yaml:"CompletedBy"`
	CompletedTimestamp Nullable[string]      `json:"CompletedTimestamp" yaml:"CompletedTimestamp"`
	Reason             Nullable[string]      `json:"Reason"             yaml:"Reason"`
	Locations          []LegacyActorLocation `json:"Locations"          yaml:"Locations"`
}

// LegacyPackageStakeholder is a stakeholder in a v3 status response.
type LegacyPackageStakeholder struct {
	Type                         string               `json:"Type"                         yaml:"Type"`
	StakeholderID                string               `json:"StakeholderId"                yaml:"StakeholderId"`
	ExternalStakeholderReference Nullable[string]     `json:"ExternalStakeholderReference" yaml:"ExternalStakeholderReference"`
	EmailAddress                 Nullable[string]     `json:"EmailAddress"                 yaml:"EmailAddress"`
	PersonGroupName              Nullable[string]     `json:"PersonGroupName"              yaml:"PersonGroupName"`
	ContactGroupCode             Nullable[string]     `json:"ContactGroupCode"             yaml:"ContactGroupCode"`
	Actors                       []LegacyPackageActor `json:"Actors"                       yaml:"Actors"`
}

// LegacyStatusResponse is the v3 package status.
type LegacyStatusResponse struct {
	PackageName              string                     `json:"PackageName"              yaml:"PackageName"`
	CreationTimestamp        string                     `json:"CreationTimestamp"        yaml:"CreationTimestamp"`
	Initiator                string                     `json:"Initiator"                yaml:"Initiator"`
	ExpiryTimestamp          Nullable[string]           `json:"ExpiryTimestamp"          yaml:"ExpiryTimestamp"`
	ExternalPackageReference Nullable[string]           `json:"ExternalPackageReference" yaml:"ExternalPackageReference"`
	F2FSigningURL            Nullable[string]           `json:"F2FSigningUrl"            yaml:"F2FSigningUrl"`
	PackageStatus            PackageStatus              `json:"PackageStatus"            yaml:"PackageStatus"`
	PackageDocuments         []LegacyPackageDocument    `json:"PackageDocuments"         yaml:"PackageDocuments"`
	Stakeholders             []LegacyPackageStakeholder `json:"Stakeholders"             yaml:"Stakeholders"`
}
