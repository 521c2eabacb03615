package esig

// PackageStatus is the status of a package.
type PackageStatus string

// Package statuses. Only Draft and Pending can be used on create, and only
// Pending and Revoked on UpdateStatus.
const (
	PackageStatusDraft      PackageStatus = "Draft"
	PackageStatusPending    PackageStatus = "Pending"
	PackageStatusInProgress PackageStatus = "InProgress"
	PackageStatusEnding     PackageStatus = "Ending"
	PackageStatusFinished   PackageStatus = "Finished"
	PackageStatusArchived   PackageStatus = "Archived"
	PackageStatusRevoked    PackageStatus = "Revoked"
	PackageStatusExpired    PackageStatus = "Expired"
	PackageStatusFailed     PackageStatus = "Failed"
	PackageStatusRejected   PackageStatus = "Rejected"
)

// AutomaticReminderInput configures reminder emails. Enabling requires
// DaysBeforeFirstReminder; repeating requires the reminders to be enabled
// and RepeatReminders.
type AutomaticReminderInput struct {
	IsSendAutomaticRemindersEnabled *bool `json:"IsSendAutomaticRemindersEnabled,omitempty"`
	DaysBeforeFirstReminder         *int  `json:"DaysBeforeFirstReminder,omitempty"`
	IsRepeatRemindersEnabled        *bool `json:"IsRepeatRemindersEnabled,omitempty"`
	RepeatReminders                 *int  `json:"RepeatReminders,omitempty"`
}

// ExpirationReminderInput configures the reminder sent before expiry.
type ExpirationReminderInput struct {
	IsSendExpirationRemindersEnabled *bool `json:"IsSendExpirationRemindersEnabled,omitempty"`
	DaysBeforeExpirationReminder     *int  `json:"DaysBeforeExpirationReminder,omitempty"`
}

// CreatePackageInput creates a package, either from a template (TemplateCode
// and Initiator, optionally Name, ExternalReference and ProofCorrelationID)
// or from scratch (Name, Initiator and Status).
//
// Elements inside Stakeholders refer to Documents by DocumentIndex.
type CreatePackageInput struct {
	Name                            string                   `json:"Name,omitempty"`
	Initiator                       string                   `json:"Initiator"`
	Status                          PackageStatus            `json:"Status,omitempty"`
	TemplateCode                    string                   `json:"TemplateCode,omitempty"`
	DocumentGroupCode               string                   `json:"DocumentGroupCode,omitempty"`
	ExpiryTimestamp                 string                   `json:"ExpiryTimestamp,omitempty"`
	Documents                       []AddDocumentInput       `json:"Documents,omitempty"`
	Stakeholders                    []StakeholderInput       `json:"Stakeholders,omitempty"`
	DefaultLegalNotice              *LegalNotice             `json:"DefaultLegalNotice,omitempty"`
	ThemeCode                       string                   `json:"ThemeCode,omitempty"`
	CallBackURL                     string                   `json:"CallBackUrl,omitempty"`
	NotificationCallBackURL         string                   `json:"NotificationCallBackUrl,omitempty"`
	DefaultRedirectURL              string                   `json:"DefaultRedirectUrl,omitempty"`
	F2fRedirectURL                  string                   `json:"F2fRedirectUrl,omitempty"`
	IsUnsignedContentDownloadable   *bool                    `json:"IsUnsignedContentDownloadable,omitempty"`
	IsReassignEnabled               *bool                    `json:"IsReassignEnabled,omitempty"`
	ExternalReference               string                   `json:"ExternalReference,omitempty"`
	ActionURLExpirationPeriodInDays *int                     `json:"ActionUrlExpirationPeriodInDays,omitempty"`
	ProofCorrelationID              string                   `json:"ProofCorrelationId,omitempty"`
	AddInitiatorAsReceiver          *bool                    `json:"AddInitiatorAsReceiver,omitempty"`
	MustBeArchived                  *bool                    `json:"MustBeArchived,omitempty"`
	ArchiveAuditProofs              *bool                    `json:"ArchiveAuditProofs,omitempty"`
	ArchiveAuditTrail               *bool                    `json:"ArchiveAuditTrail,omitempty"`
	AutomaticReminder               *AutomaticReminderInput  `json:"AutomaticReminder,omitempty"`
	ExpirationReminder              *ExpirationReminderInput `json:"ExpirationReminder,omitempty"`
}

// AutomaticReminder is the reminder configuration of a package.
type AutomaticReminder struct {
	IsSendAutomaticRemindersEnabled bool `json:"IsSendAutomaticRemindersEnabled" yaml:"IsSendAutomaticRemindersEnabled"`
	DaysBeforeFirstReminder         int  `json:"DaysBeforeFirstReminder"         yaml:"DaysBeforeFirstReminder"`
	IsRepeatRemindersEnabled        bool `json:"IsRepeatRemindersEnabled"        yaml:"IsRepeatRemindersEnabled"`
	RepeatReminders                 int  `json:"RepeatReminders"                 yaml:"RepeatReminders"`
}

// ExpirationReminder is the expiry reminder configuration of a package.
type ExpirationReminder struct {
	IsSendExpirationRemindersEnabled bool `json:"IsSendExpirationRemindersEnabled" yaml:"IsSendExpirationRemindersEnabled"`
	DaysBeforeExpirationReminder     int  `json:"DaysBeforeExpirationReminder"     yaml:"DaysBeforeExpirationReminder"`
}

// Warning reports a problem with a package, e.g. missing data. For
// ResourceType "process" Stakeholder and Actor identify the culprit.
type Warning struct {
	ResourceType string `json:"ResourceType" yaml:"ResourceType"`
	Code         string `json:"Code"         yaml:"Code"`
	Message      string `json:"Message"      yaml:"Message"`
	Stakeholder  *struct {
		ID                string `json:"Id"                yaml:"Id"`
		ExternalReference string `json:"ExternalReference" yaml:"ExternalReference"`
	} `json:"Stakeholder,omitempty" yaml:"Stakeholder,omitempty"`
	Actor *struct {
		ID string `json:"Id" yaml:"Id"`
	} `json:"Actor,omitempty" yaml:"Actor,omitempty"`
}

// Package is a package as returned by the platform.
type Package struct {
	ID                              string              `json:"Id"                              yaml:"Id"`
	Name                            string              `json:"Name"                            yaml:"Name"`
	Status                          PackageStatus       `json:"Status"                          yaml:"Status"`
	CreationDate                    string              `json:"CreationDate"                    yaml:"CreationDate"`
	ExpiryDate                      Nullable[string]    `json:"ExpiryDate"                      yaml:"ExpiryDate"`
	Initiator                       string              `json:"Initiator"                       yaml:"Initiator"`
	UnplacedElements                []Element           `json:"UnplacedElements"                yaml:"UnplacedElements"`
	Documents                       []Document          `json:"Documents"                       yaml:"Documents"`
	Stakeholders                    []Stakeholder       `json:"Stakeholders"                    yaml:"Stakeholders"`
	DefaultLegalNotice              *LegalNotice        `json:"DefaultLegalNotice"              yaml:"DefaultLegalNotice"`
	DefaultRedirectURL              Nullable[string]    `json:"DefaultRedirectUrl"              yaml:"DefaultRedirectUrl"`
	ExternalReference               Nullable[string]    `json:"ExternalReference"               yaml:"ExternalReference"`
	DocumentGroupCode               Nullable[string]    `json:"DocumentGroupCode"               yaml:"DocumentGroupCode"`
	ThemeCode                       Nullable[string]    `json:"ThemeCode"                       yaml:"ThemeCode"`
	CallBackURL                     Nullable[string]    `json:"CallBackUrl"                     yaml:"CallBackUrl"`
	NotificationCallBackURL         Nullable[string]    `json:"NotificationCallBackUrl"         yaml:"NotificationCallBackUrl"`
	F2fSigningURL                   Nullable[string]    `json:"F2fSigningUrl"                   yaml:"F2fSigningUrl"`
	PreviewURL                      Nullable[string]    `json:"PreviewUrl"                      yaml:"PreviewUrl"`
	F2fRedirectURL                  Nullable[string]    `json:"F2fRedirectUrl"                  yaml:"F2fRedirectUrl"`
	IsUnsignedContentDownloadable   Nullable[bool]      `json:"IsUnsignedContentDownloadable"   yaml:"IsUnsignedContentDownloadable"`
	ActionURLExpirationPeriodInDays Nullable[int]       `json:"ActionUrlExpirationPeriodInDays" yaml:"ActionUrlExpirationPeriodInDays"`
	ProofCorrelationID              Nullable[string]    `json:"ProofCorrelationId"              yaml:"ProofCorrelationId"`
	AddInitiatorAsReceiver          Nullable[bool]      `json:"AddInitiatorAsReceiver"          yaml:"AddInitiatorAsReceiver"`
	Warnings                        []Warning           `json:"Warnings"                        yaml:"Warnings"`
	MustBeArchived                  Nullable[bool]      `json:"MustBeArchived"                  yaml:"MustBeArchived"`
	ArchiveAuditProofs              Nullable[bool]      `json:"ArchiveAuditProofs"              yaml:"ArchiveAuditProofs"`
	ArchiveAuditTrail               Nullable[bool]      `json:"ArchiveAuditTrail"               yaml:"ArchiveAuditTrail"`
	AutomaticReminder               *AutomaticReminder  `json:"AutomaticReminder"               yaml:"AutomaticReminder"`
	ExpirationReminder              *ExpirationReminder `json:"ExpirationReminder"              yaml:"ExpirationReminder"`
}
