package esig

// ActorType is the discriminator of actors.
type ActorType string

// Actor types.
const (
	ActorTypeFormFiller ActorType = "formFiller"
	ActorTypeApprover   ActorType = "approver"
	ActorTypeSigner     ActorType = "signer"
	ActorTypeReceiver   ActorType = "receiver"
)

// ActorStatus is the progress of an actor's action.
type ActorStatus string

// Actor statuses.
const (
	ActorStatusDraft      ActorStatus = "Draft"
	ActorStatusWaiting    ActorStatus = "Waiting"
	ActorStatusAvailable  ActorStatus = "Available"
	ActorStatusInProgress ActorStatus = "InProgress"
	ActorStatusFailed     ActorStatus = "Failed"
	ActorStatusFinished   ActorStatus = "Finished"
	ActorStatusRejected   ActorStatus = "Rejected"
	ActorStatusSkipped    ActorStatus = "Skipped"
)

// RedirectType selects when a form filler or signer is sent to RedirectURL.
type RedirectType string

// Redirect types.
const (
	RedirectAfterSession    RedirectType = "AfterSession"
	RedirectAfterCompletion RedirectType = "AfterCompletion"
	RedirectAfterDelay      RedirectType = "AfterDelay"
	RedirectImmediately     RedirectType = "Immediately"
)

// ActorInput is implemented by every actor create input.
type ActorInput interface {
	ActorType() ActorType
}

// FormFillerActorInput creates a form filler. RedirectType requires RedirectURL.
type FormFillerActorInput struct {
	SuppressNotifications Nullable[bool]         `json:"SuppressNotifications,omitzero"`
	BackButtonURL         Nullable[string]       `json:"BackButtonUrl,omitzero"`
	RedirectURL           Nullable[string]       `json:"RedirectUrl,omitzero"`
	RedirectType          Nullable[RedirectType] `json:"RedirectType,omitzero"`
	Elements              []FormElementInput     `json:"Elements"`
}

// ActorType implements ActorInput.
func (*FormFillerActorInput) ActorType() ActorType { return ActorTypeFormFiller }

// MarshalJSON adds the Type discriminator.
func (a *FormFillerActorInput) MarshalJSON() ([]byte, error) {
	type plain FormFillerActorInput

	return marshalTagged(string(ActorTypeFormFiller), (*plain)(a))
}

// ApproverActorInput creates an approver.
type ApproverActorInput struct {
	SuppressNotifications Nullable[bool]   `json:"SuppressNotifications,omitzero"`
	BackButtonURL         Nullable[string] `json:"BackButtonUrl,omitzero"`
	RedirectURL           Nullable[string] `json:"RedirectUrl,omitzero"`
}

// ActorType implements ActorInput.
func (*ApproverActorInput) ActorType() ActorType { return ActorTypeApprover }

// MarshalJSON adds the Type discriminator.
func (a *ApproverActorInput) MarshalJSON() ([]byte, error) {
	type plain ApproverActorInput

	return marshalTagged(string(ActorTypeApprover), (*plain)(a))
}

// SignerActorInput creates a signer. RedirectType requires RedirectURL.
type SignerActorInput struct {
	SuppressNotifications Nullable[bool]         `json:"SuppressNotifications,omitzero"`
	BackButtonURL         Nullable[string]       `json:"BackButtonUrl,omitzero"`
	RedirectURL           Nullable[string]       `json:"RedirectUrl,omitzero"`
	RedirectType          Nullable[RedirectType] `json:"RedirectType,omitzero"`
	Elements              []*SigningFieldInput   `json:"Elements"`
}

// ActorType implements ActorInput.
func (*SignerActorInput) ActorType() ActorType { return ActorTypeSigner }

// MarshalJSON adds the Type discriminator.
func (a *SignerActorInput) MarshalJSON() ([]byte, error) {
	type plain SignerActorInput

	return marshalTagged(string(ActorTypeSigner), (*plain)(a))
}

// ReceiverActorInput creates a receiver.
type ReceiverActorInput struct {
	SuppressNotifications Nullable[bool] `json:"SuppressNotifications,omitzero"`
}

// ActorType implements ActorInput.
func (*ReceiverActorInput) ActorType() ActorType { return ActorTypeReceiver }

// MarshalJSON adds the Type discriminator.
func (a *ReceiverActorInput) MarshalJSON() ([]byte, error) {
	type plain ReceiverActorInput

	return marshalTagged(string(ActorTypeReceiver), (*plain)(a))
}

// RawActor is an actor given as a plain object. Its Type key selects the variant.
type RawActor map[string]any

// ActorType implements ActorInput.
func (a RawActor) ActorType() ActorType { return ActorType(rawType(a)) }

// MemberLink is the link a group member uses to act on a package.
type MemberLink struct {
	Email string `json:"Email" yaml:"Email"`
	Link  string `json:"Link"  yaml:"Link"`
}

// ActionURL lets a person preview, sign or download a package.
type ActionURL struct {
	Email string `json:"Email" yaml:"Email"`
	URL   string `json:"Url"   yaml:"Url"`
	// Type is Download, Preview or Signer.
	Type string `json:"Type" yaml:"Type"`
}

// ActorCompletedBy identifies who completed an action.
type ActorCompletedBy struct {
	Email        string           `json:"Email"        yaml:"Email"`
	VerifiedName Nullable[string] `json:"VerifiedName" yaml:"VerifiedName"`
}

// ActorResult is the outcome of a finished or rejected action.
type ActorResult struct {
	CompletedBy   *ActorCompletedBy `json:"CompletedBy"   yaml:"CompletedBy"`
	CompletedDate string            `json:"CompletedDate" yaml:"CompletedDate"`
	SigningMethod Nullable[string]  `json:"SigningMethod" yaml:"SigningMethod"`
	RejectReason  Nullable[string]  `json:"RejectReason"  yaml:"RejectReason"`
}

// Actor is an actor as returned by the platform. Result is set once Status
// is Finished or Rejected.
type Actor struct {
	ID                    string                 `json:"Id"                    yaml:"Id"`
	Type                  ActorType              `json:"Type"                  yaml:"Type"`
	Status                ActorStatus            `json:"Status"                yaml:"Status"`
	SuppressNotifications Nullable[bool]         `json:"SuppressNotifications" yaml:"SuppressNotifications"`
	BackButtonURL         Nullable[string]       `json:"BackButtonUrl"         yaml:"BackButtonUrl"`
	RedirectURL           Nullable[string]       `json:"RedirectUrl"           yaml:"RedirectUrl"`
	RedirectType          Nullable[RedirectType] `json:"RedirectType"          yaml:"RedirectType"`
	Links                 []string               `json:"Links"                 yaml:"Links"`
	MemberLinks           []MemberLink           `json:"MemberLinks"           yaml:"MemberLinks"`
	ActionURLs            []ActionURL            `json:"ActionUrls"            yaml:"ActionUrls"`
	Result                *ActorResult           `json:"Result"                yaml:"Result"`
	Elements              []Element              `json:"Elements"              yaml:"Elements"`
}
