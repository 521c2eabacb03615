package esig

import "encoding/json"

// StakeholderType is the discriminator of stakeholders.
type StakeholderType string

// Stakeholder types. StakeholderTypeUndecided is only ever returned, for
// stakeholders the platform creates when an element is added to an existing
// document.
const (
	StakeholderTypePerson       StakeholderType = "person"
	StakeholderTypeGroup        StakeholderType = "group"
	StakeholderTypeContactGroup StakeholderType = "contactgroup"
	StakeholderTypeUndecided    StakeholderType = "undecided"
)

// StakeholderInput is implemented by every stakeholder create input.
type StakeholderInput interface {
	StakeholderType() StakeholderType
}

// Member is a person in a group stakeholder.
type Member struct {
	Language             string            `json:"Language"                       yaml:"Language"`
	FirstName            string            `json:"FirstName"                      yaml:"FirstName"`
	LastName             string            `json:"LastName"                       yaml:"LastName"`
	EmailAddress         string            `json:"EmailAddress"                   yaml:"EmailAddress"`
	PhoneNumber          Nullable[string]  `json:"PhoneNumber,omitzero"           yaml:"PhoneNumber"`
	BirthDate            Nullable[string]  `json:"BirthDate,omitzero"             yaml:"BirthDate"`
	AdditionalProperties map[string]string `json:"AdditionalProperties,omitempty" yaml:"AdditionalProperties"`
}

// PersonStakeholderInput creates a person. Language is a 2-letter ISO 639-1
// code and BirthDate has the form YYYY-MM-DD.
type PersonStakeholderInput struct {
	Language             string            `json:"Language"`
	FirstName            string            `json:"FirstName"`
	LastName             string            `json:"LastName"`
	EmailAddress         string            `json:"EmailAddress"`
	PhoneNumber          Nullable[string]  `json:"PhoneNumber,omitzero"`
	BirthDate            Nullable[string]  `json:"BirthDate,omitzero"`
	AdditionalProperties map[string]string `json:"AdditionalProperties,omitempty"`
	ExternalReference    Nullable[string]  `json:"ExternalReference,omitzero"`
	Actors               []ActorInput      `json:"Actors,omitempty"`
}

// StakeholderType implements StakeholderInput.
func (*PersonStakeholderInput) StakeholderType() StakeholderType { return StakeholderTypePerson }

// MarshalJSON adds the Type discriminator.
func (s *PersonStakeholderInput) MarshalJSON() ([]byte, error) {
	type plain PersonStakeholderInput

	return marshalTagged(string(StakeholderTypePerson), (*plain)(s))
}

// GroupStakeholderInput creates a group of persons.
type GroupStakeholderInput struct {
	GroupName         string           `json:"GroupName"`
	Members           []Member         `json:"Members"`
	ExternalReference Nullable[string] `json:"ExternalReference,omitzero"`
	Actors            []ActorInput     `json:"Actors,omitempty"`
}

// StakeholderType implements StakeholderInput.
func (*GroupStakeholderInput) StakeholderType() StakeholderType { return StakeholderTypeGroup }

// MarshalJSON adds the Type discriminator.
func (s *GroupStakeholderInput) MarshalJSON() ([]byte, error) {
	type plain GroupStakeholderInput

	return marshalTagged(string(StakeholderTypeGroup), (*plain)(s))
}

// ContactGroupStakeholderInput adds a contact group configured on the platform.
type ContactGroupStakeholderInput struct {
	ContactGroupCode  string           `json:"ContactGroupCode"`
	ExternalReference Nullable[string] `json:"ExternalReference,omitzero"`
	Actors            []ActorInput     `json:"Actors,omitempty"`
}

// StakeholderType implements StakeholderInput.
func (*ContactGroupStakeholderInput) StakeholderType() StakeholderType {
	return StakeholderTypeContactGroup
}

// MarshalJSON adds the Type discriminator.
func (s *ContactGroupStakeholderInput) MarshalJSON() ([]byte, error) {
	type plain ContactGroupStakeholderInput

	return marshalTagged(string(StakeholderTypeContactGroup), (*plain)(s))
}

// RawStakeholder is a stakeholder given as a plain object.
type RawStakeholder map[string]any

// StakeholderType implements StakeholderInput.
func (s RawStakeholder) StakeholderType() StakeholderType { return StakeholderType(rawType(s)) }

// Stakeholder is a stakeholder as returned by the platform. Fields that do
// not apply to Type are null.
type Stakeholder struct {
	ID                   string            `json:"Id"                   yaml:"Id"`
	PackageID            string            `json:"PackageId"            yaml:"PackageId"`
	Type                 StakeholderType   `json:"Type"                 yaml:"Type"`
	ExternalReference    Nullable[string]  `json:"ExternalReference"    yaml:"ExternalReference"`
	Actors               []Actor           `json:"Actors"               yaml:"Actors"`
	Substitutes          []json.RawMessage `json:"Substitutes"          yaml:"-"`
	Language             Nullable[string]  `json:"Language"             yaml:"Language"`
	FirstName            Nullable[string]  `json:"FirstName"            yaml:"FirstName"`
	LastName             Nullable[string]  `json:"LastName"             yaml:"LastName"`
	EmailAddress         Nullable[string]  `json:"EmailAddress"         yaml:"EmailAddress"`
	PhoneNumber          Nullable[string]  `json:"PhoneNumber"          yaml:"PhoneNumber"`
	BirthDate            Nullable[string]  `json:"BirthDate"            yaml:"BirthDate"`
	AdditionalProperties map[string]string `json:"AdditionalProperties" yaml:"AdditionalProperties"`
	GroupName            Nullable[string]  `json:"GroupName"            yaml:"GroupName"`
	Members              []Member          `json:"Members"              yaml:"Members"`
	ContactGroupCode     Nullable[string]  `json:"ContactGroupCode"     yaml:"ContactGroupCode"`
}
