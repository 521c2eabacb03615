package esig

import "encoding/json"

// ElementType is the discriminator of document elements.
type ElementType string

// Element types.
const (
	ElementTypeCheckboxField ElementType = "checkboxfield"
	ElementTypeRadioGroup    ElementType = "radiogroup"
	ElementTypeSigningField  ElementType = "signingfield"
	ElementTypeTextBoxField  ElementType = "textboxfield"
)

// ElementStatus is the completion status of an element.
type ElementStatus string

// Element statuses.
const (
	ElementStatusPending    ElementStatus = "Pending"
	ElementStatusInProgress ElementStatus = "InProgress"
	ElementStatusRejected   ElementStatus = "Rejected"
	ElementStatusFailed     ElementStatus = "Failed"
	ElementStatusFinished   ElementStatus = "Finished"
	ElementStatusRefused    ElementStatus = "Refused"
)

// ElementLocation places an element on a page. Page 1 is the first page and
// -1 the last. Top and Left are in points (1/72 inch).
type ElementLocation struct {
	Page int     `json:"Page" yaml:"Page"`
	Top  float64 `json:"Top"  yaml:"Top"`
	Left float64 `json:"Left" yaml:"Left"`
}

// ElementDimensions is the size of an element in points.
type ElementDimensions struct {
	Width  float64 `json:"Width"  yaml:"Width"`
	Height float64 `json:"Height" yaml:"Height"`
}

// ElementLocator identifies where an element goes. Exactly one of Marker,
// FieldID, or Location with Dimensions must be set.
type ElementLocator struct {
	// Marker is a text in the document, e.g. "#SIG01".
	Marker string `json:"Marker,omitempty"`
	// FieldID names an existing form field. It must be unique per document.
	FieldID    string             `json:"FieldId,omitempty"`
	Location   *ElementLocation   `json:"Location,omitempty"`
	Dimensions *ElementDimensions `json:"Dimensions,omitempty"`
}

// ElementPlacement attaches an element to a document. DocumentID refers to
// an existing document, DocumentIndex to a document created in the same
// package create call.
type ElementPlacement struct {
	DocumentID    string `json:"DocumentId,omitempty"`
	DocumentIndex *int   `json:"DocumentIndex,omitempty"`
}

// ElementInput is implemented by every element create input.
type ElementInput interface {
	ElementType() ElementType
}

// FormElementInput is an element a form filler can complete.
type FormElementInput interface {
	ElementInput
	formElement()
}

// CheckboxFieldInput creates a checkbox. Name may only be used with a
// Location locator.
type CheckboxFieldInput struct {
	ElementLocator
	ElementPlacement

	Name              Nullable[string] `json:"Name,omitzero"`
	Label             Nullable[string] `json:"Label,omitzero"`
	ToolTipLabel      Nullable[string] `json:"ToolTipLabel,omitzero"`
	IsRequired        Nullable[bool]   `json:"IsRequired,omitzero"`
	DefaultValue      Nullable[bool]   `json:"DefaultValue,omitzero"`
	ExternalReference Nullable[string] `json:"ExternalReference,omitzero"`
}

// ElementType implements ElementInput.
func (*CheckboxFieldInput) ElementType() ElementType { return ElementTypeCheckboxField }

func (*CheckboxFieldInput) formElement() {}

// MarshalJSON adds the Type discriminator.
func (f *CheckboxFieldInput) MarshalJSON() ([]byte, error) {
	type plain CheckboxFieldInput

	return marshalTagged(string(ElementTypeCheckboxField), (*plain)(f))
}

// RadioOption is one option of a new radio group.
type RadioOption struct {
	Name         string             `json:"Name"                   yaml:"Name"`
	Location     *ElementLocation   `json:"Location,omitempty"     yaml:"Location,omitempty"`
	Dimensions   *ElementDimensions `json:"Dimensions,omitempty"   yaml:"Dimensions,omitempty"`
	ToolTipLabel Nullable[string]   `json:"ToolTipLabel,omitzero"  yaml:"ToolTipLabel,omitempty"`
	Label        string             `json:"Label,omitempty"        yaml:"Label,omitempty"`
	IsSelected   bool               `json:"IsSelected"             yaml:"IsSelected"`
}

// RadioGroupInput creates a radio group, either from Options or from an
// existing field identified by FieldID. Name cannot be combined with FieldID.
type RadioGroupInput struct {
	ElementPlacement

	FieldID           string           `json:"FieldId,omitempty"`
	Options           []RadioOption    `json:"Options,omitempty"`
	Name              Nullable[string] `json:"Name,omitzero"`
	Label             Nullable[string] `json:"Label,omitzero"`
	ToolTipLabel      Nullable[string] `json:"ToolTipLabel,omitzero"`
	IsRequired        Nullable[bool]   `json:"IsRequired,omitzero"`
	ExternalReference Nullable[string] `json:"ExternalReference,omitzero"`
}

// ElementType implements ElementInput.
func (*RadioGroupInput) ElementType() ElementType { return ElementTypeRadioGroup }

func (*RadioGroupInput) formElement() {}

// MarshalJSON adds the Type discriminator.
func (g *RadioGroupInput) MarshalJSON() ([]byte, error) {
	type plain RadioGroupInput

	return marshalTagged(string(ElementTypeRadioGroup), (*plain)(g))
}

// SigningFieldInput creates a signing field.
type SigningFieldInput struct {
	ElementLocator
	ElementPlacement

	// SigningMethods lists the methods that may be used, e.g. "manual".
	SigningMethods    []string         `json:"SigningMethods,omitempty"`
	LegalNotice       *LegalNotice     `json:"LegalNotice,omitempty"`
	ExternalReference Nullable[string] `json:"ExternalReference,omitzero"`
}

// ElementType implements ElementInput.
func (*SigningFieldInput) ElementType() ElementType { return ElementTypeSigningField }

// MarshalJSON adds the Type discriminator.
func (f *SigningFieldInput) MarshalJSON() ([]byte, error) {
	type plain SigningFieldInput

	return marshalTagged(string(ElementTypeSigningField), (*plain)(f))
}

// TextBoxFieldInput creates a text box. A new text box needs Name and either
// Location or Marker. A FieldID refers to an existing text box and excludes
// Name, IsMultiline and CharLimit.
type TextBoxFieldInput struct {
	ElementLocator
	ElementPlacement

	Name              string           `json:"Name,omitempty"`
	IsMultiline       Nullable[bool]   `json:"IsMultiline,omitzero"`
	CharLimit         Nullable[int]    `json:"CharLimit,omitzero"`
	Label             Nullable[string] `json:"Label,omitzero"`
	ToolTipLabel      Nullable[string] `json:"ToolTipLabel,omitzero"`
	IsRequired        Nullable[bool]   `json:"IsRequired,omitzero"`
	DefaultValue      Nullable[string] `json:"DefaultValue,omitzero"`
	ExternalReference Nullable[string] `json:"ExternalReference,omitzero"`
}

// ElementType implements ElementInput.
func (*TextBoxFieldInput) ElementType() ElementType { return ElementTypeTextBoxField }

func (*TextBoxFieldInput) formElement() {}

// MarshalJSON adds the Type discriminator.
func (f *TextBoxFieldInput) MarshalJSON() ([]byte, error) {
	type plain TextBoxFieldInput

	return marshalTagged(string(ElementTypeTextBoxField), (*plain)(f))
}

// RawElement is an element given as a plain object. Its Type key selects the
// variant; no field is checked until the element is encoded.
type RawElement map[string]any

// ElementType implements ElementInput.
func (e RawElement) ElementType() ElementType { return ElementType(rawType(e)) }

func (RawElement) formElement() {}

// Element is a document element as returned by the platform. Fields that do
// not apply to Type are null.
type Element struct {
	ID                string             `json:"Id"                yaml:"Id"`
	Type              ElementType        `json:"Type"              yaml:"Type"`
	ActorID           Nullable[string]   `json:"ActorId"           yaml:"ActorId"`
	Status            ElementStatus      `json:"Status"            yaml:"Status"`
	CompletedDate     Nullable[string]   `json:"CompletedDate"     yaml:"CompletedDate"`
	ExternalReference Nullable[string]   `json:"ExternalReference" yaml:"ExternalReference"`
	Location          *ElementLocation   `json:"Location"          yaml:"Location"`
	Dimensions        *ElementDimensions `json:"Dimensions"        yaml:"Dimensions"`
	Name              Nullable[string]   `json:"Name"              yaml:"Name"`
	Label             Nullable[string]   `json:"Label"             yaml:"Label"`
	ToolTipLabel      Nullable[string]   `json:"ToolTipLabel"      yaml:"ToolTipLabel"`
	IsRequired        Nullable[bool]     `json:"IsRequired"        yaml:"IsRequired"`
	// DefaultValue is a bool for checkboxes and a string for text boxes.
	DefaultValue      json.RawMessage  `json:"DefaultValue"      yaml:"-"`
	Checked           Nullable[bool]   `json:"Checked"           yaml:"Checked"`
	Options           []RadioOption    `json:"Options"           yaml:"Options"`
	Selected          Nullable[string] `json:"Selected"          yaml:"Selected"`
	SigningMethods    []string         `json:"SigningMethods"    yaml:"SigningMethods"`
	LegalNotice       *LegalNotice     `json:"LegalNotice"       yaml:"LegalNotice"`
	UsedSigningMethod Nullable[string] `json:"UsedSigningMethod" yaml:"UsedSigningMethod"`
	IsMultiline       Nullable[bool]   `json:"IsMultiline"       yaml:"IsMultiline"`
	CharLimit         Nullable[int]    `json:"CharLimit"         yaml:"CharLimit"`
	Value             Nullable[string] `json:"Value"             yaml:"Value"`
}

// LegalNotice is a text the signer must retype before signing. Set exactly
// one of Text (a custom notice) or Name (a notice configured on the
// platform, e.g. "LEGALNOTICE1").
type LegalNotice struct {
	Text string `json:"Text,omitempty" yaml:"Text,omitempty"`
	Name string `json:"Name,omitempty" yaml:"Name,omitempty"`
}
