package schema

import (
	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/shape"
)

// Locator descriptor names.
const (
	ByCoordinates     = "ByCoordinates"
	ByMarker          = "ByMarker"
	ByFieldIdentifier = "ByFieldIdentifier"
	ByOptions         = "ByOptions"
	ByText            = "ByText"
	ByName            = "ByName"
)

// v4 wire field names used by more than one declaration.
const (
	fieldType              = "Type"
	fieldID                = "Id"
	fieldStatus            = "Status"
	fieldName              = "Name"
	fieldLocation          = "Location"
	fieldDimensions        = "Dimensions"
	fieldMarker            = "Marker"
	fieldFieldID           = "FieldId"
	fieldElements          = "Elements"
	fieldActors            = "Actors"
	fieldExternalReference = "ExternalReference"
	fieldRedirectURL       = "RedirectUrl"
	fieldRedirectType      = "RedirectType"
	fieldBackButtonURL     = "BackButtonUrl"
	fieldResult            = "Result"
)

var legalNoticeGroup = shape.Group{
	Name: "legal notice",
	Descriptors: []shape.Descriptor{
		{Name: ByText, Required: []string{"Text"}, Forbidden: []string{"Name"}},
		{Name: ByName, Required: []string{"Name"}, Forbidden: []string{"Text"}},
	},
}

var checkboxLocator = shape.Group{
	Name: "checkbox locator",
	Descriptors: []shape.Descriptor{
		{Name: ByCoordinates, Required: []string{fieldLocation, fieldDimensions}, Optional: []string{fieldName}},
		{Name: ByMarker, Required: []string{fieldMarker}, Forbidden: []string{fieldName}},
		{Name: ByFieldIdentifier, Required: []string{fieldFieldID}, Forbidden: []string{fieldName}},
	},
}

var radioGroupLocator = shape.Group{
	Name: "radio group locator",
	Descriptors: []shape.Descriptor{
		{Name: ByFieldIdentifier, Required: []string{fieldFieldID}, Forbidden: []string{fieldName}},
		{Name: ByOptions, Required: []string{"Options"}, Optional: []string{fieldName}},
	},
}

var radioOptionGroup = shape.Group{
	Name: "radio option",
	Descriptors: []shape.Descriptor{
		{
			Name:     "Option",
			Required: []string{fieldName, fieldLocation, fieldDimensions},
			Optional: []string{"ToolTipLabel", "Label", "IsSelected"},
		},
	},
}

var signingFieldLocator = shape.Group{
	Name: "signing field locator",
	Descriptors: []shape.Descriptor{
		{Name: ByCoordinates, Required: []string{fieldLocation, fieldDimensions}},
		{Name: ByMarker, Required: []string{fieldMarker}},
		{Name: ByFieldIdentifier, Required: []string{fieldFieldID}},
	},
}

var textBoxLocator = shape.Group{
	Name: "text box locator",
	Descriptors: []shape.Descriptor{
		{
			Name:     ByCoordinates,
			Required: []string{fieldLocation, fieldDimensions, fieldName},
			Optional: []string{"IsMultiline", "CharLimit"},
		},
		{
			Name:     ByMarker,
			Required: []string{fieldMarker, fieldName},
			Optional: []string{"IsMultiline", "CharLimit"},
		},
		{
			Name:      ByFieldIdentifier,
			Required:  []string{fieldFieldID},
			Forbidden: []string{fieldName, "IsMultiline", "CharLimit"},
		},
	},
}

// Reminder descriptor names.
const (
	RemindersDisabled  = "Disabled"
	RemindersNoRepeat  = "EnabledNoRepeat"
	RemindersRepeating = "EnabledWithRepeat"
)

var reminderGroup = shape.Group{
	Name: "automatic reminder",
	Descriptors: []shape.Descriptor{
		{Name: RemindersDisabled, Forbidden: []string{"DaysBeforeFirstReminder", "RepeatReminders"}},
		{Name: RemindersNoRepeat, Required: []string{"DaysBeforeFirstReminder"}, Forbidden: []string{"RepeatReminders"}},
		{Name: RemindersRepeating, Required: []string{"DaysBeforeFirstReminder", "RepeatReminders"}},
	},
}

// Package create descriptor names.
const (
	FromTemplate    = "FromTemplate"
	WithoutTemplate = "WithoutTemplate"
)

var packageCreateGroup = shape.Group{
	Name: "package",
	Descriptors: []shape.Descriptor{
		{
			Name:     FromTemplate,
			Required: []string{"TemplateCode", "Initiator"},
			Optional: []string{fieldName, fieldExternalReference, "ProofCorrelationId"},
		},
		{
			Name:      WithoutTemplate,
			Required:  []string{fieldName, "Initiator", fieldStatus},
			Forbidden: []string{"TemplateCode"},
		},
	},
}

var documentGroup = shape.Group{
	Name: "document",
	Descriptors: []shape.Descriptor{
		{Name: "Document", Required: []string{fieldName, "Language", "DocumentOptions"}},
	},
}

var documentContentGroup = shape.Group{
	Name: "document content",
	Descriptors: []shape.Descriptor{
		{Name: "Content", Required: []string{"Base64data", "ContentType"}, Optional: []string{"TargetType", "PdfOptions"}},
	},
}

var personGroup = shape.Group{
	Name: "person",
	Descriptors: []shape.Descriptor{
		{Name: "Person", Required: []string{"Language", "FirstName", "LastName", "EmailAddress"}},
	},
}

var memberGroup = shape.Group{
	Name: "group",
	Descriptors: []shape.Descriptor{
		{Name: "Group", Required: []string{"GroupName", "Members"}},
	},
}

var contactGroupGroup = shape.Group{
	Name: "contact group",
	Descriptors: []shape.Descriptor{
		{Name: "ContactGroup", Required: []string{"ContactGroupCode"}},
	},
}

// Rule names.
const (
	RuleAutomaticRemindersRequireDays  = "automatic-reminders-require-days"
	RuleRepeatRemindersRequireEnabled  = "repeat-reminders-require-enabled"
	RuleRepeatRemindersRequireCount    = "repeat-reminders-require-count"
	RuleExpirationRemindersRequireDays = "expiration-reminders-require-days"
	RuleRedirectTypeRequiresURL        = "redirect-type-requires-url"
	RuleRedirectTypeNotAllowed         = "redirect-type-not-allowed"
	RuleReceiverHasNoNavigation        = "receiver-has-no-navigation"
	RuleFinishedActorHasResult         = "finished-actor-has-result"
	RuleRejectedActorHasResult         = "rejected-actor-has-result"
	RuleUndecidedIsOutputOnly          = "undecided-stakeholder-is-output-only"
)

var reminderRules = []shape.Rule{
	{
		Name:    RuleAutomaticRemindersRequireDays,
		When:    []shape.Predicate{shape.Equals("IsSendAutomaticRemindersEnabled", true)},
		Require: []string{"DaysBeforeFirstReminder"},
	},
	{
		Name:    RuleRepeatRemindersRequireEnabled,
		When:    []shape.Predicate{shape.Equals("IsRepeatRemindersEnabled", true)},
		Require: []string{"IsSendAutomaticRemindersEnabled"},
		Expect:  []shape.Predicate{shape.Equals("IsSendAutomaticRemindersEnabled", true)},
	},
	{
		Name:    RuleRepeatRemindersRequireCount,
		When:    []shape.Predicate{shape.Equals("IsRepeatRemindersEnabled", true)},
		Require: []string{"RepeatReminders"},
	},
}

var expirationReminderRules = []shape.Rule{
	{
		Name:    RuleExpirationRemindersRequireDays,
		When:    []shape.Predicate{shape.Equals("IsSendExpirationRemindersEnabled", true)},
		Require: []string{"DaysBeforeExpirationReminder"},
	},
}

var redirectRules = []shape.Rule{
	{
		Name:    RuleRedirectTypeRequiresURL,
		When:    []shape.Predicate{shape.Present(fieldRedirectType)},
		Require: []string{fieldRedirectURL},
	},
}

var resultRules = []shape.Rule{
	{
		Name:    RuleFinishedActorHasResult,
		When:    []shape.Predicate{shape.Equals(fieldStatus, string(esig.ActorStatusFinished))},
		Require: []string{fieldResult},
		Phase:   shape.PhaseDecode,
	},
	{
		Name:    RuleRejectedActorHasResult,
		When:    []shape.Predicate{shape.Equals(fieldStatus, string(esig.ActorStatusRejected))},
		Require: []string{fieldResult},
		Phase:   shape.PhaseDecode,
	},
}

// Fields with a meaning of their own when sent as null: the platform keeps
// the value already present in the document.
var keepOnNull = shape.PresenceSet{
	"Label":        shape.PresenceKey,
	"ToolTipLabel": shape.PresenceKey,
	"IsRequired":   shape.PresenceKey,
	"DefaultValue": shape.PresenceKey,
}

var (
	elementInputOnly  = []string{"DocumentId", "DocumentIndex", fieldMarker, fieldFieldID}
	elementOutputOnly = []string{fieldID, "ActorId", fieldStatus, "CompletedDate"}
)

func elementVariant(typ esig.ElementType, locator *shape.Group, result string, output ...string) shape.Variant {
	return shape.Variant{
		Discriminator: string(typ),
		Locator:       locator,
		Presence:      keepOnNull,
		InputOnly:     elementInputOnly,
		OutputOnly:    append(append([]string{}, elementOutputOnly...), result),
		Output:        append([]string{fieldExternalReference}, output...),
	}
}

var (
	checkboxVariant = elementVariant(esig.ElementTypeCheckboxField, &checkboxLocator, "Checked",
		fieldLocation, fieldDimensions, fieldName, "Label", "ToolTipLabel", "IsRequired", "DefaultValue")

	radioGroupVariant = func() shape.Variant {
		v := elementVariant(esig.ElementTypeRadioGroup, &radioGroupLocator, "Selected",
			fieldName, "Label", "ToolTipLabel", "IsRequired", "Options")
		v.Nested = map[string]shape.Nested{
			"Options": {Group: &radioOptionGroup, Output: []string{"ToolTipLabel"}},
		}

		return v
	}()

	signingFieldVariant = func() shape.Variant {
		v := elementVariant(esig.ElementTypeSigningField, &signingFieldLocator, "UsedSigningMethod",
			fieldLocation, fieldDimensions, "SigningMethods", "LegalNotice")
		v.Nested = map[string]shape.Nested{
			"LegalNotice": {Group: &legalNoticeGroup, Output: []string{"Text", "Name"}},
		}

		return v
	}()

	textBoxVariant = elementVariant(esig.ElementTypeTextBoxField, &textBoxLocator, "Value",
		fieldLocation, fieldDimensions, fieldName, "IsMultiline", "CharLimit",
		"Label", "ToolTipLabel", "IsRequired", "DefaultValue")
)

var (
	v4Elements = shape.NewRegistry("element", fieldType).
			MustRegister(checkboxVariant, radioGroupVariant, signingFieldVariant, textBoxVariant)
	v4FormElements = shape.NewRegistry("form element", fieldType).
			MustRegister(checkboxVariant, radioGroupVariant, textBoxVariant)
	v4SigningElements = shape.NewRegistry("signing element", fieldType).
				MustRegister(signingFieldVariant)
)

var actorOutputOnly = []string{fieldID, fieldStatus, "Links", "MemberLinks", "ActionUrls"}

var v4Actors = shape.NewRegistry("actor", fieldType).MustRegister(
	shape.Variant{
		Discriminator: string(esig.ActorTypeFormFiller),
		Rules:         append(append([]shape.Rule{}, redirectRules...), resultRules...),
		OutputOnly:    append(append([]string{}, actorOutputOnly...), fieldResult),
		Output:        []string{"SuppressNotifications", fieldBackButtonURL, fieldRedirectURL, fieldRedirectType, fieldElements},
		Nested:        map[string]shape.Nested{fieldElements: {Registry: v4FormElements}},
	},
	shape.Variant{
		Discriminator: string(esig.ActorTypeApprover),
		Rules: append([]shape.Rule{{
			Name:   RuleRedirectTypeNotAllowed,
			Forbid: []string{fieldRedirectType},
		}}, resultRules...),
		OutputOnly: append(append([]string{}, actorOutputOnly...), fieldResult),
		Output:     []string{"SuppressNotifications", fieldBackButtonURL, fieldRedirectURL},
	},
	shape.Variant{
		Discriminator: string(esig.ActorTypeSigner),
		Rules:         append(append([]shape.Rule{}, redirectRules...), resultRules...),
		OutputOnly:    append(append([]string{}, actorOutputOnly...), fieldResult),
		Output:        []string{"SuppressNotifications", fieldBackButtonURL, fieldRedirectURL, fieldRedirectType, fieldElements},
		Nested:        map[string]shape.Nested{fieldElements: {Registry: v4SigningElements}},
	},
	shape.Variant{
		Discriminator: string(esig.ActorTypeReceiver),
		Rules: []shape.Rule{
			{Name: RuleRedirectTypeNotAllowed, Forbid: []string{fieldRedirectType}},
			{Name: RuleReceiverHasNoNavigation, Forbid: []string{fieldBackButtonURL, fieldRedirectURL}},
		},
		OutputOnly: actorOutputOnly,
		Output:     []string{"SuppressNotifications"},
	},
)

var (
	stakeholderOutputOnly = []string{fieldID, "PackageId"}
	actorsNested          = map[string]shape.Nested{fieldActors: {Registry: v4Actors}}
)

var v4Stakeholders = shape.NewRegistry("stakeholder", fieldType).MustRegister(
	shape.Variant{
		Discriminator: string(esig.StakeholderTypePerson),
		Locator:       &personGroup,
		OutputOnly:    append(append([]string{}, stakeholderOutputOnly...), "Substitutes"),
		Output:        []string{fieldExternalReference, fieldActors, "PhoneNumber", "BirthDate", "AdditionalProperties"},
		Nested:        actorsNested,
	},
	shape.Variant{
		Discriminator: string(esig.StakeholderTypeGroup),
		Locator:       &memberGroup,
		OutputOnly:    stakeholderOutputOnly,
		Output:        []string{fieldExternalReference, fieldActors},
		Nested: map[string]shape.Nested{
			fieldActors: {Registry: v4Actors},
			"Members": {
				Group:  &personGroup,
				Output: []string{"PhoneNumber", "BirthDate", "AdditionalProperties", "Substitutes"},
			},
		},
	},
	shape.Variant{
		Discriminator: string(esig.StakeholderTypeContactGroup),
		Locator:       &contactGroupGroup,
		OutputOnly:    append(append([]string{}, stakeholderOutputOnly...), "Members"),
		Output:        []string{fieldExternalReference, fieldActors},
		Nested:        actorsNested,
	},
	shape.Variant{
		Discriminator: string(esig.StakeholderTypeUndecided),
		Rules: []shape.Rule{
			{Name: RuleUndecidedIsOutputOnly, Forbid: []string{fieldType}, Phase: shape.PhaseEncode},
		},
		OutputOnly: stakeholderOutputOnly,
		Output:     []string{fieldActors},
		Nested:     actorsNested,
	},
)

var v4Document = &shape.Variant{
	Locator:    &documentGroup,
	InputOnly:  []string{"DocumentOptions", "RepresentationOptions"},
	OutputOnly: []string{fieldID, "PackageId", "CreationDate", "MediaType", fieldStatus, "OrderIndex"},
	Output:     []string{fieldName, "IsOptional", "Language", fieldElements, fieldExternalReference, "ProofCorrelationId"},
	Nested: map[string]shape.Nested{
		fieldElements:           {Registry: v4Elements},
		"DocumentOptions":       {Group: &documentContentGroup},
		"RepresentationOptions": {Group: &documentContentGroup},
	},
}

var v4Package = &shape.Variant{
	Locator:   &packageCreateGroup,
	InputOnly: []string{"TemplateCode", "ExpiryTimestamp", "IsReassignEnabled"},
	OutputOnly: []string{
		fieldID, "CreationDate", "ExpiryDate", "UnplacedElements", "F2fSigningUrl", "PreviewUrl", "Warnings",
	},
	Output: []string{
		fieldName, fieldStatus, "Initiator", "Documents", "Stakeholders", "DefaultLegalNotice",
		"DefaultRedirectUrl", fieldExternalReference, "DocumentGroupCode", "ThemeCode", "CallBackUrl",
		"NotificationCallBackUrl", "F2fRedirectUrl", "IsUnsignedContentDownloadable",
		"ActionUrlExpirationPeriodInDays", "ProofCorrelationId", "AddInitiatorAsReceiver",
		"MustBeArchived", "ArchiveAuditProofs", "ArchiveAuditTrail", "AutomaticReminder", "ExpirationReminder",
	},
	Nested: map[string]shape.Nested{
		"Documents":          {Variant: v4Document},
		"Stakeholders":       {Registry: v4Stakeholders},
		"UnplacedElements":   {Registry: v4Elements},
		"DefaultLegalNotice": {Group: &legalNoticeGroup, Output: []string{"Text", "Name"}},
		"AutomaticReminder": {Variant: &shape.Variant{
			Locator: &reminderGroup,
			Rules:   reminderRules,
			Output: []string{
				"IsSendAutomaticRemindersEnabled", "DaysBeforeFirstReminder",
				"IsRepeatRemindersEnabled", "RepeatReminders",
			},
		}},
		"ExpirationReminder": {Variant: &shape.Variant{
			Rules:  expirationReminderRules,
			Output: []string{"IsSendExpirationRemindersEnabled", "DaysBeforeExpirationReminder"},
		}},
	},
}

var v4Set = &Set{
	Version:      esig.APIVersionV4,
	Elements:     v4Elements,
	Actors:       v4Actors,
	Stakeholders: v4Stakeholders,
	Package:      v4Package,
	Document:     v4Document,
}
