package schema

import (
	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/shape"
)

// v3 names.
const (
	ByMarkerOrFieldID = "ByMarkerOrFieldId"

	MandatedSignerDisabled         = "Disabled"
	MandatedSignerMatchID          = "MatchId"
	MandatedSignerNameAndBirthDate = "NameAndBirthDate"

	RuleLegalNoticeCodeOrText      = "legal-notice-code-or-text"
	RuleDisabledValidationHasNoIDs = "disabled-validation-has-no-criteria"
	RuleReceiverHasNoOrder         = "receiver-has-no-order"
)

var signingLocationGroup = shape.Group{
	Name: "signing location",
	Descriptors: []shape.Descriptor{
		{
			Name:      ByCoordinates,
			Required:  []string{"Label", "PageNumber", "Width", "Height", "Left", "Top"},
			Forbidden: []string{"MarkerOrFieldId"},
		},
		{Name: ByMarkerOrFieldID, Required: []string{"Label", "MarkerOrFieldId"}},
	},
}

func single(name string, required ...string) shape.Group {
	return shape.Group{
		Name:        name,
		Descriptors: []shape.Descriptor{{Name: name, Required: required}},
	}
}

var (
	legacyPackageGroup     = single("package", "Initiator", "PackageName")
	legacyDocumentGroup    = single("document", "DocumentLanguage", "DocumentName")
	legacyProcessGroup     = single("process information", "Stakeholders")
	legacyApproverGroup    = single("approver", "OrderIndex")
	legacySignerGroup      = single("signer", "OrderIndex", "Locations", "SigningTypes")
	legacyLocationGroup    = single("location", "Id")
	legacyPersonGroup      = single("person", "EmailAddress", "FirstName", "LastName", "Language")
	legacyPersonGroupGroup = single("person group", "PersonGroupName", "Persons")
	legacyContactGroup     = single("contact group", "ContactGroupCode")
	legacySigningTypeMatch = single("match id", "SigningType", "MandatedSignerIds")
	legacySigningTypeName  = single("name and birth date", "SigningType", "MatchLevel")
	legacySigningTypeOff   = single("disabled", "SigningType")
)

var v3MandatedSigner = shape.NewRegistry("mandated signer validation", "MandatedSignerValidation").MustRegister(
	shape.Variant{
		Discriminator: MandatedSignerDisabled,
		Locator:       &legacySigningTypeOff,
		Rules: []shape.Rule{{
			Name:   RuleDisabledValidationHasNoIDs,
			Forbid: []string{"MandatedSignerIds", "MatchLevel"},
		}},
	},
	shape.Variant{Discriminator: MandatedSignerMatchID, Locator: &legacySigningTypeMatch},
	shape.Variant{Discriminator: MandatedSignerNameAndBirthDate, Locator: &legacySigningTypeName},
)

var v3Actors = shape.NewRegistry("legacy actor", fieldType).MustRegister(
	shape.Variant{
		Discriminator: esig.LegacyActorApprover,
		Locator:       &legacyApproverGroup,
		Rules: []shape.Rule{
			{Name: RuleRedirectTypeNotAllowed, Forbid: []string{fieldRedirectType}},
		},
	},
	shape.Variant{
		Discriminator: esig.LegacyActorSigner,
		Locator:       &legacySignerGroup,
		Rules: []shape.Rule{
			{
				Name:    RuleRedirectTypeRequiresURL,
				When:    []shape.Predicate{shape.Present(fieldRedirectType)},
				Require: []string{"RedirectURL"},
			},
			{
				Name:   RuleLegalNoticeCodeOrText,
				When:   []shape.Predicate{shape.Present("LegalNoticeCode")},
				Forbid: []string{"LegalNoticeText"},
			},
		},
		Nested: map[string]shape.Nested{
			"Locations":    {Group: &legacyLocationGroup},
			"SigningTypes": {Registry: v3MandatedSigner},
		},
	},
	shape.Variant{
		Discriminator: esig.LegacyActorReceiver,
		Rules: []shape.Rule{
			{Name: RuleRedirectTypeNotAllowed, Forbid: []string{fieldRedirectType}},
			{Name: RuleReceiverHasNoOrder, Forbid: []string{"OrderIndex", "RedirectURL"}},
		},
	},
)

var v3ActorsNested = map[string]shape.Nested{fieldActors: {Registry: v3Actors}}

var v3Stakeholders = shape.NewRegistry("legacy stakeholder", fieldType).MustRegister(
	shape.Variant{
		Discriminator: esig.LegacyStakeholderPerson,
		Locator:       &legacyPersonGroup,
		Nested:        v3ActorsNested,
	},
	shape.Variant{
		Discriminator: esig.LegacyStakeholderPersonGroup,
		Locator:       &legacyPersonGroupGroup,
		Nested: map[string]shape.Nested{
			fieldActors: {Registry: v3Actors},
			"Persons":   {Group: &legacyPersonGroup},
		},
	},
	shape.Variant{
		Discriminator: esig.LegacyStakeholderContactGroup,
		Locator:       &legacyContactGroup,
		Nested:        v3ActorsNested,
	},
)

var v3Status = &shape.Variant{
	Output: []string{"ExpiryTimestamp", "ExternalPackageReference", "F2FSigningUrl"},
	Nested: map[string]shape.Nested{
		"PackageDocuments": {Output: []string{"ExternalDocumentReference"}},
		"Stakeholders": {Variant: &shape.Variant{
			Output: []string{"ExternalStakeholderReference", "EmailAddress", "PersonGroupName", "ContactGroupCode"},
			Nested: map[string]shape.Nested{
				fieldActors: {Variant: &shape.Variant{
					Output: []string{"ActionUrl", "CompletedBy", "CompletedTimestamp", "Reason"},
					Nested: map[string]shape.Nested{
						"Locations": {Output: []string{"UsedSigningType"}},
					},
				}},
			},
		}},
	},
}

var v3Set = &Set{
	Version:      esig.APIVersionV3,
	Actors:       v3Actors,
	Stakeholders: v3Stakeholders,
	Package:      &shape.Variant{Locator: &legacyPackageGroup},
	Document: &shape.Variant{
		Locator: &legacyDocumentGroup,
		Nested: map[string]shape.Nested{
			"SigningFields": {Group: &signingLocationGroup},
		},
	},
	ProcessInformation: &shape.Variant{
		Locator: &legacyProcessGroup,
		Nested:  map[string]shape.Nested{"Stakeholders": {Registry: v3Stakeholders}},
	},
	Status: v3Status,
}
