package schema

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/shape"
)

func allGroups() []shape.Group {
	return []shape.Group{
		legalNoticeGroup, checkboxLocator, radioGroupLocator, radioOptionGroup,
		signingFieldLocator, textBoxLocator, reminderGroup, packageCreateGroup,
		documentGroup, documentContentGroup, personGroup, memberGroup, contactGroupGroup,
		signingLocationGroup, legacyPackageGroup, legacyDocumentGroup, legacyProcessGroup,
		legacyApproverGroup, legacySignerGroup, legacyLocationGroup, legacyPersonGroup,
		legacyPersonGroupGroup, legacyContactGroup, legacySigningTypeMatch,
		legacySigningTypeName, legacySigningTypeOff,
	}
}

func objectWith(keys ...string) shape.Object {
	obj := shape.Object{}
	for _, key := range keys {
		obj[key] = "x"
	}

	return obj
}

func TestForVersion(t *testing.T) {
	t.Parallel()

	set, err := ForVersion(esig.APIVersionV4)
	require.NoError(t, err)
	assert.Equal(t, esig.APIVersionV4, set.Version)
	assert.NotNil(t, set.Elements)
	assert.Nil(t, set.Status)

	set, err = ForVersion("")
	require.NoError(t, err)
	assert.Equal(t, esig.APIVersionV4, set.Version)

	set, err = ForVersion(esig.APIVersionV3)
	require.NoError(t, err)
	assert.Nil(t, set.Elements)
	assert.NotNil(t, set.ProcessInformation)
	assert.Equal(t, []string{"Approver", "Signer", "Receiver"}, set.Actors.Discriminators())

	_, err = ForVersion("v2")
	require.ErrorIs(t, err, esig.ErrUnsupportedAPIVersion)
}

func TestGroups_Validate(t *testing.T) {
	t.Parallel()

	for _, group := range allGroups() {
		assert.NoError(t, group.Validate(), group.Name)
	}
}

func TestGroups_Exclusivity(t *testing.T) {
	t.Parallel()

	for _, group := range allGroups() {
		for _, d := range group.Descriptors {
			name, err := group.Match(objectWith(d.Required...))
			if assert.NoError(t, err, "%s/%s", group.Name, d.Name) {
				assert.Equal(t, d.Name, name, group.Name)
			}
		}
	}
}

func TestGroups_Ambiguity(t *testing.T) {
	t.Parallel()

	subset := func(a, b []string) bool {
		for _, key := range a {
			if !slices.Contains(b, key) {
				return false
			}
		}

		return true
	}

	for _, group := range allGroups() {
		for i, a := range group.Descriptors {
			for _, b := range group.Descriptors[i+1:] {
				if len(a.Required) == 0 || len(b.Required) == 0 ||
					subset(a.Required, b.Required) || subset(b.Required, a.Required) {
					continue
				}

				_, err := group.Match(objectWith(append(slices.Clone(a.Required), b.Required...)...))
				require.ErrorIs(t, err, shape.ErrAmbiguousShape, "%s: %s with %s", group.Name, a.Name, b.Name)

				var ambiguous *shape.AmbiguousShapeError
				require.ErrorAs(t, err, &ambiguous)
				assert.Contains(t, ambiguous.Matches, a.Name)
				assert.Contains(t, ambiguous.Matches, b.Name)
			}
		}
	}
}

func TestSigningField_CoordinatesAndMarker(t *testing.T) {
	t.Parallel()

	_, err := v4Elements.Encode("signingfield", shape.Object{
		"Location":   map[string]any{"Page": 1, "Top": 10, "Left": 10},
		"Dimensions": map[string]any{"Width": 100, "Height": 40},
		"Marker":     "#SIG01",
	})
	require.ErrorIs(t, err, shape.ErrInvalidVariantShape)
	require.ErrorIs(t, err, shape.ErrAmbiguousShape)

	var ambiguous *shape.AmbiguousShapeError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{ByCoordinates, ByMarker}, ambiguous.Matches)
}

func TestReminder_RepeatWithoutEnabling(t *testing.T) {
	t.Parallel()

	_, err := shape.RuleSet{Rules: reminderRules}.Resolve(shape.Object{"IsRepeatRemindersEnabled": true})
	require.ErrorIs(t, err, shape.ErrConditionalFieldViolation)

	var violation *shape.ConditionalFieldViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Rules(), RuleRepeatRemindersRequireEnabled)

	input := &esig.CreatePackageInput{
		Name:      "Contract",
		Initiator: "initiator@example.com",
		Status:    esig.PackageStatusDraft,
		AutomaticReminder: &esig.AutomaticReminderInput{
			IsRepeatRemindersEnabled: boolPtr(true),
			DaysBeforeFirstReminder:  intPtr(3),
			RepeatReminders:          intPtr(2),
		},
	}

	obj, err := ToObject(input)
	require.NoError(t, err)

	_, err = v4Package.Encode(obj)
	require.ErrorIs(t, err, shape.ErrConditionalFieldViolation)
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, []string{RuleRepeatRemindersRequireEnabled}, violation.Rules())
	assert.Equal(t, "AutomaticReminder", violation.Path)
	assert.NotErrorIs(t, err, shape.ErrInvalidVariantShape)
}

func TestReminder_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input shape.Object
		err   error
	}{
		{name: "disabled", input: shape.Object{}},
		{name: "disabled explicitly", input: shape.Object{"IsSendAutomaticRemindersEnabled": false}},
		{
			name:  "enabled",
			input: shape.Object{"IsSendAutomaticRemindersEnabled": true, "DaysBeforeFirstReminder": 2},
		},
		{
			name: "repeating",
			input: shape.Object{
				"IsSendAutomaticRemindersEnabled": true,
				"DaysBeforeFirstReminder":         2,
				"IsRepeatRemindersEnabled":        true,
				"RepeatReminders":                 3,
			},
		},
		{
			name:  "enabled without days",
			input: shape.Object{"IsSendAutomaticRemindersEnabled": true},
			err:   shape.ErrConditionalFieldViolation,
		},
		{
			name:  "repeat count without days",
			input: shape.Object{"RepeatReminders": 3},
			err:   shape.ErrNoMatchingShape,
		},
	}

	reminder := v4Package.Nested["AutomaticReminder"].Variant

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := reminder.Encode(tt.input)
			if tt.err == nil {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTextBox_DecodeNullsAbsentFields(t *testing.T) {
	t.Parallel()

	discriminator, out, err := v4Elements.Decode(shape.Object{
		"Type":     "textboxfield",
		"Id":       "el-1",
		"Name":     "city",
		"Location": map[string]any{"Page": 1, "Top": 10, "Left": 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "textboxfield", discriminator)

	for _, field := range []string{"CharLimit", "DefaultValue", "Value", "ActorId", "CompletedDate"} {
		value, ok := out[field]
		assert.True(t, ok, field)
		assert.Nil(t, value, field)
	}
}

func TestElements_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]shape.Object{
		"checkboxfield": {"Marker": "#CHK", "IsRequired": nil, "Label": "Agree"},
		"radiogroup": {
			"Name": "choice",
			"Options": []any{
				map[string]any{
					"Name":       "yes",
					"Location":   map[string]any{"Page": 1.0, "Top": 1.0, "Left": 1.0},
					"Dimensions": map[string]any{"Width": 5.0, "Height": 5.0},
					"IsSelected": true,
				},
			},
		},
		"signingfield": {"FieldId": "sig", "LegalNotice": map[string]any{"Name": "LEGALNOTICE1"}},
		"textboxfield": {"FieldId": "city", "DocumentId": "doc-1"},
	}

	for _, discriminator := range v4Elements.Discriminators() {
		input := inputs[discriminator]

		encoded, err := v4Elements.Encode(discriminator, input)
		require.NoError(t, err, discriminator)

		_, decoded, err := v4Elements.Decode(encoded)
		require.NoError(t, err, discriminator)

		variant, _ := v4Elements.Lookup(discriminator)
		expected := shape.Object{"Type": discriminator}

		for key, value := range input {
			expected[key] = value
		}

		for _, field := range variant.Declared() {
			if _, ok := expected[field]; !ok {
				expected[field] = nil
			}
		}

		switch discriminator {
		case "radiogroup":
			option := expected["Options"].([]any)[0].(map[string]any)
			option["ToolTipLabel"] = nil
		case "signingfield":
			expected["LegalNotice"].(map[string]any)["Text"] = nil
		}

		if diff := cmp.Diff(expected, decoded); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", discriminator, diff)
		}
	}
}

// withDeclared returns a copy of obj carrying the discriminator and a nil for
// every declared field obj lacks.
func withDeclared(t *testing.T, registry *shape.Registry, discriminator string, obj shape.Object) shape.Object {
	t.Helper()

	variant, ok := registry.Lookup(discriminator)
	require.True(t, ok, discriminator)

	out := maps.Clone(obj)
	out["Type"] = discriminator

	for _, field := range variant.Declared() {
		if _, set := out[field]; !set {
			out[field] = nil
		}
	}

	return out
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestActorsAndStakeholders_RoundTrip(t *testing.T) {
	t.Parallel()

	person := func() map[string]any {
		return map[string]any{
			"Language":     "en",
			"FirstName":    "Ada",
			"LastName":     "Lovelace",
			"EmailAddress": "ada@example.com",
		}
	}

	tests := []struct {
		name          string
		registry      *shape.Registry
		discriminator string
		input         shape.Object
		adjust        func(t *testing.T, expected shape.Object)
	}{
		{
			name:          "form filler",
			registry:      v4Actors,
			discriminator: "formFiller",
			input: shape.Object{
				"RedirectUrl":  "https://example.com/done",
				"RedirectType": "AfterCompletion",
				"Elements":     []any{},
			},
		},
		{
			name:          "approver",
			registry:      v4Actors,
			discriminator: "approver",
			input:         shape.Object{"BackButtonUrl": "https://example.com", "SuppressNotifications": true},
		},
		{
			name:          "signer",
			registry:      v4Actors,
			discriminator: "signer",
			input:         shape.Object{"RedirectUrl": "https://example.com/signed", "Elements": []any{}},
		},
		{
			name:          "receiver",
			registry:      v4Actors,
			discriminator: "receiver",
			input:         shape.Object{"SuppressNotifications": false},
		},
		{
			name:          "person",
			registry:      v4Stakeholders,
			discriminator: "person",
			input: func() shape.Object {
				obj := shape.Object(person())
				obj["ExternalReference"] = "ref-1"
				obj["Actors"] = []any{map[string]any{"Type": "receiver"}}

				return obj
			}(),
			adjust: func(t *testing.T, expected shape.Object) {
				t.Helper()

				expected["Actors"] = []any{withDeclared(t, v4Actors, "receiver", shape.Object{})}
			},
		},
		{
			name:          "group",
			registry:      v4Stakeholders,
			discriminator: "group",
			input: shape.Object{
				"GroupName": "Board",
				"Members":   []any{person()},
				"Actors":    []any{},
			},
			adjust: func(t *testing.T, expected shape.Object) {
				t.Helper()

				member := shape.Object(person())
				for _, field := range []string{"PhoneNumber", "BirthDate", "AdditionalProperties", "Substitutes"} {
					member[field] = nil
				}

				expected["Members"] = []any{member}
			},
		},
		{
			name:          "contact group",
			registry:      v4Stakeholders,
			discriminator: "contactgroup",
			input:         shape.Object{"ContactGroupCode": "LEGAL", "Actors": []any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := tt.registry.Encode(tt.discriminator, tt.input)
			require.NoError(t, err)

			discriminator, decoded, err := tt.registry.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.discriminator, discriminator)

			expected := withDeclared(t, tt.registry, tt.discriminator, tt.input)
			if tt.adjust != nil {
				tt.adjust(t, expected)
			}

			if diff := cmp.Diff(expected, decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElements_OutputOnlyRejected(t *testing.T) {
	t.Parallel()

	_, err := v4Elements.Encode("checkboxfield", shape.Object{"FieldId": "a", "Id": "el-1"})
	require.ErrorIs(t, err, shape.ErrInvalidVariantShape)
	require.ErrorIs(t, err, shape.ErrNoMatchingShape)
	assert.Contains(t, err.Error(), "Id")
}

func TestElements_KeepOnNullFields(t *testing.T) {
	t.Parallel()

	variant, ok := v4Elements.Lookup("textboxfield")
	require.True(t, ok)

	obj := shape.Object{"DefaultValue": nil, "Name": nil}
	assert.True(t, variant.Presence.Has(obj, "DefaultValue"))
	assert.False(t, variant.Presence.Has(obj, "Name"))
}

func TestActors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		discriminator string
		input         shape.Object
		decode        bool
		rules         []string
		err           error
	}{
		{
			name:          "signer with redirect",
			discriminator: "signer",
			input: shape.Object{
				"RedirectUrl":  "https://example.com",
				"RedirectType": "Immediately",
				"Elements":     []any{map[string]any{"Type": "signingfield", "Marker": "#SIG"}},
			},
		},
		{
			name:          "signer redirect type without url",
			discriminator: "signer",
			input:         shape.Object{"RedirectType": "AfterDelay", "Elements": []any{}},
			rules:         []string{RuleRedirectTypeRequiresURL},
		},
		{
			name:          "approver with redirect type",
			discriminator: "approver",
			input:         shape.Object{"RedirectUrl": "https://example.com", "RedirectType": "Immediately"},
			rules:         []string{RuleRedirectTypeNotAllowed},
		},
		{
			name:          "receiver with navigation",
			discriminator: "receiver",
			input:         shape.Object{"RedirectType": "Immediately", "BackButtonUrl": "https://example.com"},
			rules:         []string{RuleRedirectTypeNotAllowed, RuleReceiverHasNoNavigation},
		},
		{
			name:          "signer with a text box",
			discriminator: "signer",
			input:         shape.Object{"Elements": []any{map[string]any{"Type": "textboxfield", "Marker": "#T", "Name": "t"}}},
			err:           shape.ErrUnknownVariant,
		},
		{
			name:          "form filler with a text box",
			discriminator: "formFiller",
			input:         shape.Object{"Elements": []any{map[string]any{"Type": "textboxfield", "Marker": "#T", "Name": "t"}}},
		},
		{
			name:          "decoded signer redirect type without url",
			discriminator: "signer",
			input:         shape.Object{"Id": "s1", "Status": "Pending", "RedirectType": "AfterDelay"},
			decode:        true,
			rules:         []string{RuleRedirectTypeRequiresURL},
		},
		{
			name:          "decoded signer with null redirect fields",
			discriminator: "signer",
			input:         shape.Object{"Id": "s1", "Status": "Pending", "RedirectType": nil, "RedirectUrl": nil},
			decode:        true,
		},
		{
			name:          "decoded approver with redirect type",
			discriminator: "approver",
			input:         shape.Object{"Id": "a1", "Status": "Pending", "RedirectType": "Immediately"},
			decode:        true,
			rules:         []string{RuleRedirectTypeNotAllowed},
		},
		{
			name:          "decoded receiver with back button",
			discriminator: "receiver",
			input:         shape.Object{"Id": "r1", "Status": "Waiting", "BackButtonUrl": "https://example.com"},
			decode:        true,
			rules:         []string{RuleReceiverHasNoNavigation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var err error

			if tt.decode {
				payload := maps.Clone(tt.input)
				payload["Type"] = tt.discriminator
				_, _, err = v4Actors.Decode(payload)
			} else {
				_, err = v4Actors.Encode(tt.discriminator, tt.input)
			}

			switch {
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
			case len(tt.rules) > 0:
				var violation *shape.ConditionalFieldViolationError
				require.ErrorAs(t, err, &violation)
				assert.Equal(t, tt.rules, violation.Rules())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestActors_ResultRequiredWhenFinished(t *testing.T) {
	t.Parallel()

	_, _, err := v4Actors.Decode(shape.Object{"Type": "approver", "Id": "a1", "Status": "Finished"})
	require.ErrorIs(t, err, shape.ErrConditionalFieldViolation)
	assert.Contains(t, err.Error(), RuleFinishedActorHasResult)

	_, out, err := v4Actors.Decode(shape.Object{
		"Type":   "approver",
		"Id":     "a1",
		"Status": "Rejected",
		"Result": map[string]any{"RejectReason": "no"},
	})
	require.NoError(t, err)
	assert.Nil(t, out["RedirectUrl"])

	_, _, err = v4Actors.Decode(shape.Object{"Type": "receiver", "Id": "r1", "Status": "Finished"})
	assert.NoError(t, err)
}

func TestStakeholders_ReconcileNested(t *testing.T) {
	t.Parallel()

	known := shape.Object{"Type": "person"}
	server := shape.Object{
		"Id":           "s1",
		"PackageId":    "p1",
		"Language":     "en",
		"FirstName":    "Ada",
		"LastName":     "Lovelace",
		"EmailAddress": "ada@example.com",
		"Actors": []any{
			map[string]any{
				"Type":   "signer",
				"Id":     "a1",
				"Status": "Draft",
				"Elements": []any{
					map[string]any{"Type": "signingfield", "Id": "e1", "Marker": "#SIG", "DocumentId": "d1"},
				},
			},
		},
	}

	out, err := v4Stakeholders.Reconcile(known, server)
	require.NoError(t, err)

	assert.Nil(t, out["Type"])
	assert.Contains(t, out, "Substitutes")
	assert.Nil(t, out["ExternalReference"])

	actor := out["Actors"].([]any)[0].(map[string]any)
	element := actor["Elements"].([]any)[0].(map[string]any)

	assert.NotContains(t, element, "Marker")
	assert.NotContains(t, element, "DocumentId")
	assert.Contains(t, element, "UsedSigningMethod")
	assert.Contains(t, actor, "MemberLinks")
}

func TestStakeholders_UndecidedIsOutputOnly(t *testing.T) {
	t.Parallel()

	_, err := v4Stakeholders.Encode("undecided", shape.Object{})
	require.ErrorIs(t, err, shape.ErrConditionalFieldViolation)
	assert.Contains(t, err.Error(), RuleUndecidedIsOutputOnly)

	_, out, err := v4Stakeholders.Decode(shape.Object{"Type": "undecided", "Id": "s1", "PackageId": "p1"})
	require.NoError(t, err)
	assert.Contains(t, out, "Actors")
}

func TestPackage_TypedInput(t *testing.T) {
	t.Parallel()

	input := &esig.CreatePackageInput{
		Name:      "Contract",
		Initiator: "initiator@example.com",
		Status:    esig.PackageStatusPending,
		Documents: []esig.AddDocumentInput{{
			Name:     "Contract",
			Language: "en",
			DocumentOptions: esig.DocumentOptions{
				Base64Data:  "JVBERi0xLjQK",
				ContentType: esig.ContentTypePDF,
			},
			Elements: []esig.ElementInput{
				&esig.TextBoxFieldInput{ElementLocator: esig.ElementLocator{Marker: "#CITY"}, Name: "city"},
			},
		}},
		Stakeholders: []esig.StakeholderInput{
			&esig.PersonStakeholderInput{
				Language:     "en",
				FirstName:    "Ada",
				LastName:     "Lovelace",
				EmailAddress: "ada@example.com",
				Actors: []esig.ActorInput{
					&esig.SignerActorInput{Elements: []*esig.SigningFieldInput{{
						ElementLocator:   esig.ElementLocator{Marker: "#SIG"},
						ElementPlacement: esig.ElementPlacement{DocumentIndex: intPtr(0)},
					}}},
				},
			},
		},
		DefaultLegalNotice: &esig.LegalNotice{Text: "Read and approved"},
		ExpirationReminder: &esig.ExpirationReminderInput{
			IsSendExpirationRemindersEnabled: boolPtr(true),
			DaysBeforeExpirationReminder:     intPtr(2),
		},
	}

	obj, err := ToObject(input)
	require.NoError(t, err)

	encoded, err := v4Package.Encode(obj)
	require.NoError(t, err)

	name, err := packageCreateGroup.Match(encoded)
	require.NoError(t, err)
	assert.Equal(t, WithoutTemplate, name)

	input.TemplateCode = "TPL"

	obj, err = ToObject(input)
	require.NoError(t, err)

	_, err = v4Package.Encode(obj)
	require.ErrorIs(t, err, shape.ErrAmbiguousShape)
}

func TestPackage_NestedPath(t *testing.T) {
	t.Parallel()

	obj := shape.Object{
		"TemplateCode": "TPL",
		"Initiator":    "initiator@example.com",
		"Stakeholders": []any{
			map[string]any{"Type": "contactgroup", "ContactGroupCode": "CG"},
			map[string]any{"Type": "person", "FirstName": "Ada"},
		},
	}

	_, err := v4Package.Encode(obj)
	require.ErrorIs(t, err, shape.ErrNoMatchingShape)

	var invalid *shape.InvalidVariantShapeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Stakeholders[1]", invalid.Path)
}

func TestPackage_Reconcile(t *testing.T) {
	t.Parallel()

	out, err := v4Package.Reconcile(shape.Object{
		"Id":              "p1",
		"Name":            "Contract",
		"Status":          "Draft",
		"TemplateCode":    "TPL",
		"ExpiryTimestamp": "2030-01-01T00:00:00Z",
		"Documents": []any{
			map[string]any{"Id": "d1", "Name": "Contract", "DocumentOptions": map[string]any{"ContentType": "application/pdf"}},
		},
		"AutomaticReminder": map[string]any{"IsSendAutomaticRemindersEnabled": false},
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "TemplateCode")
	assert.NotContains(t, out, "ExpiryTimestamp")
	assert.Contains(t, out, "PreviewUrl")
	assert.Nil(t, out["DefaultLegalNotice"])

	document := out["Documents"].([]any)[0].(map[string]any)
	assert.NotContains(t, document, "DocumentOptions")
	assert.Contains(t, document, "Language")
	assert.Nil(t, document["Language"])

	reminder := out["AutomaticReminder"].(map[string]any)
	assert.Contains(t, reminder, "RepeatReminders")

	var pkg esig.Package
	require.NoError(t, FromObject(out, &pkg))
	assert.Equal(t, "p1", pkg.ID)
	assert.True(t, pkg.PreviewURL.IsNull())
	assert.True(t, pkg.Documents[0].Language.IsNull())
}

func TestLegacy(t *testing.T) {
	t.Parallel()

	set, err := ForVersion(esig.APIVersionV3)
	require.NoError(t, err)

	_, err = set.Document.Encode(shape.Object{
		"DocumentLanguage": "en",
		"DocumentName":     "Contract",
		"SigningFields": []any{
			map[string]any{"Label": "Sig", "MarkerOrFieldId": "#SIG"},
			map[string]any{
				"Label": "Both", "MarkerOrFieldId": "#SIG",
				"PageNumber": 1, "Width": "10", "Height": "10", "Left": "1", "Top": "1",
			},
		},
	})
	require.ErrorIs(t, err, shape.ErrAmbiguousShape)

	var invalid *shape.InvalidVariantShapeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "SigningFields[1]", invalid.Path)

	process := &esig.LegacyProcessInformation{Stakeholders: []esig.LegacyStakeholder{{
		Type: esig.LegacyStakeholderPerson,
		LegacyPerson: &esig.LegacyPerson{
			EmailAddress: "ada@example.com",
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Language:     "en",
		},
		Actors: []esig.LegacyActor{{
			Type:         esig.LegacyActorSigner,
			OrderIndex:   intPtr(1),
			Locations:    []esig.LegacyLocation{{ID: "loc-1"}},
			SigningTypes: []esig.LegacySigningType{{SigningType: "manual", MandatedSignerValidation: MandatedSignerMatchID}},
		}},
	}}}

	obj, err := ToObject(process)
	require.NoError(t, err)

	_, err = set.ProcessInformation.Encode(obj)
	require.ErrorIs(t, err, shape.ErrNoMatchingShape)
	assert.Contains(t, err.Error(), "MandatedSignerIds")

	process.Stakeholders[0].Actors[0].SigningTypes[0].MandatedSignerIDs = []string{"id-1"}
	process.Stakeholders[0].Actors = append(process.Stakeholders[0].Actors, esig.LegacyActor{
		Type:       esig.LegacyActorReceiver,
		OrderIndex: intPtr(2),
	})

	obj, err = ToObject(process)
	require.NoError(t, err)

	_, err = set.ProcessInformation.Encode(obj)

	var violation *shape.ConditionalFieldViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, []string{RuleReceiverHasNoOrder}, violation.Rules())
}

func TestLegacy_StatusDecode(t *testing.T) {
	t.Parallel()

	set, err := ForVersion(esig.APIVersionV3)
	require.NoError(t, err)

	out, err := set.Status.Decode(shape.Object{
		"PackageName":      "Contract",
		"PackageStatus":    "Pending",
		"PackageDocuments": []any{map[string]any{"DocumentId": "d1"}},
		"Stakeholders": []any{map[string]any{
			"Type":   "Person",
			"Actors": []any{map[string]any{"ActorId": "a1", "Locations": []any{map[string]any{"Id": "l1"}}}},
		}},
	})
	require.NoError(t, err)

	var status esig.LegacyStatusResponse
	require.NoError(t, FromObject(out, &status))
	assert.True(t, status.F2FSigningURL.IsNull())
	assert.True(t, status.PackageDocuments[0].ExternalDocumentReference.IsNull())
	assert.True(t, status.Stakeholders[0].Actors[0].Locations[0].UsedSigningType.IsNull())
	assert.True(t, status.Stakeholders[0].EmailAddress.IsNull())
}

func TestToObject_NotAnObject(t *testing.T) {
	t.Parallel()

	_, err := ToObject([]string{"a"})
	require.ErrorIs(t, err, shape.ErrNotAnObject)

	err = FromObject(shape.Object{"Id": 4}, &esig.Package{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, shape.ErrNotAnObject))
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }
