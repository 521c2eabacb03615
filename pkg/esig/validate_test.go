package esig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

func validDocument() esig.AddDocumentInput {
	return esig.AddDocumentInput{
		Name:     "Contract",
		Language: "en",
		DocumentOptions: esig.DocumentOptions{
			Base64Data:  "JVBERi0xLjQK",
			ContentType: esig.ContentTypePDF,
		},
	}
}

func TestCreatePackageInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(in *esig.CreatePackageInput)
		errSubstr string
	}{
		{name: "valid", mutate: func(*esig.CreatePackageInput) {}},
		{
			name:      "missing initiator",
			mutate:    func(in *esig.CreatePackageInput) { in.Initiator = "" },
			errSubstr: "Initiator",
		},
		{
			name:      "initiator not an email",
			mutate:    func(in *esig.CreatePackageInput) { in.Initiator = "someone" },
			errSubstr: "Initiator",
		},
		{
			name:      "status not allowed on create",
			mutate:    func(in *esig.CreatePackageInput) { in.Status = esig.PackageStatusFinished },
			errSubstr: "Status",
		},
		{
			name:      "unsanitized name",
			mutate:    func(in *esig.CreatePackageInput) { in.Name = "a/b" },
			errSubstr: "Name",
		},
		{
			name:      "name too long",
			mutate:    func(in *esig.CreatePackageInput) { in.Name = strings.Repeat("a", 151) },
			errSubstr: "Name",
		},
		{
			name:      "invalid document",
			mutate:    func(in *esig.CreatePackageInput) { in.Documents[0].DocumentOptions.ContentType = "image/png" },
			errSubstr: "ContentType",
		},
		{
			name:      "invalid expiry",
			mutate:    func(in *esig.CreatePackageInput) { in.ExpiryTimestamp = "tomorrow" },
			errSubstr: "ExpiryTimestamp",
		},
		{
			name:   "expiry with offset",
			mutate: func(in *esig.CreatePackageInput) { in.ExpiryTimestamp = "2030-01-02T15:04:05+01:00" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := &esig.CreatePackageInput{
				Name:      "Contract",
				Initiator: "initiator@example.com",
				Status:    esig.PackageStatusDraft,
				Documents: []esig.AddDocumentInput{validDocument()},
			}
			tt.mutate(input)

			err := input.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestAddDocumentInput_Validate(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	require.NoError(t, doc.Validate())

	doc.Language = "english"
	doc.DocumentOptions.Base64Data = ""
	doc.RepresentationOptions = &esig.RepresentationOptions{Base64Data: "JVBERi0xLjQK", ContentType: esig.ContentTypeXML}

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Language")
	assert.Contains(t, err.Error(), "Base64data")
	assert.Contains(t, err.Error(), "RepresentationOptions")
}

func TestPersonStakeholderInput_Validate(t *testing.T) {
	t.Parallel()

	person := &esig.PersonStakeholderInput{
		Language:     "nl",
		FirstName:    "Jan",
		LastName:     "Peeters",
		EmailAddress: "jan@example.com",
	}
	require.NoError(t, person.Validate())

	person.EmailAddress = "not-an-email"
	err := person.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EmailAddress")
}
