package esig

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var sanitized = validation.By(func(value interface{}) error {
	name, _ := value.(string)
	if SanitizeName(name) != name {
		return ErrUnsanitizedName
	}

	return nil
})

// Validate checks the values of the package fields. Which fields may be
// combined is checked when the input is encoded.
func (in *CreatePackageInput) Validate() error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.RuneLength(0, MaxNameLength), sanitized),
		validation.Field(&in.Initiator, validation.Required, is.EmailFormat),
		validation.Field(&in.Status, validation.In(PackageStatusDraft, PackageStatusPending)),
		validation.Field(&in.ExpiryTimestamp, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&in.ActionURLExpirationPeriodInDays, validation.Min(1)),
		validation.Field(&in.Documents),
		validation.Field(&in.CallBackURL, is.URL),
		validation.Field(&in.NotificationCallBackURL, is.URL),
		validation.Field(&in.DefaultRedirectURL, is.URL),
		validation.Field(&in.F2fRedirectURL, is.URL),
	)
	if err != nil {
		return fmt.Errorf("invalid package: %w", err)
	}

	return nil
}

// Validate checks the values of the document fields.
func (in AddDocumentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, MaxNameLength), sanitized),
		validation.Field(&in.Language, validation.Required, validation.Length(2, 2), is.LowerCase),
		validation.Field(&in.DocumentOptions),
		validation.Field(&in.RepresentationOptions),
	)
}

// Validate checks the document content.
func (o DocumentOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Base64Data, validation.Required, is.Base64),
		validation.Field(&o.ContentType, validation.Required, validation.In(
			ContentTypePDF, ContentTypeXML, ContentTypeDOC, ContentTypeDOCX, ContentTypeText,
		)),
		validation.Field(&o.TargetType, validation.In(ContentTypePDF, ContentTypeXML)),
	)
}

// Validate checks the representation content.
func (o *RepresentationOptions) Validate() error {
	if o == nil {
		return nil
	}

	return validation.ValidateStruct(o,
		validation.Field(&o.Base64Data, validation.Required, is.Base64),
		validation.Field(&o.ContentType, validation.Required, validation.In(ContentTypePDF)),
	)
}

// Validate checks the values of the person fields.
func (s *PersonStakeholderInput) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.Language, validation.Required, validation.Length(2, 2), is.LowerCase),
		validation.Field(&s.FirstName, validation.Required),
		validation.Field(&s.LastName, validation.Required),
		validation.Field(&s.EmailAddress, validation.Required, is.EmailFormat),
	)
	if err != nil {
		return fmt.Errorf("invalid person: %w", err)
	}

	return nil
}

// Validate checks the upload metadata of a v3 document.
func (in *LegacyAddDocumentInput) Validate() error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.DocumentName, validation.Required, validation.RuneLength(1, MaxNameLength), sanitized),
		validation.Field(&in.DocumentLanguage, validation.Required, validation.Length(2, 2)),
		validation.Field(&in.Document, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	return nil
}
