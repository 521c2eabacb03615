package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Sentinel errors matched by the typed errors below.
var (
	ErrNoMatchingShape           = errors.New("no matching shape")
	ErrAmbiguousShape            = errors.New("ambiguous shape")
	ErrInvalidVariantShape       = errors.New("invalid variant shape")
	ErrUnknownVariant            = errors.New("unknown variant")
	ErrConditionalFieldViolation = errors.New("conditional field violation")
)

// Definition errors, returned while building groups and registries.
var (
	ErrUnnamedDescriptor    = errors.New("descriptor has no name")
	ErrRequiredAndForbidden = errors.New("field is both required and forbidden")
	ErrEmptyGroup           = errors.New("group has no descriptors")
	ErrDuplicateDescriptor  = errors.New("duplicate descriptor name")
	ErrDuplicateVariant     = errors.New("duplicate variant discriminator")
	ErrEmptyDiscriminator   = errors.New("variant discriminator is empty")
	ErrDiscriminatorClash   = errors.New("discriminator does not match requested variant")
	ErrNotAnObject          = errors.New("value is not an object")
	ErrNotAList             = errors.New("value is not a list of objects")
)

// NoMatchingShapeError reports that an object satisfied none of a group's
// descriptors. Mismatches holds one entry per descriptor.
type NoMatchingShapeError struct {
	Group      string
	Mismatches []ShapeMismatch
}

func (e *NoMatchingShapeError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))

	for _, m := range e.Mismatches {
		var reasons []string
		if len(m.Missing) > 0 {
			reasons = append(reasons, "missing "+strings.Join(m.Missing, ", "))
		}

		if len(m.Forbidden) > 0 {
			reasons = append(reasons, "forbidden "+strings.Join(m.Forbidden, ", "))
		}

		parts = append(parts, fmt.Sprintf("%s (%s)", m.Descriptor, strings.Join(reasons, "; ")))
	}

	return fmt.Sprintf("%s for %s: %s", ErrNoMatchingShape, e.Group, strings.Join(parts, ", "))
}

// Is reports whether target is ErrNoMatchingShape.
func (e *NoMatchingShapeError) Is(target error) bool {
	return target == ErrNoMatchingShape
}

// Missing returns the missing keys recorded for descriptor.
func (e *NoMatchingShapeError) Missing(descriptor string) []string {
	for _, m := range e.Mismatches {
		if m.Descriptor == descriptor {
			return m.Missing
		}
	}

	return nil
}

// AmbiguousShapeError reports that an object satisfied more than one descriptor.
type AmbiguousShapeError struct {
	Group   string
	Matches []string
}

func (e *AmbiguousShapeError) Error() string {
	return fmt.Sprintf("%s for %s: matches %s", ErrAmbiguousShape, e.Group, strings.Join(e.Matches, " and "))
}

// Is reports whether target is ErrAmbiguousShape.
func (e *AmbiguousShapeError) Is(target error) bool {
	return target == ErrAmbiguousShape
}

// InvalidVariantShapeError wraps a shape failure with the variant it happened in.
// Path is empty for the top-level object and names the nested field otherwise,
// for example "Elements[2]".
type InvalidVariantShapeError struct {
	Registry      string
	Discriminator string
	Path          string
	Err           error
}

func (e *InvalidVariantShapeError) Error() string {
	parts := []string{ErrInvalidVariantShape.Error()}

	for _, part := range []string{e.Registry, e.Discriminator, e.Path} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
}

// Is reports whether target is ErrInvalidVariantShape.
func (e *InvalidVariantShapeError) Is(target error) bool {
	return target == ErrInvalidVariantShape
}

// Unwrap returns the validator error.
func (e *InvalidVariantShapeError) Unwrap() error {
	return e.Err
}

// UnknownVariantError reports a missing or unregistered discriminator.
type UnknownVariantError struct {
	Registry      string
	Field         string
	Discriminator string
	Missing       bool
}

func (e *UnknownVariantError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s in %s: %s not set", ErrUnknownVariant, e.Registry, e.Field)
	}

	return fmt.Sprintf("%s in %s: %s %q", ErrUnknownVariant, e.Registry, e.Field, e.Discriminator)
}

// Is reports whether target is ErrUnknownVariant.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// RuleViolation is one failed conditional rule.
type RuleViolation struct {
	Rule      string
	Missing   []string
	Forbidden []string
	Unmet     []string
}

func (v *RuleViolation) Error() string {
	var reasons []string
	if len(v.Missing) > 0 {
		reasons = append(reasons, "requires "+strings.Join(v.Missing, ", "))
	}

	if len(v.Forbidden) > 0 {
		reasons = append(reasons, "forbids "+strings.Join(v.Forbidden, ", "))
	}

	if len(v.Unmet) > 0 {
		reasons = append(reasons, "expects "+strings.Join(v.Unmet, ", "))
	}

	return fmt.Sprintf("rule %s %s", v.Rule, strings.Join(reasons, "; "))
}

// ConditionalFieldViolationError aggregates every failed rule of one evaluation.
// Path names the nested object the rules ran on, for example
// "Actors[0].Elements[1]", and is empty for the top-level object.
type ConditionalFieldViolationError struct {
	Violations []*RuleViolation
	Path       string

	merr *multierror.Error
}

func newConditionalFieldViolation(violations []*RuleViolation) *ConditionalFieldViolationError {
	var merr *multierror.Error
	for _, v := range violations {
		merr = multierror.Append(merr, v)
	}

	merr.ErrorFormat = func(errs []error) string {
		lines := make([]string, len(errs))
		for i, err := range errs {
			lines[i] = err.Error()
		}

		return strings.Join(lines, "; ")
	}

	return &ConditionalFieldViolationError{Violations: violations, merr: merr}
}

func (e *ConditionalFieldViolationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s at %s: %s", ErrConditionalFieldViolation, e.Path, e.merr.Error())
	}

	return fmt.Sprintf("%s: %s", ErrConditionalFieldViolation, e.merr.Error())
}

// at returns a copy of e located under path.
func (e *ConditionalFieldViolationError) at(path string) *ConditionalFieldViolationError {
	located := *e
	if e.Path != "" {
		located.Path = path + "." + e.Path
	} else {
		located.Path = path
	}

	return &located
}

// Is reports whether target is ErrConditionalFieldViolation.
func (e *ConditionalFieldViolationError) Is(target error) bool {
	return target == ErrConditionalFieldViolation
}

// Unwrap exposes each RuleViolation to errors.As.
func (e *ConditionalFieldViolationError) Unwrap() []error {
	return e.merr.WrappedErrors()
}

// Rules returns the names of the failed rules in evaluation order.
func (e *ConditionalFieldViolationError) Rules() []string {
	names := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		names[i] = v.Rule
	}

	return names
}
