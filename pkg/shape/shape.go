package shape

import (
	"fmt"
	"slices"
)

// Object is a decoded JSON object.
type Object = map[string]any

// Presence selects how a field counts as supplied.
type Presence int

const (
	// PresenceValue requires the key to exist with a non-nil value.
	PresenceValue Presence = iota
	// PresenceKey only requires the key to exist. An explicit nil counts as supplied.
	PresenceKey
)

// String returns the presence mode name.
func (p Presence) String() string {
	switch p {
	case PresenceKey:
		return "key"
	case PresenceValue:
		return "value"
	default:
		return fmt.Sprintf("Presence(%d)", int(p))
	}
}

// PresenceSet overrides the presence test for individual fields. Fields not
// listed use PresenceValue.
type PresenceSet map[string]Presence

// Has reports whether field is supplied in obj.
func (p PresenceSet) Has(obj Object, field string) bool {
	value, ok := obj[field]
	if !ok {
		return false
	}

	if p[field] == PresenceKey {
		return true
	}

	return value != nil
}

// Descriptor is one named shape: a set of keys that must be supplied, keys
// that must not be supplied, and keys that may be supplied.
type Descriptor struct {
	Name      string
	Required  []string
	Forbidden []string
	Optional  []string
}

// Validate checks that no key is both required and forbidden.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return ErrUnnamedDescriptor
	}

	for _, key := range d.Required {
		if slices.Contains(d.Forbidden, key) {
			return fmt.Errorf("descriptor %s, field %s: %w", d.Name, key, ErrRequiredAndForbidden)
		}
	}

	return nil
}

// Fields returns every key the descriptor mentions, in declaration order.
func (d Descriptor) Fields() []string {
	fields := make([]string, 0, len(d.Required)+len(d.Forbidden)+len(d.Optional))
	fields = append(fields, d.Required...)
	fields = append(fields, d.Optional...)
	fields = append(fields, d.Forbidden...)

	return fields
}

func (d Descriptor) check(obj Object, presence PresenceSet) ShapeMismatch {
	mismatch := ShapeMismatch{Descriptor: d.Name}

	for _, key := range d.Required {
		if !presence.Has(obj, key) {
			mismatch.Missing = append(mismatch.Missing, key)
		}
	}

	for _, key := range d.Forbidden {
		if presence.Has(obj, key) {
			mismatch.Forbidden = append(mismatch.Forbidden, key)
		}
	}

	return mismatch
}

// Group is a set of mutually exclusive descriptors.
type Group struct {
	Name        string
	Descriptors []Descriptor
	Presence    PresenceSet
}

// Validate checks every descriptor and that descriptor names are unique.
func (g Group) Validate() error {
	if len(g.Descriptors) == 0 {
		return fmt.Errorf("group %s: %w", g.Name, ErrEmptyGroup)
	}

	seen := make(map[string]struct{}, len(g.Descriptors))

	for _, d := range g.Descriptors {
		err := d.Validate()
		if err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}

		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("group %s, descriptor %s: %w", g.Name, d.Name, ErrDuplicateDescriptor)
		}

		seen[d.Name] = struct{}{}
	}

	return nil
}

// Match returns the name of the single descriptor obj satisfies. A descriptor
// is satisfied when all its required keys are supplied and none of its
// forbidden keys are.
//
// An object that carries every required key of two descriptors is ambiguous
// even when forbidden keys rule one of them out, unless the required keys of
// one descriptor extend the other's. Descriptors without required keys never
// take part in that check.
func (g Group) Match(obj Object) (string, error) {
	var (
		matched    []string
		candidates []Descriptor
		mismatches []ShapeMismatch
	)

	for _, d := range g.Descriptors {
		mismatch := d.check(obj, g.Presence)
		if len(d.Required) > 0 && len(mismatch.Missing) == 0 {
			candidates = append(candidates, d)
		}

		if mismatch.ok() {
			matched = append(matched, d.Name)

			continue
		}

		mismatches = append(mismatches, mismatch)
	}

	if colliding := maximal(candidates); len(colliding) > 1 {
		return "", &AmbiguousShapeError{Group: g.Name, Matches: colliding}
	}

	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return "", &NoMatchingShapeError{Group: g.Name, Mismatches: mismatches}
	default:
		return "", &AmbiguousShapeError{Group: g.Name, Matches: matched}
	}
}

// maximal returns the names of descriptors whose required keys are not a
// strict subset of another descriptor's required keys.
func maximal(candidates []Descriptor) []string {
	var names []string

	for i, d := range candidates {
		dominated := false

		for j, other := range candidates {
			if i != j && strictSubset(d.Required, other.Required) {
				dominated = true

				break
			}
		}

		if !dominated {
			names = append(names, d.Name)
		}
	}

	return names
}

func strictSubset(a, b []string) bool {
	if len(a) >= len(b) {
		return false
	}

	for _, key := range a {
		if !slices.Contains(b, key) {
			return false
		}
	}

	return true
}

// Lookup returns the descriptor with the given name.
func (g Group) Lookup(name string) (Descriptor, bool) {
	for _, d := range g.Descriptors {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}

// ShapeMismatch explains why an object does not satisfy one descriptor.
type ShapeMismatch struct {
	Descriptor string
	Missing    []string
	Forbidden  []string
}

func (m ShapeMismatch) ok() bool {
	return len(m.Missing) == 0 && len(m.Forbidden) == 0
}
