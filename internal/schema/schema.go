package schema

import (
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/esig/pkg/esig"
	"github.com/fivetwenty-io/esig/pkg/shape"
)

// Set holds the registries of one API version. Fields that do not exist in
// a version are nil.
type Set struct {
	Version esig.APIVersion

	// Elements dispatches document elements on Type. v4 only.
	Elements *shape.Registry
	// Actors and Stakeholders dispatch on Type in both versions, with
	// different discriminator literals.
	Actors       *shape.Registry
	Stakeholders *shape.Registry

	// Package validates package create inputs and reconciles packages.
	Package *shape.Variant
	// Document validates document create inputs (v4) or upload metadata (v3).
	Document *shape.Variant

	// ProcessInformation and Status are the v3 process and status resources.
	ProcessInformation *shape.Variant
	Status             *shape.Variant
}

// ForVersion returns the registries for version. An empty version selects v4.
func ForVersion(version esig.APIVersion) (*Set, error) {
	switch version {
	case esig.APIVersionV4, "":
		return v4Set, nil
	case esig.APIVersionV3:
		return v3Set, nil
	default:
		return nil, fmt.Errorf("%w: %q", esig.ErrUnsupportedAPIVersion, version)
	}
}

// ToObject converts a typed input to its JSON object form.
func ToObject(v any) (shape.Object, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}

	obj := shape.Object{}

	err = json.Unmarshal(data, &obj)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, shape.ErrNotAnObject)
	}

	return obj, nil
}

// FromObject converts a decoded object into out.
func FromObject(obj shape.Object, out any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", out, err)
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", out, err)
	}

	return nil
}
