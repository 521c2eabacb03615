// Package shape validates and normalises loosely typed JSON objects that may
// take one of several mutually exclusive forms.
//
// # Overview
//
// The package works on Object values (decoded JSON objects). It has four
// building blocks:
//
//   - Group matches an object against a set of exclusive Descriptors and
//     reports exactly one shape name, NoMatchingShape, or AmbiguousShape.
//   - Registry maps a discriminator literal (for example Type: "signingfield")
//     to a Variant and provides Encode and Decode.
//   - Rule and Resolve express "when X, then Y is required or forbidden"
//     constraints and report every violation at once.
//   - Reconcile turns a server payload into a fully keyed output object.
//
// Example
//
//	locator := shape.Group{
//	  Name: "element locator",
//	  Descriptors: []shape.Descriptor{
//	    {Name: "ByCoordinates", Required: []string{"Location", "Dimensions"}},
//	    {Name: "ByMarker", Required: []string{"Marker"}},
//	  },
//	}
//	name, err := locator.Match(shape.Object{"Marker": "#SIG01"})
//	// name == "ByMarker"
//
// # Errors
//
// Every failure is reported through a typed error that also matches one of
// the sentinel values with errors.Is: ErrNoMatchingShape, ErrAmbiguousShape,
// ErrInvalidVariantShape, ErrUnknownVariant and ErrConditionalFieldViolation.
//
// All functions in this package are pure. Registries are meant to be built
// once and then shared read-only between goroutines.
package shape
