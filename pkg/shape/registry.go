package shape

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Nested describes a field holding a sub-object or a list of sub-objects.
// Registry dispatches each item on its own discriminator. Variant handles
// items that have no discriminator but carry their own rules. Group only
// validates the items, and Output lists item fields normalised to nil on
// decode in that case.
type Nested struct {
	Registry *Registry
	Variant  *Variant
	Group    *Group
	Output   []string
}

// Variant is the rule set for one discriminator value. It can also be used on
// its own for resources that are not part of a union.
//
// InputOnly fields are accepted on encode and removed by Reconcile.
// OutputOnly fields are computed by the server and rejected on encode.
// Output fields are optional output fields. Decode sets every OutputOnly and
// Output field the payload lacks to nil.
type Variant struct {
	Discriminator string
	Locator       *Group
	Rules         []Rule
	Presence      PresenceSet
	InputOnly     []string
	OutputOnly    []string
	Output        []string
	Nested        map[string]Nested

	registry string
	field    string
}

// Declared returns every field Decode guarantees to be present.
func (v *Variant) Declared() []string {
	fields := make([]string, 0, len(v.OutputOnly)+len(v.Output)+1)
	if v.field != "" {
		fields = append(fields, v.field)
	}

	fields = append(fields, v.OutputOnly...)
	fields = append(fields, v.Output...)

	return fields
}

// Encode validates input and returns a shallow copy suitable for the wire.
func (v *Variant) Encode(input Object) (Object, error) {
	out := maps.Clone(input)
	if out == nil {
		out = Object{}
	}

	return v.encode(out)
}

func (v *Variant) encode(out Object) (Object, error) {
	var serverOnly []string

	for _, field := range v.OutputOnly {
		if v.Presence.Has(out, field) {
			serverOnly = append(serverOnly, field)
		}
	}

	if len(serverOnly) > 0 {
		return nil, v.invalid("", &NoMatchingShapeError{
			Group:      v.label(),
			Mismatches: []ShapeMismatch{{Descriptor: v.label(), Forbidden: serverOnly}},
		})
	}

	if v.Locator != nil {
		_, err := v.Locator.Match(out)
		if err != nil {
			return nil, v.invalid("", err)
		}
	}

	for _, field := range slices.Sorted(maps.Keys(v.Nested)) {
		if out[field] == nil {
			continue
		}

		nested := v.Nested[field]

		encoded, err := each(out[field], func(item Object) (Object, error) {
			return nested.encode(item)
		})
		if err != nil {
			var violation *ConditionalFieldViolationError
			if errors.As(err, &violation) && !errors.Is(err, ErrInvalidVariantShape) {
				return nil, violation.at(pathOf(field, err))
			}

			return nil, v.invalid(pathOf(field, err), err)
		}

		out[field] = encoded
	}

	_, err := RuleSet{Rules: v.Rules, Presence: v.Presence}.resolve(out, PhaseEncode)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Decode returns a copy of payload with nested items decoded and every
// declared field present.
func (v *Variant) Decode(payload Object) (Object, error) {
	return v.decode(payload, false)
}

func (v *Variant) decode(payload Object, reconcile bool) (Object, error) {
	out := maps.Clone(payload)
	if out == nil {
		out = Object{}
	}

	for _, field := range slices.Sorted(maps.Keys(v.Nested)) {
		if out[field] == nil {
			continue
		}

		nested := v.Nested[field]

		decoded, err := each(out[field], func(item Object) (Object, error) {
			return nested.decode(item, reconcile)
		})
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", v.label(), pathOf(field, err), err)
		}

		out[field] = decoded
	}

	if reconcile {
		for _, field := range v.InputOnly {
			delete(out, field)
		}
	}

	for _, field := range v.Declared() {
		if _, ok := out[field]; !ok {
			out[field] = nil
		}
	}

	_, err := RuleSet{Rules: v.Rules, Presence: v.Presence}.resolve(out, PhaseDecode)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (v *Variant) label() string {
	if v.Discriminator != "" {
		return v.Discriminator
	}

	return v.registry
}

func (v *Variant) invalid(path string, err error) error {
	return &InvalidVariantShapeError{
		Registry:      v.registry,
		Discriminator: v.Discriminator,
		Path:          path,
		Err:           err,
	}
}

func (n Nested) encode(item Object) (Object, error) {
	switch {
	case n.Registry != nil:
		discriminator, err := n.Registry.discriminator(item)
		if err != nil {
			return nil, err
		}

		return n.Registry.Encode(discriminator, item)
	case n.Variant != nil:
		return n.Variant.Encode(item)
	case n.Group != nil:
		_, err := n.Group.Match(item)
		if err != nil {
			return nil, err
		}
	}

	return maps.Clone(item), nil
}

func (n Nested) decode(item Object, reconcile bool) (Object, error) {
	if n.Registry != nil {
		if reconcile {
			return n.Registry.Reconcile(nil, item)
		}

		_, out, err := n.Registry.Decode(item)

		return out, err
	}

	if n.Variant != nil {
		return n.Variant.decode(item, reconcile)
	}

	out := maps.Clone(item)
	for _, field := range n.Output {
		if _, ok := out[field]; !ok {
			out[field] = nil
		}
	}

	return out, nil
}

// Registry maps discriminator values of one union to their variants.
type Registry struct {
	Name  string
	Field string

	variants map[string]*Variant
	order    []string
}

// NewRegistry returns an empty registry dispatching on field.
func NewRegistry(name, field string) *Registry {
	return &Registry{Name: name, Field: field, variants: make(map[string]*Variant)}
}

// Register adds variants to the registry.
func (r *Registry) Register(variants ...Variant) error {
	for _, v := range variants {
		if v.Discriminator == "" {
			return fmt.Errorf("registry %s: %w", r.Name, ErrEmptyDiscriminator)
		}

		if _, dup := r.variants[v.Discriminator]; dup {
			return fmt.Errorf("registry %s, variant %s: %w", r.Name, v.Discriminator, ErrDuplicateVariant)
		}

		if v.Locator != nil {
			err := v.Locator.Validate()
			if err != nil {
				return fmt.Errorf("registry %s, variant %s: %w", r.Name, v.Discriminator, err)
			}
		}

		v.registry = r.Name
		v.field = r.Field
		r.variants[v.Discriminator] = &v
		r.order = append(r.order, v.Discriminator)
	}

	return nil
}

// MustRegister is like Register but panics on error. It returns r so that a
// registry can be declared in one expression.
func (r *Registry) MustRegister(variants ...Variant) *Registry {
	err := r.Register(variants...)
	if err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the variant registered for discriminator.
func (r *Registry) Lookup(discriminator string) (*Variant, bool) {
	v, ok := r.variants[discriminator]

	return v, ok
}

// Discriminators returns the registered discriminator values in registration order.
func (r *Registry) Discriminators() []string {
	return slices.Clone(r.order)
}

// Encode validates input as the given variant and returns the wire payload:
// a copy of input with the discriminator field set.
func (r *Registry) Encode(discriminator string, input Object) (Object, error) {
	v, ok := r.variants[discriminator]
	if !ok {
		return nil, r.unknown(discriminator)
	}

	if existing, set := input[r.Field]; set && existing != nil && existing != discriminator {
		return nil, v.invalid("", fmt.Errorf("%s is %v: %w", r.Field, existing, ErrDiscriminatorClash))
	}

	out := maps.Clone(input)
	if out == nil {
		out = Object{}
	}

	out[r.Field] = discriminator

	return v.encode(out)
}

// Decode reads the discriminator from payload and decodes it with the
// matching variant.
func (r *Registry) Decode(payload Object) (string, Object, error) {
	discriminator, err := r.discriminator(payload)
	if err != nil {
		return "", nil, err
	}

	v, ok := r.variants[discriminator]
	if !ok {
		return "", nil, r.unknown(discriminator)
	}

	out, err := v.Decode(payload)
	if err != nil {
		return "", nil, err
	}

	return discriminator, out, nil
}

func (r *Registry) discriminator(obj Object) (string, error) {
	value, ok := obj[r.Field]
	if !ok || value == nil {
		return "", &UnknownVariantError{Registry: r.Name, Field: r.Field, Missing: true}
	}

	discriminator, ok := value.(string)
	if !ok {
		return "", r.unknown(fmt.Sprint(value))
	}

	return discriminator, nil
}

func (r *Registry) unknown(discriminator string) error {
	return &UnknownVariantError{Registry: r.Name, Field: r.Field, Discriminator: discriminator}
}

// indexError carries the list position of a failing nested item.
type indexError struct {
	index int
	err   error
}

func (e *indexError) Error() string { return e.err.Error() }

func (e *indexError) Unwrap() error { return e.err }

func pathOf(field string, err error) string {
	if ie, ok := err.(*indexError); ok { //nolint:errorlint
		return fmt.Sprintf("%s[%d]", field, ie.index)
	}

	return field
}

// each applies fn to a single object or to every object of a list. Lists
// are returned as []any.
func each(value any, fn func(Object) (Object, error)) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		return fn(typed)
	case []any:
		out := make([]any, len(typed))

		for i, item := range typed {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, &indexError{index: i, err: ErrNotAnObject}
			}

			res, err := fn(obj)
			if err != nil {
				return nil, &indexError{index: i, err: err}
			}

			out[i] = res
		}

		return out, nil
	case []map[string]any:
		out := make([]any, len(typed))

		for i, obj := range typed {
			res, err := fn(obj)
			if err != nil {
				return nil, &indexError{index: i, err: err}
			}

			out[i] = res
		}

		return out, nil
	default:
		return nil, ErrNotAList
	}
}
