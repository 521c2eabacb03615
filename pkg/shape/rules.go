package shape

import (
	"fmt"
	"reflect"
)

// Predicate is a single field test. A rule fires when all its predicates hold.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Op is a predicate operator.
type Op int

// Predicate operators.
const (
	OpPresent Op = iota
	OpAbsent
	OpEquals
	OpNotEquals
)

// Present holds when field is supplied.
func Present(field string) Predicate {
	return Predicate{Field: field, Op: OpPresent}
}

// Absent holds when field is not supplied.
func Absent(field string) Predicate {
	return Predicate{Field: field, Op: OpAbsent}
}

// Equals holds when field is supplied and equal to value.
func Equals(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpEquals, Value: value}
}

// NotEquals holds when field is not supplied or differs from value.
func NotEquals(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpNotEquals, Value: value}
}

func (p Predicate) String() string {
	switch p.Op {
	case OpPresent:
		return p.Field + " set"
	case OpAbsent:
		return p.Field + " not set"
	case OpEquals:
		return fmt.Sprintf("%s == %v", p.Field, p.Value)
	case OpNotEquals:
		return fmt.Sprintf("%s != %v", p.Field, p.Value)
	default:
		return fmt.Sprintf("%s <op %d>", p.Field, int(p.Op))
	}
}

func (p Predicate) holds(obj Object, presence PresenceSet) bool {
	switch p.Op {
	case OpPresent:
		return presence.Has(obj, p.Field)
	case OpAbsent:
		return !presence.Has(obj, p.Field)
	case OpEquals:
		return presence.Has(obj, p.Field) && equal(obj[p.Field], p.Value)
	case OpNotEquals:
		return !presence.Has(obj, p.Field) || !equal(obj[p.Field], p.Value)
	default:
		return false
	}
}

// equal compares JSON scalars, treating every numeric type as float64.
func equal(a, b any) bool {
	fa, aNum := number(a)
	fb, bNum := number(b)

	if aNum && bNum {
		return fa == fb
	}

	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Phase limits when a rule runs.
type Phase int

const (
	// PhaseAll runs on both encode and decode.
	PhaseAll Phase = iota
	// PhaseEncode runs only on outbound objects.
	PhaseEncode
	// PhaseDecode runs only on server payloads.
	PhaseDecode
)

func (p Phase) includes(other Phase) bool {
	return p == PhaseAll || p == other
}

// Rule makes fields required or forbidden when every When predicate holds.
// Expect lists further predicates that must then hold, for value constraints
// such as "X must also be true". A rule with no When predicates always fires.
type Rule struct {
	Name    string
	When    []Predicate
	Require []string
	Forbid  []string
	Expect  []Predicate
	Phase   Phase
}

// RuleSet is an ordered list of rules sharing one presence configuration.
type RuleSet struct {
	Rules    []Rule
	Presence PresenceSet
}

// Resolve evaluates every rule against obj and returns obj unchanged when
// none fail. Rules never see each other's effects, and all failures are
// reported together in a ConditionalFieldViolationError.
func (s RuleSet) Resolve(obj Object) (Object, error) {
	return s.resolve(obj, PhaseAll)
}

func (s RuleSet) resolve(obj Object, phase Phase) (Object, error) {
	var violations []*RuleViolation

	for _, rule := range s.Rules {
		if phase != PhaseAll && !rule.Phase.includes(phase) {
			continue
		}

		if v := rule.check(obj, s.Presence); v != nil {
			violations = append(violations, v)
		}
	}

	if len(violations) > 0 {
		return nil, newConditionalFieldViolation(violations)
	}

	return obj, nil
}

// Resolve evaluates rules against obj using the default presence test.
func Resolve(obj Object, rules ...Rule) (Object, error) {
	return RuleSet{Rules: rules}.Resolve(obj)
}

func (r Rule) check(obj Object, presence PresenceSet) *RuleViolation {
	for _, p := range r.When {
		if !p.holds(obj, presence) {
			return nil
		}
	}

	violation := RuleViolation{Rule: r.Name}

	for _, field := range r.Require {
		if !presence.Has(obj, field) {
			violation.Missing = append(violation.Missing, field)
		}
	}

	for _, field := range r.Forbid {
		if presence.Has(obj, field) {
			violation.Forbidden = append(violation.Forbidden, field)
		}
	}

	for _, p := range r.Expect {
		if !p.holds(obj, presence) {
			violation.Unmet = append(violation.Unmet, p.String())
		}
	}

	if len(violation.Missing) == 0 && len(violation.Forbidden) == 0 && len(violation.Unmet) == 0 {
		return nil
	}

	return &violation
}
