package validator

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/message"
)

// state tags a validator as active or short-circuited. The transition is
// one way: a short-circuited validator never records another failure.
type state uint8

const (
	active state = iota
	shortCircuited
)

// compareFunc orders a and b. It returns false when the values are
// unordered, such as NaN.
type compareFunc[T any] func(a, b T) (int, bool)

// core holds the state shared by every typed validator.
type core[T any] struct {
	session *Session
	name    string
	value   T
	state   state
}

func newCore[T any](s *Session, name string, value T) core[T] {
	requireSession(s)
	s.checkName(name)
	return core[T]{session: s, name: name, value: value}
}

// derive returns a core for a value computed from c's value. It shares c's
// session and inherits its state.
func derive[T, U any](c *core[T], name string, value U) core[U] {
	return core[U]{session: c.session, name: name, value: value, state: c.state}
}

// Name returns the name of the value.
func (c *core[T]) Name() string {
	return c.name
}

// Active reports whether the validator still checks constraints.
func (c *core[T]) Active() bool {
	return c.state == active
}

// Value returns the validated value, or ErrNoValue if the validator was
// short-circuited.
func (c *core[T]) Value() (T, error) {
	if c.state == shortCircuited {
		var zero T
		return zero, ErrNoValue
	}
	return c.value, nil
}

// ValueOr returns the validated value, or fallback if the validator was
// short-circuited.
func (c *core[T]) ValueOr(fallback T) T {
	if c.state == shortCircuited {
		return fallback
	}
	return c.value
}

func (c *core[T]) config() *Configuration {
	return c.session.validators.config
}

func (c *core[T]) subject() message.Subject {
	return message.Subject{
		Name:    c.name,
		Value:   c.value,
		Defined: !isNull(c.value),
		Mappers: c.config().mappers,
	}
}

func (c *core[T]) skip() bool {
	return c.state == shortCircuited
}

func (c *core[T]) fail(b *message.Builder) {
	c.session.record(c.session.kind, c.name, b)
}

func (c *core[T]) shortCircuit(kind ErrorKind, b *message.Builder) {
	c.state = shortCircuited
	c.session.validators.logger.Debug("validator short-circuited", logger.Name(c.name), logger.Kind(kind))
	c.session.record(kind, c.name, b)
}

// requireValue reports whether constraints may be checked. A null value
// records a null-value failure and short-circuits the validator.
func (c *core[T]) requireValue() bool {
	if c.skip() {
		return false
	}
	if isNull(c.value) {
		c.shortCircuit(KindNullValue, message.IsNotNull(c.subject()))
		return false
	}
	return true
}

// operandName returns the optional name of an operand.
func (c *core[T]) operandName(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
	default:
		precondition("at most one operand name may be supplied, got %d", len(names))
	}
	name := names[0]
	requireName(name, "operand name")
	if name == c.name {
		precondition("operand name %q may not be the same as the name of the value", name)
	}
	v := c.session.validators
	if hasContext(v.context, name) || hasContext(v.config.context, name) {
		precondition("operand name %q is already used as a context key", name)
	}
	return name
}

// operandPresent reports whether an operand is non-null. A null operand is
// recorded against its own name, or fallback when it has none.
func (c *core[T]) operandPresent(name, fallback string, value any) bool {
	if !isNull(value) {
		return true
	}
	if name == "" {
		name = fallback
	}
	That(c.session, name, value).IsNotNull()
	return false
}

func (c *core[T]) satisfy(pass func(T) bool, failure func(message.Subject) *message.Builder) {
	if !c.requireValue() {
		return
	}
	if !pass(c.value) {
		c.fail(failure(c.subject()))
	}
}

func (c *core[T]) isNull() {
	if c.skip() {
		return
	}
	if !isNull(c.value) {
		c.fail(message.IsNull(c.subject()))
	}
}

func (c *core[T]) isEqualTo(expected T, names []string) {
	name := c.operandName(names)
	if c.skip() || c.config().equality.Equal(c.value, expected) {
		return
	}
	b := message.IsEqualTo(c.subject(), name, expected)
	if c.config().allowDiff {
		expectedName := name
		if expectedName == "" {
			expectedName = "expected"
		}
		b.WithDiff(message.Diff(expectedName, expected, c.name, c.value, c.session.validators.styler))
	}
	c.fail(b)
}

func (c *core[T]) isNotEqualTo(unwanted T, names []string) {
	name := c.operandName(names)
	if c.skip() || !c.config().equality.Equal(c.value, unwanted) {
		return
	}
	c.fail(message.IsNotEqualTo(c.subject(), name, unwanted))
}

func (c *core[T]) isSameReferenceAs(expected T, names []string) {
	name := c.operandName(names)
	if c.skip() || identical(c.value, expected) {
		return
	}
	c.fail(message.IsSameReferenceAs(c.subject(), name, expected))
}

func (c *core[T]) isNotSameReferenceAs(unwanted T, names []string) {
	name := c.operandName(names)
	if c.skip() || !identical(c.value, unwanted) {
		return
	}
	c.fail(message.IsNotSameReferenceAs(c.subject(), name, unwanted))
}

func (c *core[T]) contains(set []T, element T) bool {
	eq := c.config().equality
	return slices.ContainsFunc(set, func(e T) bool { return eq.Equal(e, element) })
}

func (c *core[T]) isOneOf(set []T, names []string) {
	name := c.operandName(names)
	if c.skip() || c.contains(set, c.value) {
		return
	}
	c.fail(message.IsOneOf(c.subject(), name, set))
}

func (c *core[T]) isNotOneOf(set []T, names []string) {
	name := c.operandName(names)
	if c.skip() || !c.contains(set, c.value) {
		return
	}
	c.fail(message.IsNotOneOf(c.subject(), name, set))
}

type relation struct {
	fallback string
	pass     func(int) bool
	failure  func(s message.Subject, name string, limit any) *message.Builder
}

var (
	lessThan = relation{"maximumExclusive", func(r int) bool { return r < 0 }, message.IsLessThan}
	atMost   = relation{"maximumInclusive", func(r int) bool { return r <= 0 }, message.IsLessThanOrEqualTo}
	moreThan = relation{"minimumExclusive", func(r int) bool { return r > 0 }, message.IsGreaterThan}
	atLeast  = relation{"minimumInclusive", func(r int) bool { return r >= 0 }, message.IsGreaterThanOrEqualTo}
)

func (c *core[T]) compareTo(limit T, names []string, compare compareFunc[T], rel relation) {
	name := c.operandName(names)
	if !c.requireValue() || !c.operandPresent(name, rel.fallback, limit) {
		return
	}
	if r, ok := compare(c.value, limit); ok && rel.pass(r) {
		return
	}
	c.fail(rel.failure(c.subject(), name, limit))
}

// inclusiveFunc converts an exclusive bound into the equivalent inclusive
// one when the value type allows it.
type inclusiveFunc func(b message.Bound, lower bool) message.Bound

func (c *core[T]) isBetween(minimum T, minimumInclusive bool, maximum T, maximumInclusive bool,
	compare compareFunc[T], inclusive inclusiveFunc,
) {
	if !isNull(minimum) && !isNull(maximum) {
		if r, ok := compare(minimum, maximum); ok && r > 0 {
			mappers := c.config().mappers
			precondition("minimum %s may not be greater than maximum %s",
				mappers.String(minimum), mappers.String(maximum))
		}
	}
	if !c.requireValue() ||
		!c.operandPresent("", "minimum", minimum) ||
		!c.operandPresent("", "maximum", maximum) {
		return
	}

	low, lowOK := compare(c.value, minimum)
	high, highOK := compare(c.value, maximum)
	tooLow := !lowOK || low < 0 || (low == 0 && !minimumInclusive)
	tooHigh := !highOK || high > 0 || (high == 0 && !maximumInclusive)
	if !tooLow && !tooHigh {
		return
	}

	r := message.Range{
		Min: message.Bound{Value: minimum, Inclusive: minimumInclusive},
		Max: message.Bound{Value: maximum, Inclusive: maximumInclusive},
	}
	limit := r.Max
	if tooLow {
		limit = r.Min
	}
	if inclusive != nil && !limit.Inclusive {
		limit = inclusive(limit, tooLow)
	}
	c.fail(message.IsBetween(c.subject(), r, tooLow, limit))
}

func (c *core[T]) hasSize(size, expected int, names []string, p message.Pluralizer) {
	name := c.operandName(names)
	if !c.requireValue() || size == expected {
		return
	}
	c.fail(message.HasSize(c.subject(), message.SizeName(c.name), size, name, expected, p))
}

func (c *core[T]) sizeIsBetween(size, minimum int, minimumInclusive bool, maximum int, maximumInclusive bool,
	p message.Pluralizer,
) {
	if minimum < 0 {
		precondition("minimum size may not be negative, got %d", minimum)
	}
	if minimum > maximum {
		precondition("minimum size %d may not be greater than maximum size %d", minimum, maximum)
	}
	if !c.requireValue() {
		return
	}
	low, high := minimum, maximum
	if !minimumInclusive {
		low++
	}
	if !maximumInclusive {
		high--
	}
	if size >= low && size <= high {
		return
	}
	c.fail(message.SizeIsBetween(c.subject(), message.SizeName(c.name), size,
		minimum, minimumInclusive, maximum, maximumInclusive, p))
}

// isNull reports whether v is nil or a nil pointer, interface, function or
// channel. Nil slices and maps are empty, not null.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
