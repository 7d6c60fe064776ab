package validator

import (
	"cmp"
	"math"
	"reflect"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// Numeric is satisfied by the built-in integer and floating-point types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberValidator validates a number.
type NumberValidator[N Numeric] struct {
	core[N]
}

// Number starts validating a number.
func Number[N Numeric](s *Session, name string, value N) *NumberValidator[N] {
	return &NumberValidator[N]{core: newCore(s, name, value)}
}

func isInteger[N Numeric]() bool {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Float32, reflect.Float64:
		return false
	default:
		return true
	}
}

func isSigned[N Numeric]() bool {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func numberCompare[N Numeric](a, b N) (int, bool) {
	if a != a || b != b {
		return 0, false
	}
	return cmp.Compare(a, b), true
}

// integerBound converts an exclusive integer bound into an inclusive one,
// unless doing so would overflow.
func integerBound[N Numeric](b message.Bound, lower bool) message.Bound {
	v := b.Value.(N)
	if lower {
		if next := v + 1; next > v {
			return message.Bound{Value: next, Inclusive: true}
		}
		return b
	}
	if prev := v - 1; prev < v {
		return message.Bound{Value: prev, Inclusive: true}
	}
	return b
}

func isWhole[N Numeric](n N) bool {
	if isInteger[N]() {
		return true
	}
	f := float64(n)
	return !math.IsInf(f, 0) && math.Trunc(f) == f
}

func isInfinite[N Numeric](n N) bool {
	return !isInteger[N]() && math.IsInf(float64(n), 0)
}

// isMultiple reports whether n is a multiple of factor. Nothing is a
// multiple of zero.
func isMultiple[N Numeric](n, factor N) bool {
	if factor == 0 {
		return false
	}
	switch {
	case isSigned[N]():
		return int64(n)%int64(factor) == 0
	case isInteger[N]():
		return uint64(n)%uint64(factor) == 0
	default:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		return math.Mod(f, float64(factor)) == 0
	}
}

func (v *NumberValidator[N]) IsEqualTo(expected N, name ...string) *NumberValidator[N] {
	v.isEqualTo(expected, name)
	return v
}

func (v *NumberValidator[N]) IsNotEqualTo(unwanted N, name ...string) *NumberValidator[N] {
	v.isNotEqualTo(unwanted, name)
	return v
}

func (v *NumberValidator[N]) IsOneOf(set []N, name ...string) *NumberValidator[N] {
	v.isOneOf(set, name)
	return v
}

func (v *NumberValidator[N]) IsNotOneOf(set []N, name ...string) *NumberValidator[N] {
	v.isNotOneOf(set, name)
	return v
}

// IsLessThan fails for NaN, as do the other ordering checks.
func (v *NumberValidator[N]) IsLessThan(maximumExclusive N, name ...string) *NumberValidator[N] {
	v.compareTo(maximumExclusive, name, numberCompare[N], lessThan)
	return v
}

func (v *NumberValidator[N]) IsLessThanOrEqualTo(maximumInclusive N, name ...string) *NumberValidator[N] {
	v.compareTo(maximumInclusive, name, numberCompare[N], atMost)
	return v
}

func (v *NumberValidator[N]) IsGreaterThan(minimumExclusive N, name ...string) *NumberValidator[N] {
	v.compareTo(minimumExclusive, name, numberCompare[N], moreThan)
	return v
}

func (v *NumberValidator[N]) IsGreaterThanOrEqualTo(minimumInclusive N, name ...string) *NumberValidator[N] {
	v.compareTo(minimumInclusive, name, numberCompare[N], atLeast)
	return v
}

// IsBetween checks that the value lies between minimum and maximum. For
// integers the violated bound is reported in its inclusive form, so 6
// against [4, 6) reads "must be at most 5".
// Panics if minimum is greater than maximum.
func (v *NumberValidator[N]) IsBetween(minimum N, minimumInclusive bool, maximum N, maximumInclusive bool,
) *NumberValidator[N] {
	var inclusive inclusiveFunc
	if isInteger[N]() {
		inclusive = integerBound[N]
	}
	v.isBetween(minimum, minimumInclusive, maximum, maximumInclusive, numberCompare[N], inclusive)
	return v
}

func (v *NumberValidator[N]) IsZero() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n == 0 }, message.IsZero)
	return v
}

func (v *NumberValidator[N]) IsNotZero() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n != 0 }, message.IsNotZero)
	return v
}

// IsPositive checks that the value is greater than zero. NaN is neither
// positive nor negative.
func (v *NumberValidator[N]) IsPositive() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n > 0 }, message.IsPositive)
	return v
}

func (v *NumberValidator[N]) IsNotPositive() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return !(n > 0) }, message.IsNotPositive)
	return v
}

func (v *NumberValidator[N]) IsNegative() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n < 0 }, message.IsNegative)
	return v
}

func (v *NumberValidator[N]) IsNotNegative() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return !(n < 0) }, message.IsNotNegative)
	return v
}

// IsMultipleOf checks that the value is a multiple of factor. A zero factor
// always fails.
func (v *NumberValidator[N]) IsMultipleOf(factor N, name ...string) *NumberValidator[N] {
	operand := v.operandName(name)
	if !v.requireValue() || isMultiple(v.value, factor) {
		return v
	}
	v.fail(message.IsMultipleOf(v.subject(), operand, factor))
	return v
}

// IsNotMultipleOf checks that the value is not a multiple of factor. A zero
// factor always passes.
func (v *NumberValidator[N]) IsNotMultipleOf(factor N, name ...string) *NumberValidator[N] {
	operand := v.operandName(name)
	if !v.requireValue() || !isMultiple(v.value, factor) {
		return v
	}
	v.fail(message.IsNotMultipleOf(v.subject(), operand, factor))
	return v
}

func (v *NumberValidator[N]) IsWholeNumber() *NumberValidator[N] {
	v.satisfy(isWhole[N], message.IsWholeNumber)
	return v
}

func (v *NumberValidator[N]) IsNotWholeNumber() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return !isWhole(n) }, message.IsNotWholeNumber)
	return v
}

// IsNumber checks that the value is not NaN.
func (v *NumberValidator[N]) IsNumber() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n == n }, message.IsNumber)
	return v
}

// IsNotNumber checks that the value is NaN.
func (v *NumberValidator[N]) IsNotNumber() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n != n }, message.IsNotNumber)
	return v
}

func (v *NumberValidator[N]) IsFinite() *NumberValidator[N] {
	v.satisfy(func(n N) bool { return n == n && !isInfinite(n) }, message.IsFinite)
	return v
}

func (v *NumberValidator[N]) IsInfinite() *NumberValidator[N] {
	v.satisfy(isInfinite[N], message.IsInfinite)
	return v
}
