package validator

import (
	"cmp"
	"math/big"
	"time"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// ComparableValidator validates a value with a natural ordering.
type ComparableValidator[T any] struct {
	core[T]
	compare   compareFunc[T]
	inclusive inclusiveFunc
}

// Ordered starts validating a value ordered by the < operator.
func Ordered[T cmp.Ordered](s *Session, name string, value T) *ComparableValidator[T] {
	return &ComparableValidator[T]{core: newCore(s, name, value), compare: orderedCompare[T]}
}

// Compared starts validating a value ordered by compare, which returns a
// negative number, zero or a positive number when a is less than, equal to
// or greater than b. Panics if compare is nil.
func Compared[T any](s *Session, name string, value T, compare func(a, b T) int) *ComparableValidator[T] {
	if compare == nil {
		precondition("compare function may not be nil")
	}
	return &ComparableValidator[T]{core: newCore(s, name, value), compare: total(compare)}
}

// Time starts validating a point in time.
func Time(s *Session, name string, value time.Time) *ComparableValidator[time.Time] {
	return Compared(s, name, value, time.Time.Compare)
}

// BigInt starts validating an arbitrary-precision integer. Exclusive range
// bounds are reported as the equivalent inclusive ones.
func BigInt(s *Session, name string, value *big.Int) *ComparableValidator[*big.Int] {
	v := Compared(s, name, value, (*big.Int).Cmp)
	v.inclusive = bigIntBound
	return v
}

func orderedCompare[T cmp.Ordered](a, b T) (int, bool) {
	if isNaN(a) || isNaN(b) {
		return 0, false
	}
	return cmp.Compare(a, b), true
}

func isNaN[T cmp.Ordered](x T) bool {
	return x != x
}

func total[T any](compare func(a, b T) int) compareFunc[T] {
	return func(a, b T) (int, bool) { return compare(a, b), true }
}

func bigIntBound(b message.Bound, lower bool) message.Bound {
	v := b.Value.(*big.Int)
	delta := big.NewInt(-1)
	if lower {
		delta = big.NewInt(1)
	}
	return message.Bound{Value: new(big.Int).Add(v, delta), Inclusive: true}
}

func (v *ComparableValidator[T]) IsNull() *ComparableValidator[T] {
	v.isNull()
	return v
}

func (v *ComparableValidator[T]) IsNotNull() *ComparableValidator[T] {
	v.requireValue()
	return v
}

func (v *ComparableValidator[T]) IsEqualTo(expected T, name ...string) *ComparableValidator[T] {
	v.isEqualTo(expected, name)
	return v
}

func (v *ComparableValidator[T]) IsNotEqualTo(unwanted T, name ...string) *ComparableValidator[T] {
	v.isNotEqualTo(unwanted, name)
	return v
}

func (v *ComparableValidator[T]) IsOneOf(set []T, name ...string) *ComparableValidator[T] {
	v.isOneOf(set, name)
	return v
}

func (v *ComparableValidator[T]) IsNotOneOf(set []T, name ...string) *ComparableValidator[T] {
	v.isNotOneOf(set, name)
	return v
}

func (v *ComparableValidator[T]) IsLessThan(maximumExclusive T, name ...string) *ComparableValidator[T] {
	v.compareTo(maximumExclusive, name, v.compare, lessThan)
	return v
}

func (v *ComparableValidator[T]) IsLessThanOrEqualTo(maximumInclusive T, name ...string) *ComparableValidator[T] {
	v.compareTo(maximumInclusive, name, v.compare, atMost)
	return v
}

func (v *ComparableValidator[T]) IsGreaterThan(minimumExclusive T, name ...string) *ComparableValidator[T] {
	v.compareTo(minimumExclusive, name, v.compare, moreThan)
	return v
}

func (v *ComparableValidator[T]) IsGreaterThanOrEqualTo(minimumInclusive T, name ...string) *ComparableValidator[T] {
	v.compareTo(minimumInclusive, name, v.compare, atLeast)
	return v
}

// IsBetween checks that the value lies between minimum and maximum.
// Panics if minimum is greater than maximum.
func (v *ComparableValidator[T]) IsBetween(minimum T, minimumInclusive bool, maximum T, maximumInclusive bool,
) *ComparableValidator[T] {
	v.isBetween(minimum, minimumInclusive, maximum, maximumInclusive, v.compare, v.inclusive)
	return v
}
