package validator

import (
	"slices"

	"github.com/dmitrymomot/requirements/pkg/difference"
	"github.com/dmitrymomot/requirements/pkg/message"
)

// SliceValidator validates a slice. Containment checks compare elements
// with the configured equality method and ignore order and duplicates.
// A nil slice is empty, not null.
type SliceValidator[E any] struct {
	core[[]E]
	plural message.Pluralizer
}

// Slice starts validating a slice.
func Slice[E any](s *Session, name string, value []E) *SliceValidator[E] {
	return &SliceValidator[E]{core: newCore(s, name, value), plural: message.Elements}
}

func (v *SliceValidator[E]) difference(other []E) difference.Result[E] {
	return difference.Of(v.value, other, equivalence[E](v.config().equality))
}

func (v *SliceValidator[E]) containsElement(element E) bool {
	eq := v.config().equality
	return slices.ContainsFunc(v.value, func(e E) bool { return eq.Equal(e, element) })
}

// orNil drops empty slices from the context.
func orNil[E any](elements []E) any {
	if len(elements) == 0 {
		return nil
	}
	return elements
}

func (v *SliceValidator[E]) IsEqualTo(expected []E, name ...string) *SliceValidator[E] {
	v.isEqualTo(expected, name)
	return v
}

func (v *SliceValidator[E]) IsNotEqualTo(unwanted []E, name ...string) *SliceValidator[E] {
	v.isNotEqualTo(unwanted, name)
	return v
}

func (v *SliceValidator[E]) IsEmpty() *SliceValidator[E] {
	v.satisfy(func(s []E) bool { return len(s) == 0 }, message.IsEmpty)
	return v
}

func (v *SliceValidator[E]) IsNotEmpty() *SliceValidator[E] {
	v.satisfy(func(s []E) bool { return len(s) != 0 }, message.IsNotEmpty)
	return v
}

func (v *SliceValidator[E]) Contains(expected E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() || v.containsElement(expected) {
		return v
	}
	v.fail(message.Contains(v.subject(), operand, expected))
	return v
}

func (v *SliceValidator[E]) DoesNotContain(unwanted E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() || !v.containsElement(unwanted) {
		return v
	}
	v.fail(message.DoesNotContain(v.subject(), operand, unwanted))
	return v
}

// ContainsAll checks that every element of expected is present.
func (v *SliceValidator[E]) ContainsAll(expected []E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() {
		return v
	}
	diff := v.difference(expected)
	if len(diff.OnlyInOther) == 0 {
		return v
	}
	v.fail(message.ContainsAll(v.subject(), orNil(diff.OnlyInOther), operand, expected, v.plural))
	return v
}

// DoesNotContainAll checks that at least one element of unwanted is absent.
func (v *SliceValidator[E]) DoesNotContainAll(unwanted []E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() || len(v.difference(unwanted).OnlyInOther) > 0 {
		return v
	}
	v.fail(message.DoesNotContainAll(v.subject(), operand, unwanted, v.plural))
	return v
}

// ContainsAny checks that at least one element of expected is present.
func (v *SliceValidator[E]) ContainsAny(expected []E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() || len(v.difference(expected).Common) > 0 {
		return v
	}
	v.fail(message.ContainsAny(v.subject(), operand, expected, v.plural))
	return v
}

// DoesNotContainAny checks that no element of unwanted is present.
func (v *SliceValidator[E]) DoesNotContainAny(unwanted []E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() {
		return v
	}
	diff := v.difference(unwanted)
	if len(diff.Common) == 0 {
		return v
	}
	v.fail(message.DoesNotContainAny(v.subject(), orNil(diff.Common), operand, unwanted, v.plural))
	return v
}

// ContainsExactly checks that the value and expected hold the same
// elements, regardless of order.
func (v *SliceValidator[E]) ContainsExactly(expected []E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() {
		return v
	}
	diff := v.difference(expected)
	if diff.AreTheSame() {
		return v
	}
	v.fail(message.ContainsExactly(v.subject(), orNil(diff.OnlyInOther), orNil(diff.OnlyInActual),
		operand, expected, v.plural))
	return v
}

func (v *SliceValidator[E]) DoesNotContainExactly(unwanted []E, name ...string) *SliceValidator[E] {
	operand := v.operandName(name)
	if !v.requireValue() || !v.difference(unwanted).AreTheSame() {
		return v
	}
	v.fail(message.DoesNotContainExactly(v.subject(), operand, unwanted, v.plural))
	return v
}

func (v *SliceValidator[E]) DoesNotContainDuplicates() *SliceValidator[E] {
	if !v.requireValue() {
		return v
	}
	duplicates := difference.Duplicates(v.value, equivalence[E](v.config().equality))
	if len(duplicates) == 0 {
		return v
	}
	v.fail(message.DoesNotContainDuplicates(v.subject(), duplicates, v.plural))
	return v
}

func (v *SliceValidator[E]) HasSize(expected int, name ...string) *SliceValidator[E] {
	v.hasSize(len(v.value), expected, name, v.plural)
	return v
}

// SizeIsBetween checks the number of elements against a range.
// Panics if minimum is negative or greater than maximum.
func (v *SliceValidator[E]) SizeIsBetween(minimum int, minimumInclusive bool, maximum int, maximumInclusive bool,
) *SliceValidator[E] {
	v.sizeIsBetween(len(v.value), minimum, minimumInclusive, maximum, maximumInclusive, v.plural)
	return v
}

// Size returns a validator for the number of elements, named "len(name)".
func (v *SliceValidator[E]) Size() *NumberValidator[int] {
	return &NumberValidator[int]{core: derive(&v.core, message.SizeName(v.name), len(v.value))}
}
