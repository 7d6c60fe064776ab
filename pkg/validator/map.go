package validator

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// MapValidator validates a map. A nil map is empty, not null.
type MapValidator[K comparable, V any] struct {
	core[map[K]V]
}

// Map starts validating a map.
func Map[K comparable, V any](s *Session, name string, value map[K]V) *MapValidator[K, V] {
	return &MapValidator[K, V]{core: newCore(s, name, value)}
}

func (v *MapValidator[K, V]) IsEqualTo(expected map[K]V, name ...string) *MapValidator[K, V] {
	v.isEqualTo(expected, name)
	return v
}

func (v *MapValidator[K, V]) IsNotEqualTo(unwanted map[K]V, name ...string) *MapValidator[K, V] {
	v.isNotEqualTo(unwanted, name)
	return v
}

func (v *MapValidator[K, V]) IsEmpty() *MapValidator[K, V] {
	v.satisfy(func(m map[K]V) bool { return len(m) == 0 }, message.IsEmpty)
	return v
}

func (v *MapValidator[K, V]) IsNotEmpty() *MapValidator[K, V] {
	v.satisfy(func(m map[K]V) bool { return len(m) != 0 }, message.IsNotEmpty)
	return v
}

func (v *MapValidator[K, V]) ContainsKey(key K, name ...string) *MapValidator[K, V] {
	operand := v.operandName(name)
	if !v.requireValue() {
		return v
	}
	if _, ok := v.value[key]; !ok {
		v.fail(message.ContainsKey(v.subject(), operand, key))
	}
	return v
}

func (v *MapValidator[K, V]) DoesNotContainKey(key K, name ...string) *MapValidator[K, V] {
	operand := v.operandName(name)
	if !v.requireValue() {
		return v
	}
	if _, ok := v.value[key]; ok {
		v.fail(message.DoesNotContainKey(v.subject(), operand, key))
	}
	return v
}

func (v *MapValidator[K, V]) HasSize(expected int, name ...string) *MapValidator[K, V] {
	v.hasSize(len(v.value), expected, name, message.Entries)
	return v
}

// SizeIsBetween checks the number of entries against a range.
// Panics if minimum is negative or greater than maximum.
func (v *MapValidator[K, V]) SizeIsBetween(minimum int, minimumInclusive bool, maximum int, maximumInclusive bool,
) *MapValidator[K, V] {
	v.sizeIsBetween(len(v.value), minimum, minimumInclusive, maximum, maximumInclusive, message.Entries)
	return v
}

// Size returns a validator for the number of entries, named "len(name)".
func (v *MapValidator[K, V]) Size() *NumberValidator[int] {
	return &NumberValidator[int]{core: derive(&v.core, message.SizeName(v.name), len(v.value))}
}

// sortedKeys orders keys by their rendered form so derived validators and
// their messages are deterministic.
func (v *MapValidator[K, V]) sortedKeys() []K {
	mappers := v.config().mappers
	keys := make([]K, 0, len(v.value))
	for k := range v.value {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return cmp.Compare(mappers.String(a), mappers.String(b))
	})
	return keys
}

// Keys returns a validator for the keys, named "keys(name)".
func (v *MapValidator[K, V]) Keys() *SliceValidator[K] {
	return &SliceValidator[K]{
		core:   derive(&v.core, "keys("+v.name+")", v.sortedKeys()),
		plural: message.Keys,
	}
}

// Values returns a validator for the values, named "values(name)", in the
// order of Keys.
func (v *MapValidator[K, V]) Values() *SliceValidator[V] {
	keys := v.sortedKeys()
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = v.value[k]
	}
	return &SliceValidator[V]{
		core:   derive(&v.core, "values("+v.name+")", values),
		plural: message.Values,
	}
}
