// Package difference partitions two collections into the elements they share
// and the elements found only in one of them.
//
// The partition is computed under a caller-supplied Equivalence. When every
// element can be hashed consistently with that equivalence the computation is
// linear; otherwise it falls back to pairwise comparison. Inputs are never
// mutated and every output slice keeps the iteration order of its source.
// Duplicate elements are reported once, at their first position.
package difference

// Equivalence defines when two elements are considered equal.
type Equivalence[E any] struct {
	// Equal reports whether a and b are equal.
	Equal func(a, b E) bool
	// Key returns a map key consistent with Equal, or false when e cannot be
	// hashed. Nil means elements are never hashed.
	Key func(e E) (any, bool)
}

// Comparable returns the equivalence defined by the == operator.
func Comparable[E comparable]() Equivalence[E] {
	return Equivalence[E]{
		Equal: func(a, b E) bool { return a == b },
		Key:   func(e E) (any, bool) { return e, true },
	}
}

// Result is the three-way partition of an actual and an other collection.
type Result[E any] struct {
	// Common holds elements present in both collections, in actual's order.
	Common []E
	// OnlyInActual holds elements missing from other, in actual's order.
	OnlyInActual []E
	// OnlyInOther holds elements missing from actual, in other's order.
	OnlyInOther []E
}

// AreTheSame reports whether both collections hold the same elements,
// regardless of order and duplicates.
func (r Result[E]) AreTheSame() bool {
	return len(r.OnlyInActual) == 0 && len(r.OnlyInOther) == 0
}

// Of computes the difference between actual and other.
func Of[E any](actual, other []E, eq Equivalence[E]) Result[E] {
	if actualKeys, ok := keysOf(actual, eq); ok {
		if otherKeys, ok := keysOf(other, eq); ok {
			return hashed(actual, other, actualKeys, otherKeys)
		}
	}
	return pairwise(actual, other, eq)
}

func keysOf[E any](elements []E, eq Equivalence[E]) ([]any, bool) {
	if eq.Key == nil {
		return nil, false
	}
	keys := make([]any, len(elements))
	for i, e := range elements {
		key, ok := eq.Key(e)
		if !ok {
			return nil, false
		}
		keys[i] = key
	}
	return keys, true
}

func hashed[E any](actual, other []E, actualKeys, otherKeys []any) Result[E] {
	inOther := make(map[any]struct{}, len(otherKeys))
	for _, key := range otherKeys {
		inOther[key] = struct{}{}
	}
	inActual := make(map[any]struct{}, len(actualKeys))

	var result Result[E]
	for i, e := range actual {
		key := actualKeys[i]
		if _, seen := inActual[key]; seen {
			continue
		}
		inActual[key] = struct{}{}
		if _, ok := inOther[key]; ok {
			result.Common = append(result.Common, e)
		} else {
			result.OnlyInActual = append(result.OnlyInActual, e)
		}
	}

	seen := make(map[any]struct{}, len(otherKeys))
	for i, e := range other {
		key := otherKeys[i]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := inActual[key]; !ok {
			result.OnlyInOther = append(result.OnlyInOther, e)
		}
	}
	return result
}

func pairwise[E any](actual, other []E, eq Equivalence[E]) Result[E] {
	var result Result[E]
	distinctActual := distinct(actual, eq.Equal)
	distinctOther := distinct(other, eq.Equal)

	for _, e := range distinctActual {
		if containsFunc(distinctOther, e, eq.Equal) {
			result.Common = append(result.Common, e)
		} else {
			result.OnlyInActual = append(result.OnlyInActual, e)
		}
	}
	for _, e := range distinctOther {
		if !containsFunc(distinctActual, e, eq.Equal) {
			result.OnlyInOther = append(result.OnlyInOther, e)
		}
	}
	return result
}

func distinct[E any](elements []E, equal func(a, b E) bool) []E {
	result := make([]E, 0, len(elements))
	for _, e := range elements {
		if !containsFunc(result, e, equal) {
			result = append(result, e)
		}
	}
	return result
}

func containsFunc[E any](elements []E, target E, equal func(a, b E) bool) bool {
	for _, e := range elements {
		if equal(e, target) {
			return true
		}
	}
	return false
}

// Duplicates returns every element that occurs more than once, reported once
// in order of its second occurrence.
func Duplicates[E any](elements []E, eq Equivalence[E]) []E {
	var duplicates []E
	if keys, ok := keysOf(elements, eq); ok {
		seen := make(map[any]struct{}, len(keys))
		reported := make(map[any]struct{})
		for i, key := range keys {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				continue
			}
			if _, ok := reported[key]; ok {
				continue
			}
			reported[key] = struct{}{}
			duplicates = append(duplicates, elements[i])
		}
		return duplicates
	}

	for i, e := range elements {
		if !containsFunc(elements[:i], e, eq.Equal) || containsFunc(duplicates, e, eq.Equal) {
			continue
		}
		duplicates = append(duplicates, e)
	}
	return duplicates
}
