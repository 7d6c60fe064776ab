package validator

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/dmitrymomot/requirements/pkg/difference"
)

type equalityKind uint8

const (
	structural equalityKind = iota
	identity
	comparator
)

// EqualityMethod decides when two values are equal.
type EqualityMethod struct {
	kind    equalityKind
	compare func(a, b any) bool
}

var (
	// Structural compares values field by field, unexported fields included.
	// Types with an Equal method are compared with it, *big.Int by value.
	Structural = EqualityMethod{kind: structural}

	// Identity compares pointers, maps, slices, channels and functions by
	// address and every other value with ==.
	Identity = EqualityMethod{kind: identity}
)

// Comparator returns an equality method backed by fn, for types lacking a
// reliable notion of equality. Panics if fn is nil.
func Comparator(fn func(a, b any) bool) EqualityMethod {
	if fn == nil {
		precondition("comparator may not be nil")
	}
	return EqualityMethod{kind: comparator, compare: fn}
}

// ParseEqualityMethod parses "structural" or "identity".
func ParseEqualityMethod(s string) (EqualityMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "structural":
		return Structural, nil
	case "identity":
		return Identity, nil
	default:
		return EqualityMethod{}, fmt.Errorf("%w: %q", ErrUnknownEqualityMethod, s)
	}
}

func (m EqualityMethod) String() string {
	switch m.kind {
	case identity:
		return "identity"
	case comparator:
		return "comparator"
	default:
		return "structural"
	}
}

// Equal reports whether a and b are equal under this method.
func (m EqualityMethod) Equal(a, b any) bool {
	switch m.kind {
	case identity:
		return identical(a, b)
	case comparator:
		return m.compare(a, b)
	default:
		return structurallyEqual(a, b)
	}
}

func (m EqualityMethod) same(other EqualityMethod) bool {
	return m.kind == other.kind && funcID(m.compare) == funcID(other.compare)
}

// key returns a map key consistent with Equal, or false when e cannot be
// hashed under this method.
func (m EqualityMethod) key(e any) (any, bool) {
	if m.kind == comparator {
		return nil, false
	}
	if e == nil {
		return nil, true
	}
	switch reflect.ValueOf(e).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return e, true
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return e, m.kind == identity
	default:
		return nil, false
	}
}

var structuralOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
}

func structurallyEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b, structuralOptions)
}

func identical(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Type().Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func equivalence[E any](m EqualityMethod) difference.Equivalence[E] {
	return difference.Equivalence[E]{
		Equal: func(a, b E) bool { return m.Equal(a, b) },
		Key:   func(e E) (any, bool) { return m.key(e) },
	}
}
