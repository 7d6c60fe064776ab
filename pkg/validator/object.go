package validator

import (
	"reflect"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// ObjectValidator validates a value of any type.
type ObjectValidator[T any] struct {
	core[T]
}

// That starts validating value under name.
// Panics if s is nil or name is empty, contains whitespace, or is already
// used as a context key.
func That[T any](s *Session, name string, value T) *ObjectValidator[T] {
	return &ObjectValidator[T]{core: newCore(s, name, value)}
}

func (v *ObjectValidator[T]) IsNull() *ObjectValidator[T] {
	v.isNull()
	return v
}

// IsNotNull short-circuits the validator when the value is null.
func (v *ObjectValidator[T]) IsNotNull() *ObjectValidator[T] {
	v.requireValue()
	return v
}

// IsEqualTo checks the value against expected using the configured
// equality method. An optional name refers to expected in the message.
func (v *ObjectValidator[T]) IsEqualTo(expected T, name ...string) *ObjectValidator[T] {
	v.isEqualTo(expected, name)
	return v
}

func (v *ObjectValidator[T]) IsNotEqualTo(unwanted T, name ...string) *ObjectValidator[T] {
	v.isNotEqualTo(unwanted, name)
	return v
}

// IsSameReferenceAs checks that the value and expected share an address.
func (v *ObjectValidator[T]) IsSameReferenceAs(expected T, name ...string) *ObjectValidator[T] {
	v.isSameReferenceAs(expected, name)
	return v
}

func (v *ObjectValidator[T]) IsNotSameReferenceAs(unwanted T, name ...string) *ObjectValidator[T] {
	v.isNotSameReferenceAs(unwanted, name)
	return v
}

func (v *ObjectValidator[T]) IsOneOf(set []T, name ...string) *ObjectValidator[T] {
	v.isOneOf(set, name)
	return v
}

func (v *ObjectValidator[T]) IsNotOneOf(set []T, name ...string) *ObjectValidator[T] {
	v.isNotOneOf(set, name)
	return v
}

// Deref narrows a pointer validator to the pointed-to value. A nil pointer
// records a null-value failure and short-circuits both validators.
func Deref[T any](v *ObjectValidator[*T]) *ObjectValidator[T] {
	var zero T
	out := &ObjectValidator[T]{core: derive(&v.core, v.name, zero)}
	if !v.requireValue() {
		out.state = shortCircuited
		return out
	}
	out.value = *v.value
	return out
}

// AsString narrows the value to a string. Pointers are followed and any type
// whose underlying type is string is accepted.
func AsString[T any](v *ObjectValidator[T]) *StringValidator {
	c := narrow(&v.core, "string", func(rv reflect.Value) (string, bool) {
		if rv.Kind() != reflect.String {
			return "", false
		}
		return rv.String(), true
	})
	return &StringValidator{core: c}
}

// AsNumber narrows the value to the numeric type N. Pointers are followed.
func AsNumber[N Numeric, T any](v *ObjectValidator[T]) *NumberValidator[N] {
	return &NumberValidator[N]{core: narrow(&v.core, typeName[N](), assertType[N])}
}

// AsSlice narrows the value to []E. Pointers are followed.
func AsSlice[E, T any](v *ObjectValidator[T]) *SliceValidator[E] {
	return &SliceValidator[E]{core: narrow(&v.core, typeName[[]E](), assertType[[]E]), plural: message.Elements}
}

// AsMap narrows the value to map[K]V. Pointers are followed.
func AsMap[K comparable, V, T any](v *ObjectValidator[T]) *MapValidator[K, V] {
	return &MapValidator[K, V]{core: narrow(&v.core, typeName[map[K]V](), assertType[map[K]V])}
}

// narrow converts the value of c. A null value records a null-value failure;
// a value of the wrong type records a type failure. Either short-circuits c
// and the returned core.
func narrow[T, U any](c *core[T], target string, convert func(reflect.Value) (U, bool)) core[U] {
	var zero U
	out := derive(c, c.name, zero)
	if !c.requireValue() {
		out.state = shortCircuited
		return out
	}

	rv := reflect.ValueOf(any(c.value))
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			c.shortCircuit(KindNullValue, message.IsNotNull(c.subject()))
			out.state = shortCircuited
			return out
		}
		rv = rv.Elem()
	}

	value, ok := convert(rv)
	if !ok {
		c.shortCircuit(c.session.kind, message.IsInstanceOf(c.subject(), target))
		out.state = shortCircuited
		return out
	}
	out.value = value
	return out
}

func assertType[U any](rv reflect.Value) (U, bool) {
	if !rv.CanInterface() {
		var zero U
		return zero, false
	}
	value, ok := rv.Interface().(U)
	return value, ok
}

func typeName[U any]() string {
	return reflect.TypeFor[U]().String()
}
