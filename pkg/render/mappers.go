package render

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Mapper returns the string representation of value. The registry is passed
// along so that container values can render their elements consistently.
type Mapper func(value any, mappers *Mappers) string

// Unquoted is rendered verbatim, without the quotes applied to strings.
type Unquoted string

type entry struct {
	fn Mapper
	id uintptr
}

// Mappers is an immutable per-type rendering registry.
type Mappers struct {
	byType map[reflect.Type]entry
}

var defaultMappers = &Mappers{byType: map[reflect.Type]entry{}}

// Default returns the registry holding only the built-in rendering rules.
func Default() *Mappers {
	return defaultMappers
}

// With returns a registry that renders values of type t using fn.
// Panics if t or fn is nil: a registry is configured once at startup and a
// missing mapper is a programming error.
func (m *Mappers) With(t reflect.Type, fn Mapper) *Mappers {
	if t == nil {
		panic(ErrNilType)
	}
	if fn == nil {
		panic(ErrNilMapper)
	}
	return m.with(t, entry{fn: fn, id: reflect.ValueOf(fn).Pointer()})
}

func (m *Mappers) with(t reflect.Type, e entry) *Mappers {
	if existing, ok := m.byType[t]; ok && existing.id == e.id {
		return m
	}
	next := maps.Clone(m.byType)
	if next == nil {
		next = make(map[reflect.Type]entry, 1)
	}
	next[t] = e
	return &Mappers{byType: next}
}

// Register returns a registry that renders values of type T using fn.
func Register[T any](m *Mappers, fn func(T) string) *Mappers {
	if fn == nil {
		panic(ErrNilMapper)
	}
	wrapped := func(value any, _ *Mappers) string {
		return fn(value.(T))
	}
	return m.with(reflect.TypeFor[T](), entry{fn: wrapped, id: reflect.ValueOf(fn).Pointer()})
}

// Without returns a registry that no longer holds a mapper for t.
func (m *Mappers) Without(t reflect.Type) *Mappers {
	if _, ok := m.byType[t]; !ok {
		return m
	}
	next := maps.Clone(m.byType)
	delete(next, t)
	return &Mappers{byType: next}
}

// Has reports whether a custom mapper is registered for t.
func (m *Mappers) Has(t reflect.Type) bool {
	_, ok := m.byType[t]
	return ok
}

// Equal reports whether both registries hold the same mappers.
// Mappers are compared by function identity.
func (m *Mappers) Equal(other *Mappers) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || len(m.byType) != len(other.byType) {
		return false
	}
	for t, e := range m.byType {
		o, ok := other.byType[t]
		if !ok || o.id != e.id {
			return false
		}
	}
	return true
}

// String returns the string representation of value. A map, slice or
// pointer that contains itself renders the repeated reference as "<cycle>".
func (m *Mappers) String(value any) string {
	return m.render(value, nil)
}

// render tracks the containers on the current path in seen.
func (m *Mappers) render(value any, seen map[uintptr]struct{}) string {
	if value == nil {
		return "null"
	}
	if m != nil {
		if e, ok := m.byType[reflect.TypeOf(value)]; ok {
			return e.fn(value, m)
		}
	}
	return m.fallback(value, seen)
}

func (m *Mappers) fallback(value any, seen map[uintptr]struct{}) string {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "null"
		}
	}

	switch v := value.(type) {
	case Unquoted:
		return string(v)
	case string:
		return strconv.Quote(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.Kind() != reflect.Pointer && rv.Len() == 0 {
			break
		}
		ptr := rv.Pointer()
		if _, ok := seen[ptr]; ok {
			return "<cycle>"
		}
		if seen == nil {
			seen = make(map[uintptr]struct{})
		}
		seen[ptr] = struct{}{}
		defer delete(seen, ptr)
	}

	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Pointer:
		return m.render(rv.Elem().Interface(), seen)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = m.render(rv.Index(i).Interface(), seen)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		return m.renderMap(rv, seen)
	case reflect.Struct:
		return fmt.Sprintf("%+v", value)
	default:
		return fmt.Sprint(value)
	}
}

// renderMap sorts entries by their rendered key so the output is stable.
func (m *Mappers) renderMap(rv reflect.Value, seen map[uintptr]struct{}) string {
	type pair struct{ key, value string }
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			key:   m.render(iter.Key().Interface(), seen),
			value: m.render(iter.Value().Interface(), seen),
		})
	}
	slices.SortFunc(pairs, func(a, b pair) int { return strings.Compare(a.key, b.key) })

	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.key)
		b.WriteString(": ")
		b.WriteString(p.value)
	}
	b.WriteByte('}')
	return b.String()
}
