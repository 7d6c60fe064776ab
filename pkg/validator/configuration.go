package validator

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/requirements/pkg/render"
)

type contextEntry struct {
	name  string
	value any
}

// Configuration is the immutable policy shared by a validation chain. Every
// mutator returns a new instance, or the receiver when nothing changed.
type Configuration struct {
	transformer     ErrorTransformer
	equality        EqualityMethod
	mappers         *render.Mappers
	cleanStackTrace bool
	allowDiff       bool
	context         []contextEntry
}

var defaultConfiguration = &Configuration{
	transformer:     DefaultErrorTransformer,
	equality:        Structural,
	mappers:         render.Default(),
	cleanStackTrace: true,
	allowDiff:       true,
}

// DefaultConfiguration returns the configuration used when none is supplied:
// structural equality, default string mappers, stack trace cleaning and
// diffs enabled.
func DefaultConfiguration() *Configuration {
	return defaultConfiguration
}

func (c *Configuration) clone() *Configuration {
	next := *c
	next.context = slices.Clone(c.context)
	return &next
}

// ErrorTransformer returns the function mapping failures to errors.
func (c *Configuration) ErrorTransformer() ErrorTransformer {
	return c.transformer
}

// WithErrorTransformer returns a configuration that maps failures with fn.
// Closures cannot be told apart reliably, so a new instance is always
// returned. Panics if fn is nil.
func (c *Configuration) WithErrorTransformer(fn ErrorTransformer) *Configuration {
	if fn == nil {
		precondition("error transformer may not be nil")
	}
	next := c.clone()
	next.transformer = fn
	return next
}

func (c *Configuration) transform(f Failure) error {
	if err := c.transformer(f); err != nil {
		return err
	}
	return DefaultErrorTransformer(f)
}

// EqualityMethod returns the method used by equality checks.
func (c *Configuration) EqualityMethod() EqualityMethod {
	return c.equality
}

// WithEqualityMethod returns a configuration comparing values with m.
func (c *Configuration) WithEqualityMethod(m EqualityMethod) *Configuration {
	if c.equality.same(m) {
		return c
	}
	next := c.clone()
	next.equality = m
	return next
}

// StringMappers returns the registry rendering values in messages.
func (c *Configuration) StringMappers() *render.Mappers {
	return c.mappers
}

// WithStringMappers returns a configuration rendering values with m.
// Panics if m is nil.
func (c *Configuration) WithStringMappers(m *render.Mappers) *Configuration {
	if m == nil {
		precondition("string mappers may not be nil")
	}
	if c.mappers.Equal(m) {
		return c
	}
	next := c.clone()
	next.mappers = m
	return next
}

// CleanStackTrace reports whether frames of the engine are removed from
// resolved errors.
func (c *Configuration) CleanStackTrace() bool {
	return c.cleanStackTrace
}

func (c *Configuration) WithCleanStackTrace(clean bool) *Configuration {
	if c.cleanStackTrace == clean {
		return c
	}
	next := c.clone()
	next.cleanStackTrace = clean
	return next
}

// AllowDiff reports whether equality failures carry a diff.
func (c *Configuration) AllowDiff() bool {
	return c.allowDiff
}

func (c *Configuration) WithAllowDiff(allow bool) *Configuration {
	if c.allowDiff == allow {
		return c
	}
	next := c.clone()
	next.allowDiff = allow
	return next
}

// WithContext returns a configuration that adds name: value to the context
// of every failure. A previous value for name is replaced.
// Panics if name is not a valid name.
func (c *Configuration) WithContext(name string, value any) *Configuration {
	requireName(name, "name")
	context, changed := withContext(c.context, name, value)
	if !changed {
		return c
	}
	next := c.clone()
	next.context = context
	return next
}

// WithoutContext returns a configuration without the context entry name.
func (c *Configuration) WithoutContext(name string) *Configuration {
	context, changed := withoutContext(c.context, name)
	if !changed {
		return c
	}
	next := c.clone()
	next.context = context
	return next
}

// Context returns the context values keyed by name.
func (c *Configuration) Context() map[string]any {
	return contextMap(c.context)
}

// Equal reports whether both configurations hold the same settings.
// Functions are compared by identity.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return funcID(c.transformer) == funcID(other.transformer) &&
		c.equality.same(other.equality) &&
		c.mappers.Equal(other.mappers) &&
		c.cleanStackTrace == other.cleanStackTrace &&
		c.allowDiff == other.allowDiff &&
		contextEqual(c.context, other.context)
}

func funcID(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}
	return v.Pointer()
}

func withContext(context []contextEntry, name string, value any) ([]contextEntry, bool) {
	for i, e := range context {
		if e.name != name {
			continue
		}
		if Structural.Equal(e.value, value) {
			return context, false
		}
		next := slices.Clone(context)
		next[i].value = value
		return next, true
	}
	return append(slices.Clone(context), contextEntry{name: name, value: value}), true
}

func withoutContext(context []contextEntry, name string) ([]contextEntry, bool) {
	i := slices.IndexFunc(context, func(e contextEntry) bool { return e.name == name })
	if i < 0 {
		return context, false
	}
	return slices.Delete(slices.Clone(context), i, i+1), true
}

func contextMap(context []contextEntry) map[string]any {
	m := make(map[string]any, len(context))
	for _, e := range context {
		m[e.name] = e.value
	}
	return m
}

func contextEqual(a, b []contextEntry) bool {
	return slices.EqualFunc(a, b, func(x, y contextEntry) bool {
		return x.name == y.name && Structural.Equal(x.value, y.value)
	})
}

func hasContext(context []contextEntry, name string) bool {
	return slices.ContainsFunc(context, func(e contextEntry) bool { return e.name == name })
}
