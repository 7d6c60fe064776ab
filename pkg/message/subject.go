package message

import "github.com/dmitrymomot/requirements/pkg/render"

// Subject describes the value a failure message is about.
type Subject struct {
	// Name is the name of the value.
	Name string
	// Value is the value being validated.
	Value any
	// Defined is false when the value is null or unavailable, in which case it
	// is left out of the context.
	Defined bool
	// Mappers renders values. Nil selects render.Default().
	Mappers *render.Mappers
}

func (s Subject) mappers() *render.Mappers {
	if s.Mappers == nil {
		return render.Default()
	}
	return s.Mappers
}

func (s Subject) builder(summary string) *Builder {
	return NewBuilder(s.mappers(), summary)
}

// withValue adds the subject's value to the context when it is defined.
func (s Subject) withValue(b *Builder) *Builder {
	if s.Defined {
		b.WithContext(s.Name, s.Value)
	}
	return b
}

// nameOrValue refers to an operand by name when it has one, otherwise by its
// rendered value.
func (s Subject) nameOrValue(namePrefix, name, valuePrefix string, value any) string {
	if name == "" {
		return valuePrefix + s.mappers().String(value)
	}
	return namePrefix + QuoteName(name)
}

// simple renders "<name> <predicate>." with the value as context.
func simple(s Subject, predicate string) *Builder {
	return s.withValue(s.builder(QuoteName(s.Name) + " " + predicate + "."))
}

// operand renders "<name> <relationship> <other>." following the naming rule.
func operand(s Subject, relationship, namePrefix, otherName, valuePrefix string, other any) *Builder {
	b := s.builder(QuoteName(s.Name) + " " + relationship + " " +
		s.nameOrValue(namePrefix, otherName, valuePrefix, other) + ".")
	s.withValue(b)
	if otherName != "" {
		b.WithContext(otherName, other)
	}
	return b
}
