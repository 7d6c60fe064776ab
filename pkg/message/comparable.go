package message

import (
	"strings"

	"github.com/dmitrymomot/requirements/pkg/render"
)

// IsEqualTo reports that the value differs from expected.
//
//	"actual" must be equal to "expected".
//	actual  : 123
//	expected: 456
func IsEqualTo(s Subject, expectedName string, expected any) *Builder {
	return CompareValues(s, "must be equal to", expectedName, expected)
}

// IsNotEqualTo reports that the value equals an unwanted value.
func IsNotEqualTo(s Subject, unwantedName string, unwanted any) *Builder {
	return CompareValues(s, "may not be equal to", unwantedName, unwanted)
}

// IsLessThan reports that the value is not below an exclusive upper bound.
func IsLessThan(s Subject, limitName string, maximumExclusive any) *Builder {
	return CompareValues(s, "must be less than", limitName, maximumExclusive)
}

// IsLessThanOrEqualTo reports that the value exceeds an inclusive upper bound.
func IsLessThanOrEqualTo(s Subject, limitName string, maximumInclusive any) *Builder {
	return CompareValues(s, "must be less than or equal to", limitName, maximumInclusive)
}

// IsGreaterThan reports that the value is not above an exclusive lower bound.
func IsGreaterThan(s Subject, limitName string, minimumExclusive any) *Builder {
	return CompareValues(s, "must be greater than", limitName, minimumExclusive)
}

// IsGreaterThanOrEqualTo reports that the value is below an inclusive lower bound.
func IsGreaterThanOrEqualTo(s Subject, limitName string, minimumInclusive any) *Builder {
	return CompareValues(s, "must be greater than or equal to", limitName, minimumInclusive)
}

// CompareValues renders "<name> <relationship> <other>." following the
// naming rule.
func CompareValues(s Subject, relationship, otherName string, other any) *Builder {
	return operand(s, relationship, "", otherName, "", other)
}

// Bound is one end of a range.
type Bound struct {
	Value     any
	Inclusive bool
}

// Range is an interval between two bounds.
type Range struct {
	Min Bound
	Max Bound
}

// Render returns the interval notation of the range, e.g. "[4, 6)".
func (r Range) Render(mappers *render.Mappers) render.Unquoted {
	if mappers == nil {
		mappers = render.Default()
	}
	var b strings.Builder
	if r.Min.Inclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(mappers.String(r.Min.Value))
	b.WriteString(", ")
	b.WriteString(mappers.String(r.Max.Value))
	if r.Max.Inclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return render.Unquoted(b.String())
}

// IsBetween reports that the value falls outside r. The violated side is
// described by limit: the lower bound when tooLow is true, the upper bound
// otherwise.
//
//	"x" must be at most 5.
//	x     : 6
//	bounds: [4, 6)
func IsBetween(s Subject, r Range, tooLow bool, limit Bound) *Builder {
	var relationship string
	switch {
	case tooLow && limit.Inclusive:
		relationship = "must be at least"
	case tooLow:
		relationship = "must be greater than"
	case limit.Inclusive:
		relationship = "must be at most"
	default:
		relationship = "must be less than"
	}
	b := s.builder(QuoteName(s.Name) + " " + relationship + " " + s.mappers().String(limit.Value) + ".")
	s.withValue(b)
	b.WithContext("bounds", r.Render(s.mappers()))
	return b
}
