package message

import (
	"fmt"

	"github.com/dmitrymomot/requirements/pkg/render"
)

// IsNull reports that the value is not null.
func IsNull(s Subject) *Builder {
	return simple(s, "must be null")
}

// IsNotNull reports that the value is null.
func IsNotNull(s Subject) *Builder {
	return s.builder(QuoteName(s.Name) + " may not be null.")
}

// IsSameReferenceAs reports that the value is not the same reference as expected.
func IsSameReferenceAs(s Subject, expectedName string, expected any) *Builder {
	return operand(s, "must be the same reference as", "", expectedName, "", expected)
}

// IsNotSameReferenceAs reports that the value is the same reference as unwanted.
func IsNotSameReferenceAs(s Subject, unwantedName string, unwanted any) *Builder {
	return operand(s, "may not be the same reference as", "", unwantedName, "", unwanted)
}

// IsOneOf reports that the value is not a member of a set.
func IsOneOf(s Subject, setName string, set any) *Builder {
	return operand(s, "must be one of", "", setName, "", set)
}

// IsNotOneOf reports that the value is a member of an unwanted set.
func IsNotOneOf(s Subject, setName string, set any) *Builder {
	return operand(s, "may not be one of", "", setName, "", set)
}

// IsInstanceOf reports that the value cannot be narrowed to the expected type.
//
//	"x" must be of type int.
//	x     : "five"
//	x.type: string
func IsInstanceOf(s Subject, expectedType string) *Builder {
	b := simple(s, "must be of type "+expectedType)
	if s.Defined {
		b.WithContext(s.Name+".type", render.Unquoted(fmt.Sprintf("%T", s.Value)))
	}
	return b
}
