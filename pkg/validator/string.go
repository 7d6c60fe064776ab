package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// StringValidator validates a string. Lengths count characters (runes), not
// bytes.
type StringValidator struct {
	core[string]
}

// String starts validating a string.
func String(s *Session, name string, value string) *StringValidator {
	return &StringValidator{core: newCore(s, name, value)}
}

func (v *StringValidator) IsEqualTo(expected string, name ...string) *StringValidator {
	v.isEqualTo(expected, name)
	return v
}

func (v *StringValidator) IsNotEqualTo(unwanted string, name ...string) *StringValidator {
	v.isNotEqualTo(unwanted, name)
	return v
}

func (v *StringValidator) IsOneOf(set []string, name ...string) *StringValidator {
	v.isOneOf(set, name)
	return v
}

func (v *StringValidator) IsNotOneOf(set []string, name ...string) *StringValidator {
	v.isNotOneOf(set, name)
	return v
}

func (v *StringValidator) IsEmpty() *StringValidator {
	v.satisfy(func(s string) bool { return s == "" }, message.IsEmpty)
	return v
}

func (v *StringValidator) IsNotEmpty() *StringValidator {
	v.satisfy(func(s string) bool { return s != "" }, message.IsNotEmpty)
	return v
}

// IsBlank checks that the value is empty or holds only whitespace.
func (v *StringValidator) IsBlank() *StringValidator {
	v.satisfy(isBlank, message.IsBlank)
	return v
}

func (v *StringValidator) IsNotBlank() *StringValidator {
	v.satisfy(func(s string) bool { return !isBlank(s) }, message.IsNotBlank)
	return v
}

func (v *StringValidator) IsTrimmed() *StringValidator {
	v.satisfy(func(s string) bool { return strings.TrimSpace(s) == s }, message.IsTrimmed)
	return v
}

func (v *StringValidator) DoesNotContainWhitespace() *StringValidator {
	v.satisfy(func(s string) bool { return !strings.ContainsFunc(s, unicode.IsSpace) }, message.DoesNotContainWhitespace)
	return v
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type textRelation struct {
	holds   func(s, operand string) bool
	want    bool
	failure func(s message.Subject, name, operand string) *message.Builder
}

func (v *StringValidator) relate(operand string, names []string, rel textRelation) *StringValidator {
	name := v.operandName(names)
	if !v.requireValue() || rel.holds(v.value, operand) == rel.want {
		return v
	}
	v.fail(rel.failure(v.subject(), name, operand))
	return v
}

func (v *StringValidator) StartsWith(prefix string, name ...string) *StringValidator {
	return v.relate(prefix, name, textRelation{strings.HasPrefix, true, message.StartsWith})
}

func (v *StringValidator) DoesNotStartWith(prefix string, name ...string) *StringValidator {
	return v.relate(prefix, name, textRelation{strings.HasPrefix, false, message.DoesNotStartWith})
}

func (v *StringValidator) EndsWith(suffix string, name ...string) *StringValidator {
	return v.relate(suffix, name, textRelation{strings.HasSuffix, true, message.EndsWith})
}

func (v *StringValidator) DoesNotEndWith(suffix string, name ...string) *StringValidator {
	return v.relate(suffix, name, textRelation{strings.HasSuffix, false, message.DoesNotEndWith})
}

func (v *StringValidator) Contains(expected string, name ...string) *StringValidator {
	return v.relate(expected, name, textRelation{strings.Contains, true, message.ContainsText})
}

func (v *StringValidator) DoesNotContain(unwanted string, name ...string) *StringValidator {
	return v.relate(unwanted, name, textRelation{strings.Contains, false, message.DoesNotContainText})
}

// Matches checks that the whole value matches pattern. A nil pattern is
// recorded as a null-value failure of the pattern.
func (v *StringValidator) Matches(pattern *regexp.Regexp, name ...string) *StringValidator {
	operand := v.operandName(name)
	if !v.requireValue() || !v.operandPresent(operand, "pattern", pattern) {
		return v
	}
	if matchesWhole(pattern, v.value) {
		return v
	}
	v.fail(message.Matches(v.subject(), operand, pattern.String()))
	return v
}

func matchesWhole(pattern *regexp.Regexp, s string) bool {
	whole, err := regexp.Compile(`\A(?:` + pattern.String() + `)\z`)
	if err != nil {
		return false
	}
	return whole.MatchString(s)
}

// IsUUID checks that the value parses as a UUID.
func (v *StringValidator) IsUUID() *StringValidator {
	if !v.requireValue() {
		return v
	}
	if _, err := uuid.Parse(v.value); err != nil {
		v.fail(message.IsUUID(v.subject(), err))
	}
	return v
}

// AsUUID narrows the value to a UUID. A value that does not parse records a
// failure and short-circuits both validators.
func (v *StringValidator) AsUUID() *ObjectValidator[uuid.UUID] {
	out := &ObjectValidator[uuid.UUID]{core: derive(&v.core, v.name, uuid.Nil)}
	if !v.requireValue() {
		out.state = shortCircuited
		return out
	}
	id, err := uuid.Parse(v.value)
	if err != nil {
		v.shortCircuit(v.session.kind, message.IsUUID(v.subject(), err))
		out.state = shortCircuited
		return out
	}
	out.value = id
	return out
}

// Length returns a validator for the number of characters, named
// "len(name)".
func (v *StringValidator) Length() *NumberValidator[int] {
	return &NumberValidator[int]{core: derive(&v.core, message.SizeName(v.name), v.length())}
}

func (v *StringValidator) length() int {
	return utf8.RuneCountInString(v.value)
}

func (v *StringValidator) HasLength(expected int, name ...string) *StringValidator {
	v.hasSize(v.length(), expected, name, message.Characters)
	return v
}

// LengthIsBetween checks the number of characters against a range.
// Panics if minimum is negative or greater than maximum.
func (v *StringValidator) LengthIsBetween(minimum int, minimumInclusive bool, maximum int, maximumInclusive bool,
) *StringValidator {
	v.sizeIsBetween(v.length(), minimum, minimumInclusive, maximum, maximumInclusive, message.Characters)
	return v
}
