package validator

import (
	"net/url"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// URIValidator validates a parsed URI.
type URIValidator struct {
	core[*url.URL]
}

// URI starts validating a parsed URI.
func URI(s *Session, name string, value *url.URL) *URIValidator {
	return &URIValidator{core: newCore(s, name, value)}
}

func (v *URIValidator) IsNull() *URIValidator {
	v.isNull()
	return v
}

// IsNotNull short-circuits the validator when the value is nil.
func (v *URIValidator) IsNotNull() *URIValidator {
	v.requireValue()
	return v
}

func (v *URIValidator) IsEqualTo(expected *url.URL, name ...string) *URIValidator {
	v.isEqualTo(expected, name)
	return v
}

func (v *URIValidator) IsNotEqualTo(unwanted *url.URL, name ...string) *URIValidator {
	v.isNotEqualTo(unwanted, name)
	return v
}

// IsAbsolute checks that the URI has a scheme.
func (v *URIValidator) IsAbsolute() *URIValidator {
	v.satisfy((*url.URL).IsAbs, message.IsAbsoluteURI)
	return v
}

func (v *URIValidator) IsRelative() *URIValidator {
	v.satisfy(func(u *url.URL) bool { return !u.IsAbs() }, message.IsRelativeURI)
	return v
}

// AsURI narrows the value to a parsed URI. A value that does not parse
// records a failure and short-circuits both validators.
func (v *StringValidator) AsURI() *URIValidator {
	out := &URIValidator{core: derive[string, *url.URL](&v.core, v.name, nil)}
	if !v.requireValue() {
		out.state = shortCircuited
		return out
	}
	u, err := url.Parse(v.value)
	if err != nil {
		v.shortCircuit(v.session.kind, message.IsURI(v.subject(), err))
		out.state = shortCircuited
		return out
	}
	out.value = u
	return out
}
