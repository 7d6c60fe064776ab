package validator

import "github.com/dmitrymomot/requirements/pkg/message"

// BoolValidator validates a boolean.
type BoolValidator struct {
	core[bool]
}

// Bool starts validating a boolean.
func Bool(s *Session, name string, value bool) *BoolValidator {
	return &BoolValidator{core: newCore(s, name, value)}
}

func (v *BoolValidator) IsTrue() *BoolValidator {
	v.satisfy(func(b bool) bool { return b }, message.IsTrue)
	return v
}

func (v *BoolValidator) IsFalse() *BoolValidator {
	v.satisfy(func(b bool) bool { return !b }, message.IsFalse)
	return v
}

func (v *BoolValidator) IsEqualTo(expected bool, name ...string) *BoolValidator {
	v.isEqualTo(expected, name)
	return v
}

func (v *BoolValidator) IsNotEqualTo(unwanted bool, name ...string) *BoolValidator {
	v.isNotEqualTo(unwanted, name)
	return v
}
