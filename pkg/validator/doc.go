// Package validator checks method arguments and state, and reports every
// violation with a diagnostic message.
//
// A Validators value carries the immutable Configuration: how failures map
// to errors, how equality is decided, how values are rendered, whether stack
// traces are cleaned and which context lines every failure carries. It
// starts sessions in one of two modes:
//
//   - Require: fail-fast. The first failure panics with the resolved error.
//   - Check and CheckState: multi-failure. Every failure is collected and
//     resolved at the end with Session.Err or Session.ElseThrow.
//
// # Architecture
//
// Each named value is bound to a typed validator created by an entry point
// (That, Ordered, Compared, Time, BigInt, Number, String, Bool, Slice, Map,
// Path, URI).
// A validator is either active or short-circuited. It short-circuits when a
// constraint needs a non-null value and finds null, or when a narrowing
// (AsString, AsNumber, AsSlice, AsMap, Deref, AsUUID, AsURI) fails. Exactly one
// failure describes the root cause; afterwards every constraint is a no-op
// and Value returns ErrNoValue.
//
// Constraint operands are checked by the engine itself: a nil operand is
// recorded as a null-value failure under the operand's name. Misuse of the
// engine (an empty name, a nil configuration, a range whose minimum exceeds
// its maximum) panics with an error wrapping ErrPrecondition.
//
// Failures resolves the recorded list: nothing, the transformed error of a
// single failure, or a *MultipleFailuresError carrying all of them in order.
//
// # Usage
//
//	validators := validator.New()
//
//	s := validators.Check()
//	validator.Number(s, "age", age).IsBetween(18, true, 130, false)
//	validator.String(s, "email", email).IsNotBlank().DoesNotContainWhitespace()
//	if err := s.Err(); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors produced from failures match ErrValidation and the sentinel of
// their kind (ErrNullValue, ErrIllegalArgument, ErrInvariantViolation):
//
//	if errors.Is(err, validator.ErrNullValue) { ... }
//
// A custom ErrorTransformer may return any error; it is applied once, when
// the failures are resolved.
package validator
