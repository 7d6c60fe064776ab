package validator

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

var (
	// ErrValidation is matched by every error produced from a recorded failure.
	ErrValidation = errors.New("validation failed")

	// ErrNullValue is matched by failures caused by a missing value.
	ErrNullValue = errors.New("value is null")

	// ErrIllegalArgument is matched by failures of argument checks.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrInvariantViolation is matched by failures of state checks.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrMultipleFailures is matched by the error resolved from two or more failures.
	ErrMultipleFailures = errors.New("multiple validation failures")

	// ErrNoValue is returned by value accessors of a short-circuited validator.
	ErrNoValue = errors.New("no value available: the validator was short-circuited")

	// ErrUnknownEqualityMethod is returned when an equality method name cannot be parsed.
	ErrUnknownEqualityMethod = errors.New("unknown equality method")

	// ErrPrecondition is wrapped by panics raised when the engine itself is misused.
	ErrPrecondition = errors.New("validator precondition violated")
)

// ErrorKind classifies a recorded failure.
type ErrorKind uint8

const (
	// KindNullValue marks a failure caused by a null value.
	KindNullValue ErrorKind = iota + 1
	// KindIllegalArgument marks a failed argument check.
	KindIllegalArgument
	// KindInvariantViolation marks a failed state check.
	KindInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNullValue:
		return "null value"
	case KindIllegalArgument:
		return "illegal argument"
	case KindInvariantViolation:
		return "invariant violation"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel returns the sentinel error matched by failures of this kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindNullValue:
		return ErrNullValue
	case KindInvariantViolation:
		return ErrInvariantViolation
	default:
		return ErrIllegalArgument
	}
}

// ErrorTransformer maps a failure to the error reported to the caller.
type ErrorTransformer func(Failure) error

// DefaultErrorTransformer returns a *ValidationError for f.
func DefaultErrorTransformer(f Failure) error {
	return &ValidationError{Failure: f}
}

// StackTracer is implemented by errors that carry the frames captured when
// they were resolved.
type StackTracer interface {
	StackTrace() []runtime.Frame
}

// ValidationError is the default error produced for a single failure.
type ValidationError struct {
	Failure Failure
	frames  []runtime.Frame
}

func (e *ValidationError) Error() string {
	return e.Failure.Message()
}

// Is matches ErrValidation and the sentinel of the failure's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == e.Failure.Kind.Sentinel()
}

// Kind returns the kind of the failure.
func (e *ValidationError) Kind() ErrorKind {
	return e.Failure.Kind
}

// StackTrace returns the frames captured at resolution.
func (e *ValidationError) StackTrace() []runtime.Frame {
	return e.frames
}

func (e *ValidationError) setStackTrace(frames []runtime.Frame) {
	e.frames = frames
}

// MultipleFailuresError is resolved from two or more failures. It carries
// the failures and their transformed errors in recording order.
type MultipleFailuresError struct {
	Failures []Failure
	errs     []error
	frames   []runtime.Frame
}

func (e *MultipleFailuresError) Error() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(e.errs)))
	b.WriteString(" validation failures")
	for i, err := range e.errs {
		b.WriteString("\n\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Is matches ErrValidation and ErrMultipleFailures.
func (e *MultipleFailuresError) Is(target error) bool {
	return target == ErrValidation || target == ErrMultipleFailures
}

// Unwrap returns the error of every failure.
func (e *MultipleFailuresError) Unwrap() []error {
	return e.errs
}

// StackTrace returns the frames captured at resolution.
func (e *MultipleFailuresError) StackTrace() []runtime.Frame {
	return e.frames
}

func (e *MultipleFailuresError) setStackTrace(frames []runtime.Frame) {
	e.frames = frames
}

type stackSetter interface {
	setStackTrace([]runtime.Frame)
}

// precondition panics with an error wrapping ErrPrecondition.
func precondition(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...))
}
