package validator

import (
	"log/slog"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/message"
)

// Failure is an immutable record of one violated constraint.
type Failure struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Name is the name of the value that failed.
	Name string
	// Summary is the sentence describing the failure.
	Summary string
	// Context holds the rendered context lines in order.
	Context []message.Entry
	// Diff is an optional diff between the actual and expected values.
	Diff string
}

// Message returns the full failure message.
func (f Failure) Message() string {
	return message.Format(f.Summary, f.Context, f.Diff)
}

// ContextValue returns the rendered value of a context line.
func (f Failure) ContextValue(key string) (string, bool) {
	for _, e := range f.Context {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Failures is the ordered list of failures recorded by one session. It owns
// the decision of which error, if any, they resolve to.
type Failures struct {
	list   []Failure
	config *Configuration
	logger *slog.Logger
}

// All returns a copy of the failures in recording order.
func (f Failures) All() []Failure {
	return slices.Clone(f.list)
}

// Len returns the number of failures.
func (f Failures) Len() int {
	return len(f.list)
}

// Messages returns the message of every failure.
func (f Failures) Messages() []string {
	messages := make([]string, len(f.list))
	for i, failure := range f.list {
		messages[i] = failure.Message()
	}
	return messages
}

// Err resolves the failures. It returns nil when there are none, the
// transformed error of the failure when there is exactly one, and a
// *MultipleFailuresError otherwise.
func (f Failures) Err() error {
	return f.resolve()
}

// ElseThrow panics with the resolved error, if any.
func (f Failures) ElseThrow() {
	if err := f.resolve(); err != nil {
		panic(err)
	}
}

func (f Failures) resolve() error {
	if len(f.list) == 0 {
		return nil
	}
	config := f.config
	if config == nil {
		config = DefaultConfiguration()
	}
	frames := captureStack(config.cleanStackTrace)

	var err error
	if len(f.list) == 1 {
		err = config.transform(f.list[0])
		setStackTrace(err, frames)
	} else {
		errs := make([]error, len(f.list))
		for i, failure := range f.list {
			errs[i] = config.transform(failure)
			setStackTrace(errs[i], frames)
		}
		err = &MultipleFailuresError{Failures: slices.Clone(f.list), errs: errs, frames: frames}
	}

	if f.logger != nil {
		f.logger.Debug("validation failures resolved", logger.Count(len(f.list)), logger.Error(err))
	}
	return err
}

func setStackTrace(err error, frames []runtime.Frame) {
	if s, ok := err.(stackSetter); ok {
		s.setStackTrace(frames)
	}
}

// enginePrefix is the prefix of every function declared in this package.
var enginePrefix = reflect.TypeFor[Failure]().PkgPath() + "."

const maxStackDepth = 64

// captureStack returns the frames of its caller's stack. Frames of this
// package are dropped when clean is set.
func captureStack(clean bool) []runtime.Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []runtime.Frame
	for {
		frame, more := frames.Next()
		if !clean || !isEngineFrame(frame) {
			out = append(out, frame)
		}
		if !more {
			break
		}
	}
	return out
}

func isEngineFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, enginePrefix)
}
