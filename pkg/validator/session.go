package validator

import (
	"slices"
	"strings"
	"unicode"

	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/message"
)

// Session is one validation episode. It owns the failure list shared by
// every validator created from it. A session is confined to the goroutine
// using it.
type Session struct {
	validators *Validators
	failFast   bool
	kind       ErrorKind
	failures   []Failure
}

// Configuration returns the configuration of the session.
func (s *Session) Configuration() *Configuration {
	return s.validators.config
}

// Failures returns a snapshot of the failures recorded so far.
func (s *Session) Failures() Failures {
	return Failures{
		list:   slices.Clone(s.failures),
		config: s.validators.config,
		logger: s.validators.logger,
	}
}

// Failed reports whether any failure was recorded.
func (s *Session) Failed() bool {
	return len(s.failures) > 0
}

// Err resolves the recorded failures into an error, or nil.
func (s *Session) Err() error {
	return s.Failures().resolve()
}

// ElseThrow panics with the resolved error, if any.
func (s *Session) ElseThrow() {
	if err := s.Failures().resolve(); err != nil {
		panic(err)
	}
}

// record appends a failure. Validator context lines follow the failure's
// own, configuration context lines come last; the first writer of a key wins.
func (s *Session) record(kind ErrorKind, name string, b *message.Builder) {
	for _, e := range s.validators.context {
		b.WithContextIfAbsent(e.name, e.value)
	}
	for _, e := range s.validators.config.context {
		b.WithContextIfAbsent(e.name, e.value)
	}
	s.failures = append(s.failures, Failure{
		Kind:    kind,
		Name:    name,
		Summary: b.Summary(),
		Context: b.Context(),
		Diff:    b.Diff(),
	})
	s.validators.logger.Debug("validation failure recorded", logger.Name(name), logger.Kind(kind))

	if s.failFast {
		panic(s.Failures().resolve())
	}
}

// requireName panics unless name is non-empty and free of whitespace.
func requireName(name, label string) {
	if name == "" {
		precondition("%s may not be empty", label)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		precondition("%s may not contain whitespace: %q", label, name)
	}
}

// checkName validates the name of a value about to be validated.
func (s *Session) checkName(name string) {
	requireName(name, "name")
	if hasContext(s.validators.context, name) || hasContext(s.validators.config.context, name) {
		precondition("name %q is already used as a context key", name)
	}
}

func requireSession(s *Session) {
	if s == nil {
		precondition("session may not be nil")
	}
}
