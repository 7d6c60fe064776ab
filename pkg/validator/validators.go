package validator

import (
	"log/slog"

	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/message"
)

// Validators creates validation sessions sharing one configuration.
// A Validators value is immutable and safe for concurrent use; the sessions
// it creates are not.
type Validators struct {
	config  *Configuration
	context []contextEntry
	logger  *slog.Logger
	styler  message.Styler
}

// Option configures Validators.
type Option func(*Validators)

// WithConfiguration sets the configuration. Panics if c is nil.
func WithConfiguration(c *Configuration) Option {
	if c == nil {
		precondition("configuration may not be nil")
	}
	return func(v *Validators) { v.config = c }
}

// WithLogger sets the logger receiving debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validators) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithDiffStyler sets the styler applied to diffs. Nil is ignored.
func WithDiffStyler(s message.Styler) Option {
	return func(v *Validators) {
		if s != nil {
			v.styler = s
		}
	}
}

// New returns validators using the default configuration unless an option
// says otherwise.
func New(opts ...Option) *Validators {
	v := &Validators{
		config: DefaultConfiguration(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Configuration returns the configuration shared by every session.
func (v *Validators) Configuration() *Configuration {
	return v.config
}

// WithConfiguration returns validators using c. Panics if c is nil.
func (v *Validators) WithConfiguration(c *Configuration) *Validators {
	if c == nil {
		precondition("configuration may not be nil")
	}
	if c == v.config {
		return v
	}
	next := *v
	next.config = c
	return &next
}

// WithContext returns validators that add name: value to the context of
// every failure, after the failure's own context lines.
func (v *Validators) WithContext(name string, value any) *Validators {
	requireName(name, "name")
	context, changed := withContext(v.context, name, value)
	if !changed {
		return v
	}
	next := *v
	next.context = context
	return &next
}

// WithoutContext returns validators without the context entry name.
func (v *Validators) WithoutContext(name string) *Validators {
	context, changed := withoutContext(v.context, name)
	if !changed {
		return v
	}
	next := *v
	next.context = context
	return &next
}

// Context returns the context values keyed by name.
func (v *Validators) Context() map[string]any {
	return contextMap(v.context)
}

// Require starts a fail-fast session: the first failure panics with the
// resolved error.
func (v *Validators) Require() *Session {
	return &Session{validators: v, failFast: true, kind: KindIllegalArgument}
}

// Check starts a session collecting every failure of argument checks.
func (v *Validators) Check() *Session {
	return &Session{validators: v, kind: KindIllegalArgument}
}

// CheckState starts a session collecting every failure of state checks.
func (v *Validators) CheckState() *Session {
	return &Session{validators: v, kind: KindInvariantViolation}
}
