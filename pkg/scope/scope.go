package scope

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/requirements/pkg/config"
	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/terminal"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// claimed guards the process terminal handle: at most one application scope
// is open at a time.
var claimed atomic.Bool

// Application owns the services shared by every validation in a process: the
// settings, the logger, the terminal and the validators built from them.
type Application struct {
	settings   config.Settings
	logger     *slog.Logger
	terminal   *terminal.Terminal
	validators *validator.Validators

	mu      sync.Mutex
	closed  bool
	open    int
	drained chan struct{}
}

type options struct {
	settings  config.Settings
	logger    *slog.Logger
	logOutput io.Writer
	terminal  *terminal.Terminal
}

// Option configures an Application.
type Option func(*options)

// WithSettings replaces config.Default as the source of the scope's services.
func WithSettings(s config.Settings) Option {
	return func(o *options) { o.settings = s }
}

// WithLogger uses l instead of a logger built from the settings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLogOutput sets where the logger built from the settings writes.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.logOutput = w
		}
	}
}

// WithTerminal uses t instead of a terminal built from the settings.
func WithTerminal(t *terminal.Terminal) Option {
	return func(o *options) {
		if t != nil {
			o.terminal = t
		}
	}
}

// New claims the process terminal handle and builds the shared services.
// It fails with ErrAlreadyInitialized while another scope is open.
func New(opts ...Option) (*Application, error) {
	o := &options{settings: config.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.settings.Validate(); err != nil {
		return nil, err
	}

	if !claimed.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}
	app, err := build(o)
	if err != nil {
		claimed.Store(false)
		return nil, err
	}
	app.logger.Debug("application scope opened")
	return app, nil
}

func build(o *options) (*Application, error) {
	log := o.logger
	if log == nil {
		loggerOpts, err := o.settings.LoggerOptions()
		if err != nil {
			return nil, err
		}
		loggerOpts = append(loggerOpts,
			logger.WithOutput(o.logOutput),
			logger.WithAttr(logger.Component("requirements")),
		)
		log = logger.New(loggerOpts...)
	}

	term := o.terminal
	if term == nil {
		termOpts, err := o.settings.TerminalOptions()
		if err != nil {
			return nil, err
		}
		term = terminal.New(append(termOpts, terminal.WithLogger(log))...)
	}

	cfg, err := o.settings.Configuration()
	if err != nil {
		return nil, err
	}

	return &Application{
		settings: o.settings,
		logger:   log,
		terminal: term,
		validators: validator.New(
			validator.WithConfiguration(cfg),
			validator.WithLogger(log),
			validator.WithDiffStyler(term),
		),
		drained: make(chan struct{}),
	}, nil
}

func (a *Application) Settings() config.Settings {
	return a.settings
}

func (a *Application) Logger() *slog.Logger {
	return a.logger
}

func (a *Application) Terminal() *terminal.Terminal {
	return a.terminal
}

// Validators returns validators wired with the scope's configuration, logger
// and terminal.
func (a *Application) Validators() *validator.Validators {
	return a.validators
}

// NewChild registers a dependent scope. Close waits for every child to be
// closed. Fails with ErrClosed once Close has been called.
func (a *Application) NewChild() (*Child, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, ErrClosed
	}
	a.open++
	return &Child{parent: a, validators: a.validators}, nil
}

// Close refuses new children and waits for the open ones until ctx is done.
// It returns ErrChildrenOpen, joined with the context error, when children
// outlive ctx. The process terminal handle is released once the last child
// is closed, so a new scope cannot be opened while children of this one
// are still running.
func (a *Application) Close(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	a.closed = true
	if a.open == 0 {
		a.drain()
	}
	a.mu.Unlock()

	select {
	case <-a.drained:
		a.logger.Debug("application scope closed")
		return nil
	case <-ctx.Done():
		a.mu.Lock()
		open := a.open
		a.mu.Unlock()
		a.logger.Warn("application scope closed with open children", logger.Count(open))
		return errors.Join(ErrChildrenOpen, ctx.Err())
	}
}

func (a *Application) release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.open--
	if a.closed && a.open == 0 {
		a.drain()
	}
}

// drain releases the process terminal handle. It runs once, with mu held,
// after Close when no child is open.
func (a *Application) drain() {
	close(a.drained)
	claimed.Store(false)
}

// Child is a scope that depends on an Application, such as one request or
// one test.
type Child struct {
	parent     *Application
	validators *validator.Validators
	once       sync.Once
}

// Validators returns the validators of the parent scope.
func (c *Child) Validators() *validator.Validators {
	return c.validators
}

// WithContext returns validators whose failures carry name and value, for
// example a request ID.
func (c *Child) WithContext(name string, value any) *validator.Validators {
	return c.validators.WithContext(name, value)
}

// Close releases the child. Calling it again has no effect.
func (c *Child) Close() {
	c.once.Do(c.parent.release)
}
