package config

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/terminal"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// Settings configure the validation engine and its ambient services.
type Settings struct {
	// CleanStackTrace removes engine frames from the stack traces of errors.
	CleanStackTrace bool `env:"REQUIREMENTS_CLEAN_STACK_TRACE" envDefault:"true" yaml:"clean_stack_trace"`
	// AllowDiff attaches diffs to equality failures.
	AllowDiff bool `env:"REQUIREMENTS_ALLOW_DIFF" envDefault:"true" yaml:"allow_diff"`
	// Equality is "structural" or "identity".
	Equality string `env:"REQUIREMENTS_EQUALITY" envDefault:"structural" yaml:"equality"`
	// LogLevel is a slog level name such as "debug" or "warn".
	LogLevel string `env:"REQUIREMENTS_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `env:"REQUIREMENTS_LOG_FORMAT" envDefault:"text" yaml:"log_format"`
	// TerminalEncoding forces a terminal encoding. Empty detects it.
	TerminalEncoding string `env:"REQUIREMENTS_TERMINAL_ENCODING" yaml:"terminal_encoding"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		CleanStackTrace: true,
		AllowDiff:       true,
		Equality:        "structural",
		LogLevel:        "info",
		LogFormat:       string(logger.FormatText),
	}
}

// LoadSettings parses Settings from the environment and validates them.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadYAML decodes Settings from r on top of Default and validates them.
// Unknown keys are rejected; an empty document yields the defaults.
func LoadYAML(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, errors.Join(ErrParsingYAML, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

var (
	equalityMethods = []string{"structural", "identity"}
	logFormats      = []string{string(logger.FormatText), string(logger.FormatJSON)}
)

// Validate reports every setting that cannot be applied. The error matches
// ErrInvalidSettings.
func (s Settings) Validate() error {
	check := validator.New().Check()

	validator.String(check, "equality", normalize(s.Equality)).IsOneOf(equalityMethods)
	validator.String(check, "logFormat", normalize(s.LogFormat)).IsOneOf(logFormats)
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		validator.String(check, "logLevel", s.LogLevel).IsOneOf(logLevels)
	}
	if s.TerminalEncoding != "" {
		validator.String(check, "terminalEncoding", normalize(s.TerminalEncoding)).IsOneOf(terminal.Encodings())
	}

	if err := check.Err(); err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}
	return nil
}

// logLevels names the levels offered when a level does not parse.
var logLevels = []string{"debug", "info", "warn", "error"}

// Configuration turns the settings into an engine configuration.
func (s Settings) Configuration() (*validator.Configuration, error) {
	equality, err := validator.ParseEqualityMethod(s.Equality)
	if err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}
	return validator.DefaultConfiguration().
		WithCleanStackTrace(s.CleanStackTrace).
		WithAllowDiff(s.AllowDiff).
		WithEqualityMethod(equality), nil
}

// LoggerOptions returns the logger options described by the settings.
func (s Settings) LoggerOptions() ([]logger.Option, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}
	opts := []logger.Option{logger.WithLevel(level), logger.WithTextFormatter()}
	if normalize(s.LogFormat) == string(logger.FormatJSON) {
		opts[1] = logger.WithJSONFormatter()
	}
	return opts, nil
}

// TerminalOptions returns the terminal options described by the settings.
func (s Settings) TerminalOptions() ([]terminal.Option, error) {
	if s.TerminalEncoding == "" {
		return nil, nil
	}
	encoding, err := terminal.ParseEncoding(s.TerminalEncoding)
	if err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}
	return []terminal.Option{terminal.WithEncoding(encoding)}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
