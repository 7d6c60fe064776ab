package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/config"
	"github.com/dmitrymomot/requirements/pkg/terminal"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("REQUIREMENTS_CLEAN_STACK_TRACE", "false")
	t.Setenv("REQUIREMENTS_LOG_LEVEL", "debug")
	t.Setenv("REQUIREMENTS_TERMINAL_ENCODING", "xterm-256")
	config.ResetCache()

	settings, err := config.LoadSettings()
	require.NoError(t, err)
	assert.False(t, settings.CleanStackTrace)
	assert.True(t, settings.AllowDiff)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "xterm-256", settings.TerminalEncoding)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("REQUIREMENTS_EQUALITY", "fuzzy")
	config.ResetCache()

	_, err := config.LoadSettings()
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
	assert.ErrorIs(t, err, validator.ErrIllegalArgument)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults", func(t *testing.T) {
		t.Parallel()
		settings, err := config.LoadYAML(strings.NewReader("allow_diff: false\nequality: identity\n"))
		require.NoError(t, err)

		want := config.Default()
		want.AllowDiff = false
		want.Equality = "identity"
		assert.Equal(t, want, settings)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		settings, err := config.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), settings)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := config.LoadYAML(strings.NewReader("colour: red\n"))
		assert.ErrorIs(t, err, config.ErrParsingYAML)
	})
}

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, config.Default().Validate())
	})

	t.Run("reports every invalid setting", func(t *testing.T) {
		t.Parallel()
		s := config.Default()
		s.Equality = "fuzzy"
		s.LogFormat = "xml"
		s.LogLevel = "loud"
		s.TerminalEncoding = "sepia"

		err := s.Validate()
		require.ErrorIs(t, err, config.ErrInvalidSettings)

		var multi *validator.MultipleFailuresError
		require.True(t, errors.As(err, &multi))
		names := make([]string, 0, len(multi.Failures))
		for _, f := range multi.Failures {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"equality", "logFormat", "logLevel", "terminalEncoding"}, names)
	})

	t.Run("level offsets are accepted", func(t *testing.T) {
		t.Parallel()
		s := config.Default()
		s.LogLevel = "WARN+2"
		assert.NoError(t, s.Validate())
	})
}

func TestSettings_Conversions(t *testing.T) {
	t.Parallel()

	s := config.Default()
	s.Equality = "identity"
	s.AllowDiff = false
	s.TerminalEncoding = "rgb"

	cfg, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, "identity", cfg.EqualityMethod().String())
	assert.False(t, cfg.AllowDiff())

	loggerOpts, err := s.LoggerOptions()
	require.NoError(t, err)
	assert.Len(t, loggerOpts, 2)

	termOpts, err := s.TerminalOptions()
	require.NoError(t, err)
	assert.Equal(t, terminal.RGB, terminal.New(termOpts...).Encoding())

	s.TerminalEncoding = ""
	termOpts, err = s.TerminalOptions()
	require.NoError(t, err)
	assert.Empty(t, termOpts)
}
