package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/config"
)

type serviceConfig struct {
	Name    string `env:"TEST_SERVICE_NAME" envDefault:"default_value"`
	Retries int    `env:"TEST_SERVICE_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		var cfg serviceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, serviceConfig{Name: "default_value", Retries: 3}, cfg)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SERVICE_NAME", "first")
		var first serviceConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_SERVICE_NAME", "second")
		var second serviceConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)

		config.ResetCache()
		var third serviceConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *serviceConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		config.ResetCache()
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("custom file", func(t *testing.T) {
		t.Setenv("REQUIREMENTS_EQUALITY", "")
		t.Setenv("REQUIREMENTS_LOG_FORMAT", "")
		os.Unsetenv("REQUIREMENTS_EQUALITY")
		os.Unsetenv("REQUIREMENTS_LOG_FORMAT")
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.custom"))
		settings, err := config.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, "identity", settings.Equality)
		assert.Equal(t, "json", settings.LogFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/non_existent_file.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
