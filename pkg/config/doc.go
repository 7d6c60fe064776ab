// Package config loads the settings of the validation engine.
//
// Settings come from environment variables, parsed with
// github.com/caarlos0/env/v11 after the default .env file is read once per
// process with github.com/joho/godotenv, or from a YAML document decoded with
// gopkg.in/yaml.v3:
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The generic Load caches each parsed configuration type, so services can
// share one copy. ResetCache clears it, which tests use after changing the
// environment.
//
// Variables:
//
//	REQUIREMENTS_CLEAN_STACK_TRACE  remove engine frames from stack traces (true)
//	REQUIREMENTS_ALLOW_DIFF         attach diffs to equality failures (true)
//	REQUIREMENTS_EQUALITY           structural or identity (structural)
//	REQUIREMENTS_LOG_LEVEL          slog level (info)
//	REQUIREMENTS_LOG_FORMAT         text or json (text)
//	REQUIREMENTS_TERMINAL_ENCODING  none, xterm-8, xterm-16, xterm-256 or rgb (detected)
//
// # Error Handling
//
// Errors match the sentinels ErrParsingConfig, ErrParsingYAML,
// ErrLoadingEnvFile, ErrInvalidSettings and ErrNilPointer through errors.Is.
// Validation errors also carry the engine's own failures, one per setting.
package config
