package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrParsingYAML is returned when a YAML document cannot be decoded into Settings
	ErrParsingYAML = errors.New("failed to parse YAML settings")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidSettings is returned when Settings hold a value that cannot be applied
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
