package config

import "errors"

var (
	// ErrMissingEnv indicates one or more required environment variables are
	// unset or empty.
	ErrMissingEnv = errors.New("missing required environment variable")

	// ErrInvalidLogLevel indicates a log level outside debug, info, warn, error.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
)
