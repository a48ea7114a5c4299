package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidAdapterConfigs indicates an unusable notes URL or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
