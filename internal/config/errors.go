package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidBridgeConfigs indicates invalid bridge settings
	// (for example, an unknown payload format).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown log level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
