package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid backend endpoint settings
	// (for example, a missing base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid session store settings
	// (for example, an unknown driver or a driver without a path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
