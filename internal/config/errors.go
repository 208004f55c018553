package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGoogleConfigs indicates invalid Google backend settings
	// (for example, a zero request timeout).
	ErrInvalidGoogleConfigs = errors.New("invalid google configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
