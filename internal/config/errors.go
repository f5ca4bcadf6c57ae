package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an incomplete
	// object storage section.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listener or rate limit
	// settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
