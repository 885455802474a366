package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a server URL without scheme or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid download storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid stub server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStubConfigs indicates a forced failure status outside 400-599.
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
)
