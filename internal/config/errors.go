package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [ClientAdapter.Validate].
var (
	// ErrInvalidBackupConfigs indicates an invalid backup policy
	// (for example, a non-positive retention count or an empty prefix).
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrInvalidAdapterConfigs indicates invalid object store settings
	// (for example, an unknown store kind or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrStoreNotConfigured indicates the selected object store lacks its
	// address, container or bucket.
	ErrStoreNotConfigured = errors.New("object store not configured")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty journal DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
