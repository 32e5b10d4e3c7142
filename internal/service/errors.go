package service

import "errors"

var (
	// ErrRestoreNotConfirmed is returned when the user declines a restore.
	ErrRestoreNotConfirmed = errors.New("restore was not confirmed")

	// ErrStoreNotConfigured is returned by manual operations that need the
	// remote store when none is configured.
	ErrStoreNotConfigured = errors.New("remote backup store is not configured")

	// ErrPanicRecovered wraps a panic caught by [BestEffort].
	ErrPanicRecovered = errors.New("panic recovered")
)
