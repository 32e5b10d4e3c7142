// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the backup orchestration: the automatic backup
// state machine with rolling retention, manual backup and restore, and the
// session secret hooks.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// BackupService is the backup core exposed to the rest of the application.
type BackupService interface {
	// TriggerAutomaticBackup runs one automatic backup through the full state
	// machine. It never panics and never returns an error; the terminal state
	// is reported in the result. A trigger arriving while a run is in flight
	// is coalesced into Skipped(already_running).
	TriggerAutomaticBackup(ctx context.Context) AutoBackupResult

	// BackupNow seals the current snapshot and uploads it under the manual
	// prefix, returning the object key. Errors propagate to the caller.
	BackupNow(ctx context.Context, opts ManualBackupOptions) (string, error)

	// ExportToFile seals the current snapshot into a local envelope file.
	ExportToFile(ctx context.Context, path string, opts ManualBackupOptions) error

	// RestoreFrom opens env and, once confirm agrees, hands the snapshot to
	// the snapshot provider. A declined confirmation returns
	// [ErrRestoreNotConfirmed] and leaves local state untouched.
	RestoreFrom(ctx context.Context, env models.BackupEnvelope, secret *string, confirm ConfirmFunc) error

	// RestoreFromKey downloads the envelope stored under key and restores it.
	RestoreFromKey(ctx context.Context, key string, secret *string, confirm ConfirmFunc) error

	// ImportFromFile restores from a local envelope file.
	ImportFromFile(ctx context.Context, path string, secret *string, confirm ConfirmFunc) error

	// ListBackups returns automatic and manual backups, newest first.
	ListBackups(ctx context.Context) ([]models.BackupObject, error)

	// History returns the latest journal entries, newest first.
	History(ctx context.Context, limit int) ([]models.JournalEntry, error)

	CacheSecretForSession(secret string) error
	ClearCachedSecret()
	HasCachedSecret() bool
}

// BackupJob triggers automatic backups periodically.
type BackupJob interface {
	// Start launches a background goroutine triggering a backup every
	// interval. A previously started job is stopped first.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}

// SecretCache holds the session PIN in memory. It is satisfied by
// *secretcache.Cache.
type SecretCache interface {
	Store(secret string) error
	Get() (string, bool)
	Has() bool
	Clear()
}

// IDGenerator produces run identifiers. It is satisfied by
// *utils.UUIDGenerator.
type IDGenerator interface {
	Generate() string
}

// ConfirmFunc asks the user to approve a destructive restore.
type ConfirmFunc func(ctx context.Context, preview RestorePreview) bool

// RestorePreview describes the backup about to replace local state.
type RestorePreview struct {
	// Source is the object key or file path the envelope came from.
	Source    string
	Encrypted bool
	Timestamp string
	// Size is the length in bytes of the restored snapshot JSON.
	Size int
}

// ManualBackupOptions tune a user-initiated backup.
type ManualBackupOptions struct {
	// EncryptIfConfigured encrypts the backup when the configuration
	// requires encryption. Setting it to false forces a plaintext backup.
	EncryptIfConfigured bool
	// Secret is the PIN for this operation. When nil or empty the session
	// cache is used.
	Secret *string
}
