// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local persistence used by the backup core: the
// SQLite backup journal, the application snapshot file and exported envelope
// files.
package store

import (
	"context"

	"github.com/MKhiriev/go-snapshot-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BackupJournal records the outcome of every manual backup and automatic run.
type BackupJournal interface {
	// Record appends entry to the journal. ID is assigned by the database.
	Record(ctx context.Context, entry models.JournalEntry) error
	// Latest returns at most limit entries, newest first.
	Latest(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

// SnapshotProvider produces and restores the serialized application state.
type SnapshotProvider interface {
	// GetSnapshot returns the current full application state as JSON.
	GetSnapshot(ctx context.Context) (models.Snapshot, error)
	// RestoreSnapshot replaces the application state with snapshot.
	RestoreSnapshot(ctx context.Context, snapshot models.Snapshot) error
}

// EnvelopeFileStorage saves and loads backup envelopes as local files.
type EnvelopeFileStorage interface {
	SaveEnvelope(ctx context.Context, path string, env models.BackupEnvelope) error
	LoadEnvelope(ctx context.Context, path string) (models.BackupEnvelope, error)
}
