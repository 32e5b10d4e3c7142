package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
)

// Storages groups the local storages used by the backup service.
type Storages struct {
	// Journal is the SQLite-backed backup history.
	Journal BackupJournal
	// Snapshots reads and restores the application state file.
	Snapshots SnapshotProvider
	// Envelopes handles exported envelope files.
	Envelopes EnvelopeFileStorage

	db *DB
}

// NewStorages initialises the local storage layer. It performs the following
// steps:
//  1. Opens an SQLite connection to cfg.JournalDSN, creating the database
//     file and its directory if they do not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the journal, the snapshot file provider for cfg.SnapshotPath and
//     the envelope file storage.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Journal:   NewBackupJournal(db, logger),
		Snapshots: NewFileSnapshotProvider(cfg.SnapshotPath, logger),
		Envelopes: NewEnvelopeFileStorage(logger),
		db:        db,
	}, nil
}

// Close releases the journal database.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
