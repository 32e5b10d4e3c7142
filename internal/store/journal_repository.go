package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// DefaultJournalLimit is used by Latest when limit is not positive.
const DefaultJournalLimit = 20

type backupJournal struct {
	db     *DB
	logger *logger.Logger
}

// NewBackupJournal returns a [BackupJournal] writing to the backup_journal
// table of db. The schema must already be migrated.
func NewBackupJournal(db *DB, logger *logger.Logger) BackupJournal {
	return &backupJournal{
		db:     db,
		logger: logger,
	}
}

func (j *backupJournal) Record(ctx context.Context, entry models.JournalEntry) error {
	log := j.logger.WithRunID(ctx)

	query, args, err := buildInsertJournalEntryQuery(entry)
	if err != nil {
		log.Err(err).
			Str("func", "backupJournal.Record").
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "backupJournal.Record").
			Str("object_key", entry.ObjectKey).
			Str("outcome", entry.Outcome).
			Msg("failed to insert journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (j *backupJournal) Latest(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	log := j.logger.WithRunID(ctx)

	if limit <= 0 {
		limit = DefaultJournalLimit
	}

	query, args, err := buildSelectLatestJournalQuery(limit)
	if err != nil {
		log.Err(err).
			Str("func", "backupJournal.Latest").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "backupJournal.Latest").
			Msg("failed to query journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, limit)
	for rows.Next() {
		var (
			entry models.JournalEntry
			mode  string
		)
		if err = rows.Scan(
			&entry.ID,
			&entry.ObjectKey,
			&mode,
			&entry.Encrypted,
			&entry.Outcome,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "backupJournal.Latest").
				Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Mode = models.BackupMode(mode)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "backupJournal.Latest").
			Msg("error iterating journal rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
