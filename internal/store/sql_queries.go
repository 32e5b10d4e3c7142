package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snapshot-keeper/models"
)

const journalTable = "backup_journal"

var journalColumns = []string{
	"id",
	"object_key",
	"mode",
	"encrypted",
	"outcome",
	"detail",
	"created_at",
}

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertJournalEntryQuery(entry models.JournalEntry) (string, []any, error) {
	return psql.
		Insert(journalTable).
		Columns("object_key", "mode", "encrypted", "outcome", "detail", "created_at").
		Values(entry.ObjectKey, string(entry.Mode), entry.Encrypted, entry.Outcome, entry.Detail, entry.CreatedAt.UTC()).
		ToSql()
}

func buildSelectLatestJournalQuery(limit int) (string, []any, error) {
	return psql.
		Select(journalColumns...).
		From(journalTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
