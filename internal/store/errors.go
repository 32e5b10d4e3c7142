package store

import "errors"

// Sentinel errors returned by the file-backed storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when the snapshot file does not exist.
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrInvalidSnapshot is returned when a snapshot is not valid JSON,
	// either on read or before a restore overwrites the file.
	ErrInvalidSnapshot = errors.New("snapshot is not valid json")

	// ErrEnvelopeFileNotFound is returned when an envelope file to import
	// does not exist.
	ErrEnvelopeFileNotFound = errors.New("envelope file not found")

	// ErrReadingFile is returned when a local file exists but cannot be read.
	ErrReadingFile = errors.New("error reading file")

	// ErrWritingFile is returned when a local file cannot be written or
	// atomically replaced.
	ErrWritingFile = errors.New("error writing file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the journal repository when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan journal rows")
)
