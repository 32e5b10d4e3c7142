package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// fileSnapshotProvider reads the application's exported state from a JSON
// file and restores it by atomically replacing that file.
type fileSnapshotProvider struct {
	path   string
	logger *logger.Logger
}

// NewFileSnapshotProvider returns a [SnapshotProvider] backed by the file at
// path.
func NewFileSnapshotProvider(path string, logger *logger.Logger) SnapshotProvider {
	return &fileSnapshotProvider{
		path:   path,
		logger: logger,
	}
}

func (p *fileSnapshotProvider) GetSnapshot(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSnapshotNotFound, p.path)
		}
		p.logger.Err(err).Str("func", "fileSnapshotProvider.GetSnapshot").Str("path", p.path).Msg("failed to read snapshot")
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	snapshot := models.Snapshot(b)
	if !snapshot.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSnapshot, p.path)
	}

	return snapshot, nil
}

func (p *fileSnapshotProvider) RestoreSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// the current state is left untouched when the payload is unusable
	if !snapshot.Valid() {
		return ErrInvalidSnapshot
	}

	if err := writeFileAtomic(p.path, []byte(snapshot)); err != nil {
		p.logger.Err(err).Str("func", "fileSnapshotProvider.RestoreSnapshot").Str("path", p.path).Msg("failed to replace snapshot")
		return err
	}

	p.logger.Info().Str("path", p.path).Int("bytes", len(snapshot)).Msg("snapshot restored")
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path, so readers see either the old or the new content. The result is
// readable by the owner only.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}
