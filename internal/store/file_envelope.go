package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// envelopeFileStorage persists exported envelopes as JSON files in the
// interchange format, readable by the owner only.
type envelopeFileStorage struct {
	logger *logger.Logger
}

// NewEnvelopeFileStorage constructs a new [EnvelopeFileStorage].
func NewEnvelopeFileStorage(logger *logger.Logger) EnvelopeFileStorage {
	return &envelopeFileStorage{logger: logger}
}

// SaveEnvelope encodes env and atomically writes it to path with 0600
// permissions, replacing any existing file.
func (s *envelopeFileStorage) SaveEnvelope(ctx context.Context, path string, env models.BackupEnvelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := envelope.Encode(env)
	if err != nil {
		return err
	}

	if err = writeFileAtomic(path, b); err != nil {
		s.logger.Err(err).Str("func", "envelopeFileStorage.SaveEnvelope").Str("path", path).Msg("failed to write envelope file")
		return err
	}

	return nil
}

// LoadEnvelope reads and decodes the envelope at path. Content that is not an
// envelope is reported as [envelope.ErrMalformedEnvelope].
func (s *envelopeFileStorage) LoadEnvelope(ctx context.Context, path string) (models.BackupEnvelope, error) {
	if err := ctx.Err(); err != nil {
		return models.BackupEnvelope{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.BackupEnvelope{}, fmt.Errorf("%w: %s", ErrEnvelopeFileNotFound, path)
		}
		s.logger.Err(err).Str("func", "envelopeFileStorage.LoadEnvelope").Str("path", path).Msg("failed to read envelope file")
		return models.BackupEnvelope{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return envelope.Decode(b)
}
