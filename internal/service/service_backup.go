package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/adapter"
	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/metrics"
	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// BackupDependencies are the collaborators of the backup service. Store may
// be nil when no remote target is configured; automatic runs are then
// skipped and manual remote operations fail with [ErrStoreNotConfigured].
// Journal, Metrics and Connectivity are optional.
type BackupDependencies struct {
	Store        adapter.BlobStore
	Connectivity adapter.ConnectivityChecker
	Snapshots    store.SnapshotProvider
	Envelopes    store.EnvelopeFileStorage
	Journal      store.BackupJournal
	Sealer       envelope.Sealer
	Cache        SecretCache
	IDs          IDGenerator
	Metrics      metrics.Recorder
}

type backupService struct {
	cfg config.ClientBackup

	store        adapter.BlobStore
	connectivity adapter.ConnectivityChecker
	snapshots    store.SnapshotProvider
	envelopes    store.EnvelopeFileStorage
	journal      store.BackupJournal
	sealer       envelope.Sealer
	cache        SecretCache
	ids          IDGenerator
	metrics      metrics.Recorder

	now    func() time.Time
	logger *logger.Logger

	// set while an automatic run is in flight
	running atomic.Bool
}

// Option customises the service built by [NewBackupService].
type Option func(*backupService)

// WithClock overrides the clock used for object key timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *backupService) {
		s.now = now
	}
}

// NewBackupService wires a [BackupService] from cfg and deps.
func NewBackupService(cfg config.ClientBackup, deps BackupDependencies, logger *logger.Logger, opts ...Option) BackupService {
	s := &backupService{
		cfg:          cfg,
		store:        deps.Store,
		connectivity: deps.Connectivity,
		snapshots:    deps.Snapshots,
		envelopes:    deps.Envelopes,
		journal:      deps.Journal,
		sealer:       deps.Sealer,
		cache:        deps.Cache,
		ids:          deps.IDs,
		metrics:      deps.Metrics,
		now:          time.Now,
		logger:       logger,
	}
	if s.connectivity == nil {
		s.connectivity = adapter.AlwaysOnline{}
	}
	if s.metrics == nil {
		s.metrics = metrics.Nop()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *backupService) CacheSecretForSession(secret string) error {
	return s.cache.Store(secret)
}

func (s *backupService) ClearCachedSecret() {
	s.cache.Clear()
}

func (s *backupService) HasCachedSecret() bool {
	return s.cache.Has()
}

// withOperationTimeout bounds a single remote or provider call.
func (s *backupService) withOperationTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// record writes a journal entry. Journal failures are logged and never fail
// the backup that produced the entry.
func (s *backupService) record(ctx context.Context, entry models.JournalEntry) {
	if s.journal == nil {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.WithRunID(ctx).Warn().Err(err).Msg("failed to record backup journal entry")
	}
}

func (s *backupService) History(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.Latest(ctx, limit)
}
