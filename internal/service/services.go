package service

import (
	"github.com/MKhiriev/go-snapshot-keeper/internal/adapter"
	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/metrics"
	"github.com/MKhiriev/go-snapshot-keeper/internal/secretcache"
	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
)

// Services groups the backup service and its periodic job.
type Services struct {
	Backups BackupService
	Job     BackupJob
	// Cache is the session secret cache shared by all backup flows.
	Cache *secretcache.Cache
}

// NewServices wires the production backup service. blobStore and
// connectivity may be nil when no remote target is configured. recorder may
// be nil.
func NewServices(
	cfg config.ClientBackup,
	blobStore adapter.BlobStore,
	connectivity adapter.ConnectivityChecker,
	storages *store.Storages,
	recorder metrics.Recorder,
	results chan<- AutoBackupResult,
	logger *logger.Logger,
) *Services {
	cache := secretcache.New()

	backups := NewBackupService(cfg, BackupDependencies{
		Store:        blobStore,
		Connectivity: connectivity,
		Snapshots:    storages.Snapshots,
		Envelopes:    storages.Envelopes,
		Journal:      storages.Journal,
		Sealer:       envelope.NewSealer(crypto.NewKeyDerivation(), crypto.NewSymmetricCipher()),
		Cache:        cache,
		IDs:          utils.NewUUIDGenerator(),
		Metrics:      recorder,
	}, logger)

	return &Services{
		Backups: backups,
		Job:     NewBackupJob(backups, results),
		Cache:   cache,
	}
}
