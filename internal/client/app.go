package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-snapshot-keeper/internal/adapter"
	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/metrics"
	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
	"github.com/MKhiriev/go-snapshot-keeper/internal/store"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// resultsBuffer is how many automatic run results the daemon may lag behind.
const resultsBuffer = 8

// App holds everything the keeper commands operate on.
type App struct {
	cfg       *config.ClientConfig
	services  *service.Services
	storages  *store.Storages
	registry  *prometheus.Registry
	results   chan service.AutoBackupResult
	prompter  Prompter
	buildInfo models.AppBuildInfo
	out       io.Writer

	logger *logger.Logger
}

// NewApp connects the configured object store and local storage and builds
// the backup services. A store missing its address or bucket is not fatal:
// manual remote operations then fail with [service.ErrStoreNotConfigured]
// and automatic runs are skipped.
func NewApp(ctx context.Context, cfg *config.ClientConfig, prompter Prompter, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	blobStore, connectivity, err := adapter.NewBlobStore(ctx, cfg.Adapter, cfg.App, logger)
	if err != nil {
		if !errors.Is(err, config.ErrStoreNotConfigured) {
			return nil, fmt.Errorf("create object store: %w", err)
		}
		logger.Warn().Err(err).Msg("remote backups disabled")
		blobStore, connectivity = nil, nil
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(cfg, blobStore, connectivity, storages, prompter, buildInfo, out, logger), nil
}

func newApp(
	cfg *config.ClientConfig,
	blobStore adapter.BlobStore,
	connectivity adapter.ConnectivityChecker,
	storages *store.Storages,
	prompter Prompter,
	buildInfo models.AppBuildInfo,
	out io.Writer,
	logger *logger.Logger,
) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	results := make(chan service.AutoBackupResult, resultsBuffer)
	services := service.NewServices(cfg.Backup, blobStore, connectivity, storages, metrics.NewRecorder(registry), results, logger)

	return &App{
		cfg:       cfg,
		services:  services,
		storages:  storages,
		registry:  registry,
		results:   results,
		prompter:  prompter,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

// Close forgets the session PIN and closes local storage.
func (a *App) Close() error {
	a.services.Backups.ClearCachedSecret()
	return a.storages.Close()
}
