package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
)

// GCSProbeURL is probed for connectivity when the GCS store has no explicit
// probe URL.
const GCSProbeURL = "https://storage.googleapis.com"

// NewBlobStore builds the store selected by adapterCfg.Kind together with a
// matching connectivity checker. It returns [config.ErrStoreNotConfigured]
// (wrapped) when the selected store lacks its address or bucket.
func NewBlobStore(ctx context.Context, adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (BlobStore, ConnectivityChecker, error) {
	if err := adapterCfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch adapterCfg.Kind {
	case config.AdapterHTTP:
		store, err := NewHTTPBlobStore(adapterCfg, appCfg, logger)
		if err != nil {
			return nil, nil, err
		}
		probe := adapterCfg.ProbeURL
		if probe == "" {
			if probe, err = normalizeBaseURL(adapterCfg.HTTPAddress); err != nil {
				return nil, nil, err
			}
		}
		return store, NewHTTPConnectivityChecker(probe, adapterCfg.RequestTimeout, logger), nil

	case config.AdapterGCS:
		store, err := NewGCSBlobStore(ctx, adapterCfg, logger)
		if err != nil {
			return nil, nil, err
		}
		probe := adapterCfg.ProbeURL
		if probe == "" {
			probe = GCSProbeURL
		}
		return store, NewHTTPConnectivityChecker(probe, adapterCfg.RequestTimeout, logger), nil

	case config.AdapterMemory:
		return NewMemoryBlobStore(), AlwaysOnline{}, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown store kind %q", config.ErrInvalidAdapterConfigs, adapterCfg.Kind)
	}
}
