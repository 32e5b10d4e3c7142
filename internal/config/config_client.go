package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds application-level settings derived from the structured
// config.
type ClientApp struct {
	// HashKey is the HMAC key used for payload integrity headers.
	HashKey string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ClientBackup is the resolved backup policy.
type ClientBackup struct {
	Enabled            bool
	RetentionCount     int
	AutoPrefix         string
	ManualPrefix       string
	EncryptionRequired bool
	Interval           time.Duration
	OperationTimeout   time.Duration
}

// ClientAdapter holds the remote object store settings.
type ClientAdapter struct {
	Kind               string
	HTTPAddress        string
	Container          string
	Token              string
	GCSBucket          string
	GCSCredentialsFile string
	ProbeURL           string
	RequestTimeout     time.Duration
	RetryCount         int
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	JournalDSN   string
	SnapshotPath string
}

// ClientMetrics holds the prometheus endpoint settings.
type ClientMetrics struct {
	Address string
}

// ClientConfig is the configuration view used by the keeper CLI, assembled
// from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Backup  ClientBackup
	Adapter ClientAdapter
	Storage ClientStorage
	Metrics ClientMetrics
}

// GetClientConfig loads the configuration from .env, environment, the flags
// on fs, the JSON file and defaults, in that priority order, maps it onto a
// [ClientConfig] and validates it. fs may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Earlier sources win for fields they set:
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables already present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(fs).
		withJSON().
		withDefaults().
		build()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
		},
		Backup: ClientBackup{
			Enabled:            derefBool(cfg.Backup.Enabled),
			RetentionCount:     cfg.Backup.RetentionCount,
			AutoPrefix:         cfg.Backup.AutoPrefix,
			ManualPrefix:       cfg.Backup.ManualPrefix,
			EncryptionRequired: derefBool(cfg.Backup.EncryptionRequired),
			Interval:           cfg.Backup.Interval,
			OperationTimeout:   cfg.Backup.OperationTimeout,
		},
		Adapter: ClientAdapter{
			Kind:               cfg.Adapter.Kind,
			HTTPAddress:        cfg.Adapter.HTTPAddress,
			Container:          cfg.Adapter.Container,
			Token:              cfg.Adapter.Token,
			GCSBucket:          cfg.Adapter.GCSBucket,
			GCSCredentialsFile: cfg.Adapter.GCSCredentialsFile,
			ProbeURL:           cfg.Adapter.ProbeURL,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			RetryCount:         cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			JournalDSN:   cfg.Storage.JournalDSN,
			SnapshotPath: cfg.Storage.SnapshotPath,
		},
		Metrics: ClientMetrics{
			Address: cfg.Metrics.Address,
		},
	}
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
