// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "KEEPER_"

// StructuredConfig is the top-level configuration container for the keeper
// CLI. It aggregates all sub-configurations and is populated by merging
// values from environment variables (including an optional .env file),
// command-line flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Tri-state switches are *bool so that an explicit "false" from a higher
// priority source survives the merge.
type StructuredConfig struct {
	// App holds application-level settings such as the integrity hash key.
	App App `envPrefix:"APP_"`

	// Backup holds the backup policy: whether automatic backups run, how
	// many are retained and how objects are named.
	Backup Backup `envPrefix:"BACKUP_"`

	// Adapter selects and configures the remote object store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings: the backup journal and the
	// application snapshot file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Metrics holds the prometheus endpoint settings for `keeper auto`.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via KEEPER_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for the HashSHA256 request integrity
	// header sent to the HTTP object store. Optional.
	// Env: KEEPER_APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: KEEPER_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Backup holds the retention policy and object naming settings.
type Backup struct {
	// Enabled switches automatic backups on or off.
	// Env: KEEPER_BACKUP_ENABLED
	Enabled *bool `env:"ENABLED"`

	// RetentionCount is how many automatic backups are kept remotely.
	// Env: KEEPER_BACKUP_RETENTION_COUNT
	RetentionCount int `env:"RETENTION_COUNT"`

	// AutoPrefix names automatic backup objects: <prefix>_<millis>.json.
	// Env: KEEPER_BACKUP_AUTO_PREFIX
	AutoPrefix string `env:"AUTO_PREFIX"`

	// ManualPrefix names manual backup objects. Manual backups are never
	// pruned.
	// Env: KEEPER_BACKUP_MANUAL_PREFIX
	ManualPrefix string `env:"MANUAL_PREFIX"`

	// EncryptionRequired makes every backup an encrypted envelope.
	// Env: KEEPER_BACKUP_ENCRYPTION_REQUIRED
	EncryptionRequired *bool `env:"ENCRYPTION_REQUIRED"`

	// Interval is the period of `keeper auto` (e.g. "1h").
	// Env: KEEPER_BACKUP_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// OperationTimeout bounds each remote call of an automatic run.
	// Env: KEEPER_BACKUP_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
}

// Adapter holds remote object store settings.
type Adapter struct {
	// Kind selects the store: "http", "gcs" or "memory".
	// Env: KEEPER_ADAPTER_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the base URL of the HTTP object store.
	// Env: KEEPER_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Container is the HTTP store container (bucket) name.
	// Env: KEEPER_ADAPTER_CONTAINER
	Container string `env:"CONTAINER"`

	// Token is sent as a bearer token. It is passed through, never validated.
	// Env: KEEPER_ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// GCSBucket is the Google Cloud Storage bucket for Kind "gcs".
	// Env: KEEPER_ADAPTER_GCS_BUCKET
	GCSBucket string `env:"GCS_BUCKET"`

	// GCSCredentialsFile is an optional service account JSON file. When
	// empty, application default credentials are used.
	// Env: KEEPER_ADAPTER_GCS_CREDENTIALS_FILE
	GCSCredentialsFile string `env:"GCS_CREDENTIALS_FILE"`

	// ProbeURL is HEAD-requested to decide whether the device is online.
	// Defaults to HTTPAddress for the HTTP store.
	// Env: KEEPER_ADAPTER_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// RequestTimeout bounds a single HTTP request.
	// Env: KEEPER_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times failed HTTP requests are retried.
	// Env: KEEPER_ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// JournalDSN is the SQLite DSN of the backup journal.
	// Env: KEEPER_STORAGE_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`

	// SnapshotPath is the application state file that backups are taken
	// from and restores are written to.
	// Env: KEEPER_STORAGE_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH"`
}

// Metrics holds the prometheus endpoint settings.
type Metrics struct {
	// Address is host:port for /metrics. Empty disables the endpoint.
	// Env: KEEPER_METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// BoolPtr is a helper for building configs in code and tests.
func BoolPtr(b bool) *bool {
	return &b
}
