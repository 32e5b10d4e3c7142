package config

import "time"

// Adapter kinds accepted by [Adapter.Kind].
const (
	AdapterHTTP   = "http"
	AdapterGCS    = "gcs"
	AdapterMemory = "memory"
)

// Defaults fill whatever no other source set.
const (
	DefaultRetentionCount   = 10
	DefaultAutoPrefix       = "auto_backup"
	DefaultManualPrefix     = "manual_backup"
	DefaultInterval         = time.Hour
	DefaultOperationTimeout = 30 * time.Second
	DefaultRequestTimeout   = 15 * time.Second
	DefaultRetryCount       = 2
	DefaultContainer        = "backups"
	DefaultJournalDSN       = "keeper_journal.db"
	DefaultSnapshotPath     = "snapshot.json"
	DefaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Backup: Backup{
			Enabled:            BoolPtr(true),
			RetentionCount:     DefaultRetentionCount,
			AutoPrefix:         DefaultAutoPrefix,
			ManualPrefix:       DefaultManualPrefix,
			EncryptionRequired: BoolPtr(true),
			Interval:           DefaultInterval,
			OperationTimeout:   DefaultOperationTimeout,
		},
		Adapter: Adapter{
			Kind:           AdapterHTTP,
			Container:      DefaultContainer,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Storage: Storage{
			JournalDSN:   DefaultJournalDSN,
			SnapshotPath: DefaultSnapshotPath,
		},
	}
}
