package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		HashKey  string `json:"hash_key"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Backup struct {
		Enabled            *bool    `json:"enabled"`
		RetentionCount     int      `json:"retention_count"`
		AutoPrefix         string   `json:"auto_prefix"`
		ManualPrefix       string   `json:"manual_prefix"`
		EncryptionRequired *bool    `json:"encryption_required"`
		Interval           Duration `json:"interval"`
		OperationTimeout   Duration `json:"operation_timeout"`
	} `json:"backup,omitempty"`

	Adapter struct {
		Kind               string   `json:"kind"`
		HTTPAddress        string   `json:"http_address"`
		Container          string   `json:"container"`
		Token              string   `json:"token"`
		GCSBucket          string   `json:"gcs_bucket"`
		GCSCredentialsFile string   `json:"gcs_credentials_file"`
		ProbeURL           string   `json:"probe_url"`
		RequestTimeout     Duration `json:"request_timeout"`
		RetryCount         int      `json:"retry_count"`
	} `json:"adapter,omitempty"`

	Storage struct {
		JournalDSN   string `json:"journal_dsn"`
		SnapshotPath string `json:"snapshot_path"`
	} `json:"storage,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:  jsonCfg.App.HashKey,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Backup: Backup{
			Enabled:            jsonCfg.Backup.Enabled,
			RetentionCount:     jsonCfg.Backup.RetentionCount,
			AutoPrefix:         jsonCfg.Backup.AutoPrefix,
			ManualPrefix:       jsonCfg.Backup.ManualPrefix,
			EncryptionRequired: jsonCfg.Backup.EncryptionRequired,
			Interval:           time.Duration(jsonCfg.Backup.Interval),
			OperationTimeout:   time.Duration(jsonCfg.Backup.OperationTimeout),
		},
		Adapter: Adapter{
			Kind:               jsonCfg.Adapter.Kind,
			HTTPAddress:        jsonCfg.Adapter.HTTPAddress,
			Container:          jsonCfg.Adapter.Container,
			Token:              jsonCfg.Adapter.Token,
			GCSBucket:          jsonCfg.Adapter.GCSBucket,
			GCSCredentialsFile: jsonCfg.Adapter.GCSCredentialsFile,
			ProbeURL:           jsonCfg.Adapter.ProbeURL,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:         jsonCfg.Adapter.RetryCount,
		},
		Storage: Storage{
			JournalDSN:   jsonCfg.Storage.JournalDSN,
			SnapshotPath: jsonCfg.Storage.SnapshotPath,
		},
		Metrics: Metrics{
			Address: jsonCfg.Metrics.Address,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
