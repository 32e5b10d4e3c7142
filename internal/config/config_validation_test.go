// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfigValidate_Defaults(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"zero retention", func(c *ClientConfig) { c.Backup.RetentionCount = 0 }, ErrInvalidBackupConfigs},
		{"negative retention", func(c *ClientConfig) { c.Backup.RetentionCount = -1 }, ErrInvalidBackupConfigs},
		{"empty auto prefix", func(c *ClientConfig) { c.Backup.AutoPrefix = " " }, ErrInvalidBackupConfigs},
		{"slash in manual prefix", func(c *ClientConfig) { c.Backup.ManualPrefix = "a/b" }, ErrInvalidBackupConfigs},
		{"same prefixes", func(c *ClientConfig) { c.Backup.ManualPrefix = c.Backup.AutoPrefix }, ErrInvalidBackupConfigs},
		{"zero interval", func(c *ClientConfig) { c.Backup.Interval = 0 }, ErrInvalidBackupConfigs},
		{"zero operation timeout", func(c *ClientConfig) { c.Backup.OperationTimeout = 0 }, ErrInvalidBackupConfigs},
		{"zero request timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"negative retries", func(c *ClientConfig) { c.Adapter.RetryCount = -1 }, ErrInvalidAdapterConfigs},
		{"empty journal", func(c *ClientConfig) { c.Storage.JournalDSN = "" }, ErrInvalidStorageConfigs},
		{"empty snapshot path", func(c *ClientConfig) { c.Storage.SnapshotPath = "" }, ErrInvalidStorageConfigs},
		{"bad log level", func(c *ClientConfig) { c.App.LogLevel = "loud" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientAdapterValidate(t *testing.T) {
	tests := []struct {
		name    string
		adapter ClientAdapter
		wantErr error
	}{
		{"http ok", ClientAdapter{Kind: AdapterHTTP, HTTPAddress: "localhost:8080", Container: "c"}, nil},
		{"http no address", ClientAdapter{Kind: AdapterHTTP, Container: "c"}, ErrStoreNotConfigured},
		{"http no container", ClientAdapter{Kind: AdapterHTTP, HTTPAddress: "localhost:8080"}, ErrStoreNotConfigured},
		{"gcs ok", ClientAdapter{Kind: AdapterGCS, GCSBucket: "b"}, nil},
		{"gcs no bucket", ClientAdapter{Kind: AdapterGCS}, ErrStoreNotConfigured},
		{"memory", ClientAdapter{Kind: AdapterMemory}, nil},
		{"unknown", ClientAdapter{Kind: "ftp"}, ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.adapter.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
