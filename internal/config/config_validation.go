// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var logLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
	"fatal": {}, "panic": {}, "disabled": {},
}

// validate checks the merged [StructuredConfig]. Value-level rules live on
// [ClientConfig]; here only the kind switch is checked early so a typo in
// --store fails before any defaults hide it.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Adapter.Kind {
	case "", AdapterHTTP, AdapterGCS, AdapterMemory:
		return nil
	default:
		return fmt.Errorf("%w: unknown store kind %q", ErrInvalidAdapterConfigs, cfg.Adapter.Kind)
	}
}

// validate is the single boundary check for the policy values the backup
// core relies on. Whether the remote store is fully configured is checked
// separately by [ClientAdapter.Validate], because an unconfigured store is a
// legitimate state that makes automatic backups skip.
func (cfg *ClientConfig) validate() error {
	b := cfg.Backup
	if b.RetentionCount <= 0 {
		return fmt.Errorf("%w: retention count must be positive, got %d", ErrInvalidBackupConfigs, b.RetentionCount)
	}
	if !validPrefix(b.AutoPrefix) || !validPrefix(b.ManualPrefix) {
		return fmt.Errorf("%w: prefixes must be non-empty and contain no '/'", ErrInvalidBackupConfigs)
	}
	if b.AutoPrefix == b.ManualPrefix {
		return fmt.Errorf("%w: automatic and manual prefixes must differ", ErrInvalidBackupConfigs)
	}
	if b.Interval <= 0 || b.OperationTimeout <= 0 {
		return fmt.Errorf("%w: interval and operation timeout must be positive", ErrInvalidBackupConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: request timeout must be positive and retries non-negative", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.JournalDSN == "" || cfg.Storage.SnapshotPath == "" {
		return ErrInvalidStorageConfigs
	}

	if _, ok := logLevels[strings.ToLower(cfg.App.LogLevel)]; !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}

// Validate reports whether the selected object store has everything it
// needs to be constructed.
func (a ClientAdapter) Validate() error {
	switch a.Kind {
	case AdapterHTTP:
		if strings.TrimSpace(a.HTTPAddress) == "" || strings.TrimSpace(a.Container) == "" {
			return fmt.Errorf("%w: http store needs an address and a container", ErrStoreNotConfigured)
		}
	case AdapterGCS:
		if strings.TrimSpace(a.GCSBucket) == "" {
			return fmt.Errorf("%w: gcs store needs a bucket", ErrStoreNotConfigured)
		}
	case AdapterMemory:
	default:
		return fmt.Errorf("%w: unknown store kind %q", ErrInvalidAdapterConfigs, a.Kind)
	}
	return nil
}

func validPrefix(p string) bool {
	return strings.TrimSpace(p) != "" && !strings.Contains(p, "/")
}
