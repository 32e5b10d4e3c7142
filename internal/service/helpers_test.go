// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/config"
	"github.com/MKhiriev/go-snapshot-keeper/internal/crypto"
	"github.com/MKhiriev/go-snapshot-keeper/internal/envelope"
	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/mock"
	"github.com/MKhiriev/go-snapshot-keeper/internal/secretcache"
	"github.com/MKhiriev/go-snapshot-keeper/models"
	"go.uber.org/mock/gomock"
)

const (
	testSnapshot = `{"friends":[{"id":1,"name":"Alex"}],"encounters":[]}`
	testPIN      = "1234"
	// 2026-03-14T12:09:26.535Z
	testNowMillis int64 = 1773490166535
)

// fixedIDs always hands out the same run id.
type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

// spyJournal keeps recorded entries in memory.
type spyJournal struct {
	mu      sync.Mutex
	entries []models.JournalEntry
	err     error
}

func (j *spyJournal) Record(_ context.Context, entry models.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
	return j.err
}

func (j *spyJournal) Latest(_ context.Context, limit int) ([]models.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]models.JournalEntry, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.entries[i])
	}
	return out, nil
}

func (j *spyJournal) all() []models.JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]models.JournalEntry(nil), j.entries...)
}

// spyRecorder counts metric observations.
type spyRecorder struct {
	mu            sync.Mutex
	backups       map[string]int
	restores      map[string]int
	pruned        int
	pruneFailures int
}

func newSpyRecorder() *spyRecorder {
	return &spyRecorder{backups: map[string]int{}, restores: map[string]int{}}
}

func (r *spyRecorder) ObserveBackup(mode models.BackupMode, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backups[string(mode)+"/"+outcome]++
}

func (r *spyRecorder) ObserveRestore(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restores[outcome]++
}

func (r *spyRecorder) AddPruned(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruned += n
}

func (r *spyRecorder) AddPruneFailures(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneFailures += n
}

type testEnv struct {
	svc       *backupService
	store     *mock.MockBlobStore
	online    *mock.MockConnectivityChecker
	snapshots *mock.MockSnapshotProvider
	envelopes *mock.MockEnvelopeFileStorage
	journal   *spyJournal
	metrics   *spyRecorder
	cache     *secretcache.Cache
	sealer    envelope.Sealer
}

func testBackupConfig() config.ClientBackup {
	return config.ClientBackup{
		Enabled:            true,
		RetentionCount:     10,
		AutoPrefix:         "auto_backup",
		ManualPrefix:       "manual_backup",
		EncryptionRequired: true,
		Interval:           time.Hour,
		OperationTimeout:   time.Second,
	}
}

func testClock() time.Time {
	return time.UnixMilli(testNowMillis)
}

func newFastSealer() envelope.Sealer {
	return envelope.NewSealer(
		crypto.NewKeyDerivation(),
		crypto.NewSymmetricCipher(),
		envelope.WithIterations(1000),
		envelope.WithClock(testClock),
	)
}

// newTestBackupService wires the service with gomock collaborators, a real
// sealer with a low iteration count and a fixed clock.
func newTestBackupService(t *testing.T, ctrl *gomock.Controller, cfg config.ClientBackup) *testEnv {
	t.Helper()

	env := &testEnv{
		store:     mock.NewMockBlobStore(ctrl),
		online:    mock.NewMockConnectivityChecker(ctrl),
		snapshots: mock.NewMockSnapshotProvider(ctrl),
		envelopes: mock.NewMockEnvelopeFileStorage(ctrl),
		journal:   &spyJournal{},
		metrics:   newSpyRecorder(),
		cache:     secretcache.New(),
		sealer:    newFastSealer(),
	}

	env.svc = NewBackupService(cfg, BackupDependencies{
		Store:        env.store,
		Connectivity: env.online,
		Snapshots:    env.snapshots,
		Envelopes:    env.envelopes,
		Journal:      env.journal,
		Sealer:       env.sealer,
		Cache:        env.cache,
		IDs:          fixedIDs("run-1"),
		Metrics:      env.metrics,
	}, logger.Nop(), WithClock(testClock)).(*backupService)

	return env
}

func strPtr(s string) *string { return &s }

func autoKey(millis int64) string {
	return BackupKey("auto_backup", time.UnixMilli(millis))
}
