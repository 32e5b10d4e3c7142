// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyTrigger counts TriggerAutomaticBackup calls.
type spyTrigger struct {
	BackupService
	calls atomic.Int64
}

func (s *spyTrigger) TriggerAutomaticBackup(_ context.Context) AutoBackupResult {
	s.calls.Add(1)
	return AutoBackupResult{State: StateDone, Key: "auto_backup_1.json"}
}

// ── NewBackupJob ─────────────────────────────────────────────────────────────

func TestNewBackupJob_ReturnsInterface(t *testing.T) {
	job := NewBackupJob(&spyTrigger{}, nil)
	require.NotNil(t, job)

	var _ BackupJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestBackupJob_Start_TriggersBackups(t *testing.T) {
	spy := &spyTrigger{}
	job := NewBackupJob(spy, nil)

	// 10ms interval: about 5 ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several triggers, got %d", got)
}

func TestBackupJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyTrigger{}
	job := NewBackupJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no triggers after Stop")
}

func TestBackupJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewBackupJob(&spyTrigger{}, nil)
	assert.NotPanics(t, func() { job.Stop() })
}

func TestBackupJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewBackupJob(&spyTrigger{}, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestBackupJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyTrigger{}
	job := NewBackupJob(spy, nil)

	// interval <= 0 falls back to an hour: only the initial run happens
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestBackupJob_Start_RunsImmediately(t *testing.T) {
	spy := &spyTrigger{}
	results := make(chan AutoBackupResult, 1)
	job := NewBackupJob(spy, results)

	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	select {
	case r := <-results:
		assert.Equal(t, StateDone, r.State)
	case <-time.After(time.Second):
		t.Fatal("first backup waited for the interval")
	}
	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestBackupJob_ContextCancelStops(t *testing.T) {
	spy := &spyTrigger{}
	job := NewBackupJob(spy, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)
	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterCancel, spy.calls.Load())
	job.Stop()
}

func TestBackupJob_RestartReplacesPrevious(t *testing.T) {
	spy := &spyTrigger{}
	job := NewBackupJob(spy, nil).(*backupJob)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), time.Hour)
	time.Sleep(20 * time.Millisecond)
	settled := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	// the 10ms ticker is gone after the second Start
	assert.Equal(t, settled, spy.calls.Load())
	assert.LessOrEqual(t, settled, int64(2))
}

func TestBackupJob_PublishesResults(t *testing.T) {
	results := make(chan AutoBackupResult, 1)
	job := NewBackupJob(&spyTrigger{}, results)

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	select {
	case r := <-results:
		assert.Equal(t, StateDone, r.State)
	case <-time.After(time.Second):
		t.Fatal("no result published")
	}
}

func TestBackupJob_FullResultChannelDoesNotBlock(t *testing.T) {
	spy := &spyTrigger{}
	results := make(chan AutoBackupResult) // nobody reads
	job := NewBackupJob(spy, results)

	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}
