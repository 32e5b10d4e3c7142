package service

import (
	"context"
	"sync"
	"time"
)

// DefaultBackupInterval is used when a job is started without a positive
// interval.
const DefaultBackupInterval = time.Hour

type autoBackupTrigger interface {
	TriggerAutomaticBackup(ctx context.Context) AutoBackupResult
}

type backupJob struct {
	backups autoBackupTrigger
	results chan<- AutoBackupResult

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackupJob creates a job that calls TriggerAutomaticBackup on a ticker.
// The job is idle until Start is called. When results is not nil every run
// result is sent to it without blocking; results that cannot be delivered
// are dropped.
func NewBackupJob(backups BackupService, results chan<- AutoBackupResult) BackupJob {
	return &backupJob{backups: backups, results: results}
}

// Start implements BackupJob. It stops any previously running job, then
// launches a background goroutine that triggers a backup right away and then
// every interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *backupJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultBackupInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.publish(j.backups.TriggerAutomaticBackup(jobCtx))

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.publish(j.backups.TriggerAutomaticBackup(jobCtx))
			}
		}
	}()
}

func (j *backupJob) publish(result AutoBackupResult) {
	if j.results == nil {
		return
	}
	select {
	case j.results <- result:
	default:
	}
}

// Stop implements BackupJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *backupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
