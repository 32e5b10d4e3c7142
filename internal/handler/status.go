package handler

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/service"
)

// Status keeps the outcome of the latest automatic run for /status.
type Status struct {
	mu       sync.RWMutex
	last     *service.AutoBackupResult
	lastAt   time.Time
	runs     int
	uploaded int
	now      func() time.Time
}

func NewStatus() *Status {
	return &Status{now: time.Now}
}

// Observe records result as the latest run.
func (s *Status) Observe(result service.AutoBackupResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &result
	s.lastAt = s.now().UTC()
	s.runs++
	if result.Uploaded() {
		s.uploaded++
	}
}

type runReport struct {
	RunID         string    `json:"run_id,omitempty"`
	State         string    `json:"state"`
	SkipReason    string    `json:"skip_reason,omitempty"`
	FailedAt      string    `json:"failed_at,omitempty"`
	Error         string    `json:"error,omitempty"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	Key           string    `json:"key,omitempty"`
	Pruned        []string  `json:"pruned,omitempty"`
	PruneFailures []string  `json:"prune_failures,omitempty"`
	FinishedAt    time.Time `json:"finished_at,omitzero"`
}

func newRunReport(result service.AutoBackupResult, at time.Time) runReport {
	report := runReport{
		RunID:         result.RunID,
		State:         string(result.State),
		SkipReason:    string(result.SkipReason),
		FailedAt:      string(result.FailedAt),
		Key:           result.Key,
		Pruned:        result.Pruned,
		PruneFailures: result.PruneFailures,
		FinishedAt:    at,
	}
	if result.Err != nil {
		report.Error = result.Err.Error()
		report.ErrorKind = string(service.ErrorKind(result.Err))
	}
	return report
}

type statusReport struct {
	Runs      int        `json:"runs"`
	Uploaded  int        `json:"uploaded"`
	PINCached bool       `json:"pin_cached"`
	LastRun   *runReport `json:"last_run,omitempty"`
}

func (s *Status) report(pinCached bool) statusReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := statusReport{Runs: s.runs, Uploaded: s.uploaded, PINCached: pinCached}
	if s.last != nil {
		last := newRunReport(*s.last, s.lastAt)
		report.LastRun = &last
	}
	return report
}
