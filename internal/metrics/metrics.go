// Package metrics exposes prometheus instrumentation for backup runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-snapshot-keeper/models"
)

const namespace = "keeper"

// Recorder receives backup and restore observations from the service layer.
type Recorder interface {
	// ObserveBackup counts one backup attempt with its terminal outcome
	// ("done", "skipped", "failed") and records its duration.
	ObserveBackup(mode models.BackupMode, outcome string, d time.Duration)
	// ObserveRestore counts one restore attempt.
	ObserveRestore(outcome string, d time.Duration)
	// AddPruned counts backups deleted by retention.
	AddPruned(n int)
	// AddPruneFailures counts retention deletions that failed.
	AddPruneFailures(n int)
}

type promRecorder struct {
	backups         *prometheus.CounterVec
	backupDuration  *prometheus.HistogramVec
	restores        *prometheus.CounterVec
	restoreDuration prometheus.Histogram
	pruned          prometheus.Counter
	pruneFailures   prometheus.Counter
}

// NewRecorder registers the keeper metrics with reg and returns a [Recorder]
// updating them. Registering twice with the same registry panics.
func NewRecorder(reg prometheus.Registerer) Recorder {
	factory := promauto.With(reg)
	buckets := []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60}

	return &promRecorder{
		backups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backups_total",
			Help:      "Total backup attempts by mode and outcome",
		}, []string{"mode", "outcome"}),
		backupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backup_duration_seconds",
			Help:      "Time to snapshot, seal and upload a backup",
			Buckets:   buckets,
		}, []string{"mode"}),
		restores: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restores_total",
			Help:      "Total restore attempts by outcome",
		}, []string{"outcome"}),
		restoreDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "restore_duration_seconds",
			Help:      "Time to fetch, open and apply a backup",
			Buckets:   buckets,
		}),
		pruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backup_pruned_total",
			Help:      "Automatic backups deleted by retention",
		}),
		pruneFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backup_prune_failures_total",
			Help:      "Retention deletions that failed",
		}),
	}
}

func (r *promRecorder) ObserveBackup(mode models.BackupMode, outcome string, d time.Duration) {
	r.backups.WithLabelValues(string(mode), outcome).Inc()
	r.backupDuration.WithLabelValues(string(mode)).Observe(d.Seconds())
}

func (r *promRecorder) ObserveRestore(outcome string, d time.Duration) {
	r.restores.WithLabelValues(outcome).Inc()
	r.restoreDuration.Observe(d.Seconds())
}

func (r *promRecorder) AddPruned(n int) {
	if n > 0 {
		r.pruned.Add(float64(n))
	}
}

func (r *promRecorder) AddPruneFailures(n int) {
	if n > 0 {
		r.pruneFailures.Add(float64(n))
	}
}

// Handler serves the metrics gathered by g in the prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

// Nop returns a [Recorder] that drops every observation.
func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) ObserveBackup(models.BackupMode, string, time.Duration) {}
func (nopRecorder) ObserveRestore(string, time.Duration)                   {}
func (nopRecorder) AddPruned(int)                                           {}
func (nopRecorder) AddPruneFailures(int)                                    {}
