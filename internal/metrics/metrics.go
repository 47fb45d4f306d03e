// Package metrics provides Prometheus metrics for pipeline runs.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StageDuration observes how long each stage took, by stage and outcome.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "video_digest_stage_duration_seconds",
		Help:    "Duration of pipeline stages, by stage and outcome (ok/error).",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"stage", "outcome"})

	// StageFailuresTotal counts failed stages.
	StageFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_digest_stage_failures_total",
		Help: "Total number of failed pipeline stages, by stage.",
	}, []string{"stage"})

	// RunsTotal counts finished runs by outcome (complete/degraded/failed).
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_digest_runs_total",
		Help: "Total number of pipeline runs, by outcome.",
	}, []string{"outcome"})
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	RunComplete  = "complete"
	RunDegraded  = "degraded"
	RunFailed    = "failed"
)

// WriteTextfile dumps the default registry to path in the text exposition
// format read by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
