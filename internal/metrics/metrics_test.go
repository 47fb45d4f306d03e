package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	RunsTotal.WithLabelValues(RunComplete).Inc()
	StageDuration.WithLabelValues("fetch", OutcomeOK).Observe(0.2)

	path := filepath.Join(t.TempDir(), "video_digest.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "video_digest_runs_total")
	assert.Contains(t, string(data), "video_digest_stage_duration_seconds_bucket")
}

func TestWriteTextfileBadPath(t *testing.T) {
	assert.Error(t, WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom")))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(StageFailuresTotal.WithLabelValues("render"))
	StageFailuresTotal.WithLabelValues("render").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(StageFailuresTotal.WithLabelValues("render")))
}
