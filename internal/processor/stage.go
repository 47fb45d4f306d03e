package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nguyentantai21042004/video-digest/internal/metrics"
	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// ErrOutOfOrder is returned when a stage is attempted before its predecessor
// produced an artifact.
var ErrOutOfOrder = errors.New("predecessor stage has not completed")

// StageError tags a failure with the stage that produced it.
type StageError struct {
	Stage model.Stage
	// State is the last state reached before the failure.
	State model.State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// run is the mutable state of one Process call.
type run struct {
	ref   model.VideoReference
	state model.State

	transcript model.Transcript
	summary    model.Summary
	bullets    model.BulletList
	document   model.ReportDocument
	audio      *model.AudioArtifact
}

// step executes fn as stage, advancing r.state on success.
func (p *implProcessor) step(ctx context.Context, r *run, stage model.Stage, fn func(ctx context.Context) error) error {
	if r.state != stage.Source() {
		return &StageError{Stage: stage, State: r.state, Err: ErrOutOfOrder}
	}

	ctx, span := p.tracer.Start(ctx, "stage."+string(stage))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.StageDuration.WithLabelValues(string(stage), metrics.OutcomeError).Observe(elapsed.Seconds())
		metrics.StageFailuresTotal.WithLabelValues(string(stage)).Inc()
		return &StageError{Stage: stage, State: r.state, Err: err}
	}

	metrics.StageDuration.WithLabelValues(string(stage), metrics.OutcomeOK).Observe(elapsed.Seconds())
	r.state = stage.Target()
	span.SetAttributes(attribute.String("pipeline.state", string(r.state)))
	return nil
}
