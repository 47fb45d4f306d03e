package processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/metrics"
	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// Process orchestrates the entire video analysis pipeline
func (p *implProcessor) Process(ctx context.Context, ref model.VideoReference) (*model.PipelineResult, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID)

	ctx, span := p.tracer.Start(ctx, "pipeline.process", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("video.reference", string(ref)),
	))
	defer span.End()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Starting video analysis: %s", ref)
	log.Info(ctx, "========================================")

	r := &run{ref: ref, state: model.StateStart}

	fail := func(err error) (*model.PipelineResult, error) {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			log.Error(ctx, "Error during analysis (stage %s): %v", stageErr.Stage, stageErr.Err)
		} else {
			log.Error(ctx, "Error during analysis: %v", err)
		}
		from := r.state
		r.state = model.StateFailed
		log.Debug(ctx, "State %s -> %s", from, r.state)
		span.SetAttributes(attribute.String("pipeline.state", string(r.state)))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RunsTotal.WithLabelValues(metrics.RunFailed).Inc()
		return nil, err
	}

	// Step 1: Fetch transcript
	err := p.step(ctx, r, model.StageFetch, func(ctx context.Context) error {
		t, err := p.transcripts.Fetch(ctx, ref)
		if err != nil {
			return err
		}
		r.transcript = t
		return nil
	})
	if err != nil {
		return fail(err)
	}

	// Step 2: Summarize
	err = p.step(ctx, r, model.StageSummarize, func(ctx context.Context) error {
		s, err := p.summarizer.Summarize(ctx, r.transcript)
		if err != nil {
			return err
		}
		r.summary = s
		return nil
	})
	if err != nil {
		return fail(err)
	}
	log.Info(ctx, "Summary generated successfully")

	// Step 3: Detail points
	err = p.step(ctx, r, model.StageBullets, func(ctx context.Context) error {
		raw, err := p.summarizer.DetailPoints(ctx, r.summary)
		if err != nil {
			return err
		}
		r.bullets = model.SplitBullets(raw)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	log.Info(ctx, "Bullet points generated successfully (%d lines)", len(r.bullets))

	// Step 4: Render report
	err = p.step(ctx, r, model.StageRender, func(ctx context.Context) error {
		doc, err := p.renderer.Render(ctx, r.summary, r.bullets, r.ref)
		if err != nil {
			return err
		}
		r.document = doc
		return nil
	})
	if err != nil {
		return fail(err)
	}

	// Step 5: Narrate report
	var audioErr error
	err = p.step(ctx, r, model.StageNarrate, func(ctx context.Context) error {
		audio, err := p.narrator.Synthesize(ctx, r.document)
		if err != nil {
			return err
		}
		r.audio = &audio
		return nil
	})
	if err != nil {
		if p.cfg.Pipeline.RequireAudio {
			return fail(err)
		}
		log.Warn(ctx, "Continuing without audio: %v", err)
		audioErr = err
	}

	r.state = model.StateDone
	duration := time.Since(startTime)

	outcome := metrics.RunComplete
	if audioErr != nil {
		outcome = metrics.RunDegraded
	}
	metrics.RunsTotal.WithLabelValues(outcome).Inc()
	span.SetAttributes(
		attribute.String("pipeline.state", string(r.state)),
		attribute.String("pipeline.outcome", outcome),
	)

	logCompletion(ctx, log, r, duration)

	return &model.PipelineResult{
		RunID:     runID,
		Reference: ref,
		Summary:   r.summary,
		Bullets:   r.bullets,
		Document:  r.document,
		Audio:     r.audio,
		AudioErr:  audioErr,
		State:     r.state,
		Duration:  duration,
	}, nil
}

func logCompletion(ctx context.Context, log logger.Logger, r *run, duration time.Duration) {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Analysis completed!")
	log.Info(ctx, "PDF report: %s", r.document.Path)
	if r.audio != nil {
		log.Info(ctx, "Audio report: %s", r.audio.Path)
	} else {
		log.Info(ctx, "Audio report: none")
	}
	log.Info(ctx, "Processing time: %s", duration)
	log.Info(ctx, "========================================")
}
