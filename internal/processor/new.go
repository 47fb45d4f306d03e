package processor

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/narrator"
	"github.com/nguyentantai21042004/video-digest/internal/renderer"
	"github.com/nguyentantai21042004/video-digest/internal/summarizer"
	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

const tracerName = "github.com/nguyentantai21042004/video-digest/internal/processor"

// Dependencies are the stage implementations a Processor drives.
type Dependencies struct {
	Transcripts transcript.Source
	Summarizer  summarizer.Summarizer
	Renderer    renderer.Renderer
	Narrator    narrator.Narrator
	// Tracer defaults to the global otel tracer.
	Tracer trace.Tracer
}

type implProcessor struct {
	cfg         *config.Config
	transcripts transcript.Source
	summarizer  summarizer.Summarizer
	renderer    renderer.Renderer
	narrator    narrator.Narrator
	tracer      trace.Tracer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Dependencies, log logger.Logger) Processor {
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &implProcessor{
		cfg:         cfg,
		transcripts: deps.Transcripts,
		summarizer:  deps.Summarizer,
		renderer:    deps.Renderer,
		narrator:    deps.Narrator,
		tracer:      tracer,
		logger:      log,
	}
}
