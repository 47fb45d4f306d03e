package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/gemini"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/metrics"
	"github.com/nguyentantai21042004/video-digest/internal/narrator"
	"github.com/nguyentantai21042004/video-digest/internal/processor"
	"github.com/nguyentantai21042004/video-digest/internal/renderer"
	"github.com/nguyentantai21042004/video-digest/internal/summarizer"
	"github.com/nguyentantai21042004/video-digest/internal/transcript"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

type app struct {
	cfg  *config.Config
	log  logger.Logger
	proc processor.Processor
}

// resolveConfigPath drops the default config path when the file is absent so
// the pipeline can run from environment variables alone.
func resolveConfigPath(cmd *cobra.Command, path string) string {
	if cmd.Flags().Changed("config") {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(resolveConfigPath(cmd, rootFlags.configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	proc := processor.New(cfg, processor.Dependencies{
		Transcripts: transcript.New(nil, cfg.Transcript.Language, log),
		Summarizer:  summarizer.New(client.Models, cfg.Gemini.Model, cfg.Summarizer.BulletCount, log),
		Renderer: renderer.New(renderer.Options{
			Dir:       cfg.Paths.Reports,
			Title:     cfg.Report.Title,
			WriteDocx: cfg.Report.WriteDocx,
		}, log),
		Narrator: narrator.New(newSpeaker(cfg, client.Models), cfg.Paths.Audio, log),
	}, log)

	return &app{cfg: cfg, log: log, proc: proc}, nil
}

func newSpeaker(cfg *config.Config, models gemini.ContentGenerator) narrator.Speaker {
	if cfg.Narrator.Engine == config.EngineCommand {
		return narrator.NewCommandSpeaker(executor.New(), cfg.Narrator.Command, cfg.Narrator.Args, cfg.Narrator.Extension)
	}
	return narrator.NewGeminiSpeaker(models, cfg.Gemini.TTSModel, cfg.Narrator.Voice, cfg.Narrator.MaxChunkChars)
}

// flushMetrics writes the metrics textfile when one is configured.
func (a *app) flushMetrics(ctx context.Context) {
	if a.cfg.Metrics.Textfile == "" {
		return
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		a.log.Warn(ctx, "Failed to write metrics: %v", err)
	}
}
