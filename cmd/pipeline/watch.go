package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-digest/internal/model"
	"github.com/nguyentantai21042004/video-digest/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process job files dropped into the input directory",
	Long: `Watch paths.input for .url or .txt job files. Every non-blank line that
does not start with '#' is analyzed in order; the job file is then renamed
to <name>.done.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.Paths.Input, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", a.cfg.Paths.Input, err)
	}

	handle := func(ctx context.Context, ref model.VideoReference) error {
		defer a.flushMetrics(ctx)
		result, err := a.proc.Process(ctx, ref)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), result)
		return nil
	}

	w, err := watcher.New(a.cfg.Paths.Input, handle, a.log)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "Video digest is ready!")
	a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.log.Info(ctx, "Reports: %s", a.cfg.Paths.Reports)
	a.log.Info(ctx, "Audio: %s", a.cfg.Paths.Audio)
	a.log.Info(ctx, "Press Ctrl+C to stop")
	a.log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher error: %w", err)
	}

	a.log.Info(context.Background(), "Video digest stopped")
	return nil
}
