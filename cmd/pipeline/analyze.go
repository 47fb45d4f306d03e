package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze one YouTube video",
	Long: `Fetch the transcript of a YouTube video, summarize it, write a PDF report
and narrate the report to an audio file.

Usage:
  pipeline analyze https://www.youtube.com/watch?v=dQw4w9WgXcQ
  pipeline analyze dQw4w9WgXcQ
  pipeline analyze                 # asks for the URL interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.flushMetrics(ctx)

	var ref model.VideoReference
	if len(args) > 0 {
		ref = model.VideoReference(args[0])
	} else {
		ref, err = promptReference(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	result, err := a.proc.Process(ctx, ref)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}
