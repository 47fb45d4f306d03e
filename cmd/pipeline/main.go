// pipeline turns a YouTube video into a summarized PDF report and a narrated
// audio version of it.
//
// Usage:
//
//	pipeline analyze [url]       # prompt for the URL when omitted
//	pipeline watch               # process job files dropped into paths.input
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
}

var rootCmd = &cobra.Command{
	Use:           "pipeline",
	Short:         "Summarize YouTube videos into PDF and audio reports",
	Long:          "pipeline fetches a video's transcript, summarizes it with Gemini,\nrenders a PDF report and narrates it to an audio file.",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "config.yaml", "Path to the YAML config file")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
