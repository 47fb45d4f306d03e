package narrator

import (
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type implNarrator struct {
	speaker   Speaker
	outputDir string
	now       func() time.Time
	logger    logger.Logger
}

// New creates a Narrator that stores audio under outputDir.
func New(speaker Speaker, outputDir string, log logger.Logger) Narrator {
	return newNarrator(speaker, outputDir, time.Now, log)
}

func newNarrator(speaker Speaker, outputDir string, now func() time.Time, log logger.Logger) *implNarrator {
	if outputDir == "" {
		outputDir = "audio_outputs"
	}
	return &implNarrator{
		speaker:   speaker,
		outputDir: outputDir,
		now:       now,
		logger:    log,
	}
}
