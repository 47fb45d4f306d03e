package summarizer

import (
	"github.com/nguyentantai21042004/video-digest/internal/gemini"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type implSummarizer struct {
	models      gemini.ContentGenerator
	logger      logger.Logger
	model       string
	bulletCount int
}

// New creates a Summarizer that sends prompts to model through models.
func New(models gemini.ContentGenerator, model string, bulletCount int, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if bulletCount <= 0 {
		bulletCount = 50
	}
	return &implSummarizer{
		models:      models,
		logger:      log,
		model:       model,
		bulletCount: bulletCount,
	}
}
