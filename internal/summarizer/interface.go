package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// Summarizer turns transcripts into summaries and detail points with an LLM.
type Summarizer interface {
	Summarize(ctx context.Context, transcript model.Transcript) (model.Summary, error)
	// DetailPoints returns the raw model response; callers split it into lines.
	DetailPoints(ctx context.Context, summary model.Summary) (string, error)
}
