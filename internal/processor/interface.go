package processor

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// Processor defines the interface for running the video analysis pipeline
type Processor interface {
	// Process runs every stage for ref. On a fatal failure it returns a nil
	// result and a *StageError naming the stage.
	Process(ctx context.Context, ref model.VideoReference) (*model.PipelineResult, error)
}
