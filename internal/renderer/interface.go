package renderer

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// Renderer lays a summary and its detail points out as a paginated report.
type Renderer interface {
	Render(ctx context.Context, summary model.Summary, bullets model.BulletList, ref model.VideoReference) (model.ReportDocument, error)
}
