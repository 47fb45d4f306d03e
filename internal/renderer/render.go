package renderer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/model"
)

const (
	filePrefix      = "analysis"
	summaryHeading  = "Summary:"
	bulletsHeading  = "Detailed Analysis Points:"
	generatedLayout = "2006-01-02 15:04:05"
)

// Render writes analysis_<timestamp>.pdf and, when enabled, a .docx twin.
func (r *implRenderer) Render(ctx context.Context, summary model.Summary, bullets model.BulletList, ref model.VideoReference) (model.ReportDocument, error) {
	if err := os.MkdirAll(r.opts.Dir, 0755); err != nil {
		return model.ReportDocument{}, fmt.Errorf("create reports dir: %w", err)
	}

	generatedAt := r.opts.Now()
	path, err := artifact.UniquePath(r.opts.Dir, filePrefix, "pdf", generatedAt)
	if err != nil {
		return model.ReportDocument{}, err
	}

	content := reportContent{
		title:       r.opts.Title,
		generatedAt: generatedAt.Format(generatedLayout),
		reference:   string(ref),
		summary:     string(summary),
		bullets:     nonBlank(bullets),
	}

	r.logger.Info(ctx, "Rendering PDF report: %s", path)
	pages, err := writePDF(path, content, generatedAt)
	if err != nil {
		return model.ReportDocument{}, fmt.Errorf("write pdf: %w", err)
	}

	doc := model.ReportDocument{
		Path:        path,
		GeneratedAt: generatedAt,
		Pages:       pages,
	}

	if r.opts.WriteDocx {
		docxPath := strings.TrimSuffix(path, ".pdf") + ".docx"
		if err := writeDocx(docxPath, content); err != nil {
			return model.ReportDocument{}, fmt.Errorf("write docx: %w", err)
		}
		doc.DocxPath = docxPath
		r.logger.Info(ctx, "DOCX companion saved as: %s", docxPath)
	}

	r.logger.Info(ctx, "PDF saved as: %s (%d pages)", path, pages)
	return doc, nil
}

type reportContent struct {
	title       string
	generatedAt string
	reference   string
	summary     string
	bullets     []string
}

func nonBlank(bullets model.BulletList) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}
