package renderer

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 10
)

// writePDF lays content out on A4 pages: title page with the summary, then the
// detail points starting on a fresh page.
func writePDF(path string, content reportContent, generatedAt time.Time) (int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(content.title, true)
	pdf.SetCreator("video-digest", true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, lineHeight, winAnsi(content.title), "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, lineHeight, winAnsi("Generated on: "+content.generatedAt), "", 1, "", false, 0, "")
	pdf.CellFormat(0, lineHeight, winAnsi("Video Link: "+content.reference), "", 1, "", false, 0, "")

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, lineHeight, summaryHeading, "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, lineHeight, winAnsi(content.summary), "", "", false)

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, lineHeight, bulletsHeading, "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, point := range content.bullets {
		pdf.MultiCell(0, lineHeight, winAnsi(point), "", "", false)
	}

	if err := pdf.Error(); err != nil {
		return 0, err
	}

	pages := pdf.PageCount()
	err := artifact.WriteFile(path, func(w io.WriteSeeker) error {
		return pdf.Output(w)
	})
	if err != nil {
		return 0, err
	}
	return pages, nil
}
