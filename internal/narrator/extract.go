package narrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

var errEmptyPDFPath = errors.New("pdf path is empty")

// ExtractText returns the plain text of every page of doc, in page order.
// Lines end with "\n" so words on either side of a wrap stay apart.
func (n *implNarrator) ExtractText(ctx context.Context, doc model.ReportDocument) (string, error) {
	if doc.Path == "" {
		return "", errEmptyPDFPath
	}

	file, reader, err := pdf.Open(doc.Path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}

	n.logger.Debug(ctx, "Extracted %d characters from %d pages of %s", b.Len(), reader.NumPage(), doc.Path)
	return b.String(), nil
}

// pageText rebuilds a page's text from its positioned glyphs in content
// stream order. A change of baseline starts a new line; a horizontal jump
// between two glyphs on the same line becomes a space.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()

	var (
		b    strings.Builder
		prev pdf.Text
		seen bool
	)
	for _, glyph := range page.Content().Text {
		if seen {
			switch {
			case newLine(prev, glyph):
				b.WriteByte('\n')
			case wordGap(prev, glyph):
				b.WriteByte(' ')
			}
		}
		b.WriteString(glyph.S)
		prev, seen = glyph, true
	}
	return b.String(), nil
}

func newLine(prev, cur pdf.Text) bool {
	return math.Abs(prev.Y-cur.Y) > math.Max(prev.FontSize, cur.FontSize)/2
}

func wordGap(prev, cur pdf.Text) bool {
	if prev.S == " " || cur.S == " " {
		return false
	}
	gap := cur.X - (prev.X + prev.W)
	return gap > cur.FontSize/4 || cur.X < prev.X
}
