package renderer

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
)

const (
	docxFont        = "Times New Roman"
	docxBodySize    = 13
	docxHeadingSize = 14
	docxTitleSize   = 16
)

// docxSection is one heading followed by its paragraphs.
type docxSection struct {
	heading    string
	paragraphs []string
}

// span is a run of text with uniform weight.
type span struct {
	text string
	bold bool
}

// writeDocx renders the same sections as the PDF into a Word document.
func writeDocx(path string, content reportContent) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addParagraph(doc, []span{{text: content.title, bold: true}}, docxTitleSize)
	addParagraph(doc, []span{{text: "Generated on: " + content.generatedAt}}, docxBodySize)
	addParagraph(doc, []span{{text: "Video Link: " + content.reference}}, docxBodySize)

	sections := []docxSection{
		{heading: summaryHeading, paragraphs: summaryParagraphs(content.summary)},
		{heading: bulletsHeading, paragraphs: content.bullets},
	}
	for _, sec := range sections {
		addParagraph(doc, []span{{text: sec.heading, bold: true}}, docxHeadingSize)
		for _, para := range sec.paragraphs {
			addParagraph(doc, parseSpans(bulletGlyph(para)), docxBodySize)
		}
	}

	return artifact.WriteFileByPath(path, func(tmpPath string) error {
		return doc.SaveTo(tmpPath)
	})
}

func addParagraph(doc *docx.RootDoc, spans []span, size uint64) {
	p := doc.AddParagraph("")
	for _, s := range spans {
		run := p.AddText(s.text).Font(docxFont).Size(size).Color("000000")
		if s.bold {
			run.Bold(true)
		}
	}
}

// summaryParagraphs splits the summary into non-blank lines; markdown
// heading markers and rules are dropped.
func summaryParagraphs(summary string) []string {
	var out []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line == "" || line == "---" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// bulletGlyph turns a leading "* " or "- " into a bullet character.
func bulletGlyph(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"* ", "- "} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return "• " + strings.TrimSpace(rest)
		}
	}
	return line
}

// parseSpans splits text on "**" pairs into plain and bold runs. An unpaired
// marker is kept as plain text.
func parseSpans(text string) []span {
	text = strings.ReplaceAll(text, "`", "")
	parts := strings.Split(text, "**")
	if len(parts)%2 == 0 {
		last := len(parts) - 1
		parts[last-1] = parts[last-1] + "**" + parts[last]
		parts = parts[:last]
	}

	spans := make([]span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		spans = append(spans, span{text: part, bold: i%2 == 1})
	}
	return spans
}
