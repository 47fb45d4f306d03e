package model

import (
	"strings"
	"time"
)

// VideoReference identifies a remote video, either as a URL or a bare ID.
type VideoReference string

// Transcript is the flattened caption text of one video.
type Transcript string

// Summary is the prose summary produced from a Transcript.
type Summary string

// BulletList holds detail points in presentation order.
type BulletList []string

// SplitBullets turns a raw model response into a BulletList. Blank lines are
// dropped, everything else keeps its original order and text.
func SplitBullets(raw string) BulletList {
	var out BulletList
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// String joins the list back into newline separated text.
func (b BulletList) String() string {
	return strings.Join(b, "\n")
}

// ReportDocument is a rendered report on local storage.
type ReportDocument struct {
	Path        string
	DocxPath    string
	GeneratedAt time.Time
	Pages       int
}

// AudioArtifact is a narrated rendition of a ReportDocument.
type AudioArtifact struct {
	Path      string
	Format    string
	Size      int64
	CreatedAt time.Time
}

// PipelineResult aggregates everything a successful run produced.
// Audio is nil when narration failed and the failure was tolerated; AudioErr
// then carries the cause.
type PipelineResult struct {
	RunID     string
	Reference VideoReference
	Summary   Summary
	Bullets   BulletList
	Document  ReportDocument
	Audio     *AudioArtifact
	AudioErr  error
	State     State
	Duration  time.Duration
}
