package narrator

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// ErrAudioSynthesisFailed wraps every failure to narrate a report.
var ErrAudioSynthesisFailed = errors.New("audio synthesis failed")

// Narrator reads a rendered report back and turns it into speech.
type Narrator interface {
	ExtractText(ctx context.Context, doc model.ReportDocument) (string, error)
	Synthesize(ctx context.Context, doc model.ReportDocument) (model.AudioArtifact, error)
}

// Speaker converts text into an audio file at outputPath.
type Speaker interface {
	// Extension is the file extension of the produced audio, without a dot.
	Extension() string
	Speak(ctx context.Context, text, outputPath string) error
}
