package narrator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/model"
)

const filePrefix = "analysis_audio"

// Synthesize narrates doc into <outputDir>/analysis_audio_<timestamp>.<ext>.
func (n *implNarrator) Synthesize(ctx context.Context, doc model.ReportDocument) (model.AudioArtifact, error) {
	audio, err := n.synthesize(ctx, doc)
	if err != nil {
		n.logger.Error(ctx, "Error creating audio: %v", err)
		return model.AudioArtifact{}, fmt.Errorf("%w: %w", ErrAudioSynthesisFailed, err)
	}
	return audio, nil
}

func (n *implNarrator) synthesize(ctx context.Context, doc model.ReportDocument) (model.AudioArtifact, error) {
	if err := os.MkdirAll(n.outputDir, 0755); err != nil {
		return model.AudioArtifact{}, fmt.Errorf("create audio dir: %w", err)
	}

	text, err := n.ExtractText(ctx, doc)
	if err != nil {
		return model.AudioArtifact{}, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return model.AudioArtifact{}, fmt.Errorf("report %s has no text", doc.Path)
	}

	createdAt := n.now()
	ext := n.speaker.Extension()
	path, err := artifact.UniquePath(n.outputDir, filePrefix, ext, createdAt)
	if err != nil {
		return model.AudioArtifact{}, err
	}

	n.logger.Info(ctx, "Converting text to speech...")
	if err := n.speaker.Speak(ctx, text, path); err != nil {
		return model.AudioArtifact{}, fmt.Errorf("speak: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.AudioArtifact{}, fmt.Errorf("stat audio: %w", err)
	}

	n.logger.Info(ctx, "Audio file saved as: %s", path)
	return model.AudioArtifact{
		Path:      path,
		Format:    ext,
		Size:      info.Size(),
		CreatedAt: createdAt,
	}, nil
}
