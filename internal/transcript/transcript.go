package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// Fetch downloads the caption track in the configured language and joins
// its segments with single spaces in their original order.
func (s *implSource) Fetch(ctx context.Context, ref model.VideoReference) (model.Transcript, error) {
	text, err := s.fetch(ctx, ref)
	if err != nil {
		s.logger.Error(ctx, "Error getting transcript: %v", err)
		return "", fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	return text, nil
}

func (s *implSource) fetch(ctx context.Context, ref model.VideoReference) (model.Transcript, error) {
	id := s.ResolveIdentifier(ref)
	if id == "" {
		return "", fmt.Errorf("cannot resolve video id from %q", ref)
	}

	s.logger.Info(ctx, "Fetching transcript for video %s (lang=%s)", id, s.language)

	video, err := s.client.GetVideoContext(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get video %s: %w", id, err)
	}
	if len(video.CaptionTracks) == 0 {
		return "", fmt.Errorf("video %s has no captions", id)
	}

	segments, err := s.client.GetTranscriptCtx(ctx, video, s.language)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return "", fmt.Errorf("captions disabled for video %s: %w", id, err)
		}
		return "", fmt.Errorf("get transcript %s: %w", id, err)
	}

	text := Join(segments)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("video %s returned an empty transcript", id)
	}

	s.logger.Info(ctx, "Transcript loaded: %d segments, %d characters", len(segments), len(text))
	return model.Transcript(text), nil
}

// Join concatenates segment texts with single spaces.
func Join(segments youtube.VideoTranscript) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, " ")
}
