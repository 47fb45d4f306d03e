package transcript

import (
	"context"
	"errors"

	"github.com/kkdai/youtube/v2"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// ErrTranscriptUnavailable wraps every failure to obtain a transcript.
var ErrTranscriptUnavailable = errors.New("transcript unavailable")

// Source resolves video references and fetches their transcripts.
type Source interface {
	ResolveIdentifier(ref model.VideoReference) string
	Fetch(ctx context.Context, ref model.VideoReference) (model.Transcript, error)
}

// VideoClient is the subset of *youtube.Client the source depends on.
type VideoClient interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}
