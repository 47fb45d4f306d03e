package transcript

import (
	"context"
	"errors"
	"testing"

	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/model"
)

type fakeClient struct {
	video         *youtube.Video
	videoErr      error
	segments      youtube.VideoTranscript
	transcriptErr error

	gotID   string
	gotLang string
}

func (f *fakeClient) GetVideoContext(ctx context.Context, id string) (*youtube.Video, error) {
	f.gotID = id
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	return f.video, nil
}

func (f *fakeClient) GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error) {
	f.gotLang = lang
	if f.transcriptErr != nil {
		return nil, f.transcriptErr
	}
	return f.segments, nil
}

func captioned() *youtube.Video {
	return &youtube.Video{
		ID:            "dQw4w9WgXcQ",
		CaptionTracks: []youtube.CaptionTrack{{LanguageCode: "en"}},
	}
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL1", "dQw4w9WgXcQ"},
		{"watch url param not first", "https://youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mobile watch url", "m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url with query", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ"},
		{"short url without scheme", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts path", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed path", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare id with whitespace", "  dQw4w9WgXcQ\n", "dQw4w9WgXcQ"},
		{"unknown youtube path passes through", "https://www.youtube.com/channel/UC123", "https://www.youtube.com/channel/UC123"},
		{"other host passes through", "https://vimeo.com/12345", "https://vimeo.com/12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIdentifier(model.VideoReference(tt.ref)))
		})
	}
}

func TestFetchJoinsSegmentsInOrder(t *testing.T) {
	client := &fakeClient{
		video: captioned(),
		segments: youtube.VideoTranscript{
			{Text: "never gonna", StartMs: 0, Duration: 1000},
			{Text: "give you up", StartMs: 1000, Duration: 1000},
			{Text: "never gonna let you down", StartMs: 2000, Duration: 1500},
		},
	}
	src := New(client, "en", logger.Nop())

	got, err := src.Fetch(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1")
	require.NoError(t, err)

	assert.Equal(t, model.Transcript("never gonna give you up never gonna let you down"), got)
	assert.Equal(t, "dQw4w9WgXcQ", client.gotID)
	assert.Equal(t, "en", client.gotLang)
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		client *fakeClient
	}{
		{
			name:   "no captions",
			ref:    "dQw4w9WgXcQ",
			client: &fakeClient{video: &youtube.Video{ID: "dQw4w9WgXcQ"}},
		},
		{
			name:   "captions disabled",
			ref:    "dQw4w9WgXcQ",
			client: &fakeClient{video: captioned(), transcriptErr: youtube.ErrTranscriptDisabled},
		},
		{
			name:   "remote error",
			ref:    "dQw4w9WgXcQ",
			client: &fakeClient{videoErr: errors.New("connection reset")},
		},
		{
			name:   "empty transcript",
			ref:    "dQw4w9WgXcQ",
			client: &fakeClient{video: captioned(), segments: youtube.VideoTranscript{{Text: " "}}},
		},
		{
			name:   "unresolvable reference",
			ref:    "   ",
			client: &fakeClient{video: captioned()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := New(tt.client, "en", logger.Nop())

			var got model.Transcript
			var err error
			assert.NotPanics(t, func() {
				got, err = src.Fetch(context.Background(), model.VideoReference(tt.ref))
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTranscriptUnavailable)
			assert.Empty(t, got)
		})
	}
}

func TestFetchKeepsCause(t *testing.T) {
	src := New(&fakeClient{video: captioned(), transcriptErr: youtube.ErrTranscriptDisabled}, "de", logger.Nop())

	_, err := src.Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, youtube.ErrTranscriptDisabled)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "a", Join(youtube.VideoTranscript{{Text: "a"}}))
	assert.Equal(t, "a b", Join(youtube.VideoTranscript{{Text: "a"}, {Text: "b"}}))
}
