package renderer

import (
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// Options configures a Renderer.
type Options struct {
	Dir       string
	Title     string
	WriteDocx bool
	// Now defaults to time.Now.
	Now func() time.Time
}

type implRenderer struct {
	opts   Options
	logger logger.Logger
}

// New creates a Renderer writing into opts.Dir.
func New(opts Options, log logger.Logger) Renderer {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Title == "" {
		opts.Title = "YouTube Video Analysis"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implRenderer{
		opts:   opts,
		logger: log,
	}
}
