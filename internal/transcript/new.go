package transcript

import (
	"github.com/kkdai/youtube/v2"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

type implSource struct {
	client   VideoClient
	language string
	logger   logger.Logger
}

// New creates a Source backed by client. A nil client uses a default
// *youtube.Client.
func New(client VideoClient, language string, log logger.Logger) Source {
	if client == nil {
		client = &youtube.Client{}
	}
	if language == "" {
		language = "en"
	}
	return &implSource{
		client:   client,
		language: language,
		logger:   log,
	}
}
