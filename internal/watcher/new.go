package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir    string
	handler     ReferenceHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// New creates a new Watcher over inputDir. Job files are handled one at a time.
func New(inputDir string, handler ReferenceHandler, log logger.Logger) (Watcher, error) {
	return newWatcher(inputDir, handler, defaultSettleDelay, log)
}

func newWatcher(inputDir string, handler ReferenceHandler, settle time.Duration, log logger.Logger) (*implWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: settle,
	}, nil
}
