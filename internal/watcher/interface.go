package watcher

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// Watcher defines the interface for job directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ReferenceHandler processes one video reference read from a job file
type ReferenceHandler func(ctx context.Context, ref model.VideoReference) error
