package watcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// DoneSuffix is appended to a job file once every reference in it was handled.
const DoneSuffix = ".done"

// Start handles job files already present in the input directory, then
// monitors it for new ones until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Job watcher started. Monitoring: %s", w.inputDir)
	w.logger.Info(ctx, "Supported job files: .url, .txt (one video reference per line)")

	if err := w.processExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Job watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isJobFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-job file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New job file detected: %s", event.Name)

			// Let the writer finish before reading
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := w.processJob(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process job %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) processExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !isJobFile(e.Name()) {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		path := filepath.Join(w.inputDir, e.Name())
		if err := w.processJob(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process job %s: %v", path, err)
		}
	}
	return nil
}

// processJob runs every reference in the job file in order and marks the file done.
// A failing reference is logged and does not stop the rest of the job.
func (w *implWatcher) processJob(ctx context.Context, path string) error {
	refs, err := readReferences(path)
	if err != nil {
		return err
	}

	w.logger.Info(ctx, "Job %s: %d reference(s)", filepath.Base(path), len(refs))

	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.logger.Info(ctx, "Job %s: [%d/%d] %s", filepath.Base(path), i+1, len(refs), ref)
		if err := w.handler(ctx, ref); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", ref, err)
		}
	}

	if err := os.Rename(path, path+DoneSuffix); err != nil {
		return fmt.Errorf("mark job done: %w", err)
	}
	return nil
}

// readReferences returns the non-blank lines of a job file that are not comments.
func readReferences(path string) ([]model.VideoReference, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("job file vanished: %w", err)
		}
		return nil, fmt.Errorf("open job file: %w", err)
	}
	defer f.Close()

	var refs []model.VideoReference
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, model.VideoReference(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return refs, nil
}

// isJobFile checks if the file has a supported job extension
func isJobFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".url", ".txt":
		return true
	}
	return false
}
