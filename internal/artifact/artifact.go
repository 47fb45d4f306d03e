// Package artifact names and writes generated files. Writes go through a
// pending file so a reader never observes a half written artifact.
package artifact

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
)

// TimestampLayout is the timestamp embedded in every artifact name.
const TimestampLayout = "20060102_150405"

// Name returns "<prefix>_<timestamp>.<ext>".
func Name(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format(TimestampLayout), strings.TrimPrefix(ext, "."))
}

// UniquePath returns a path in dir for Name(prefix, ext, t) that does not exist
// yet. When the plain name is taken, "_2", "_3", ... is appended before the
// extension.
func UniquePath(dir, prefix, ext string, t time.Time) (string, error) {
	base := Name(prefix, ext, t)
	candidate := filepath.Join(dir, base)

	dot := filepath.Ext(base)
	stem := strings.TrimSuffix(base, dot)

	for i := 2; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, dot))
	}
}

// WriteFile streams an artifact into path through write.
func WriteFile(path string, write func(w io.WriteSeeker) error) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pendingFile.Cleanup()

	if err := write(pendingFile); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

// WriteFileByPath is WriteFile for producers that insist on opening the
// destination by name themselves (external binaries, libraries exposing only
// SaveTo). They receive the pending file's path.
func WriteFileByPath(path string, write func(tmpPath string) error) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pendingFile.Cleanup()

	if err := write(pendingFile.Name()); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
