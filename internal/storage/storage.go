// Package storage writes captured images to disk and builds the default
// output locations.
package storage

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/winsnap/winsnap/internal/imaging"
)

const timestampLayout = "20060102_150405.000000000"

// WriteError reports that an output file could not be produced.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DefaultPath builds the auto-generated destination for a capture taken
// at now: <dir>/winsnap/winsnap_<timestamp>.<ext>. An empty dir falls
// back to the system temp directory. The nanosecond timestamp keeps
// rapid consecutive captures from colliding.
func DefaultPath(dir, format string, now time.Time) string {
	if dir == "" {
		dir = os.TempDir()
	}
	name := fmt.Sprintf("winsnap_%s.%s", now.Format(timestampLayout), format)
	return filepath.Join(dir, "winsnap", name)
}

// Save encodes img to path, creating parent directories as needed.
// Existing files are overwritten without prompting. The returned path is
// absolute.
func Save(img image.Image, path, format string, quality int) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		return "", &WriteError{Path: abs, Err: errors.New("is a directory")}
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0750); err != nil {
		return "", &WriteError{Path: abs, Err: err}
	}
	f, err := os.Create(abs)
	if err != nil {
		return "", &WriteError{Path: abs, Err: err}
	}
	defer f.Close()
	if err := imaging.Encode(f, img, format, quality); err != nil {
		os.Remove(abs)
		return "", &WriteError{Path: abs, Err: err}
	}
	return abs, nil
}
