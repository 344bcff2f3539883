package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrConflict is returned when a destination exists with different content
// under ConflictFail.
var ErrConflict = errors.New("file already exists")

// ConflictPolicy decides what happens when a destination file already
// exists with different content.
type ConflictPolicy int

const (
	// ConflictFail aborts generation.
	ConflictFail ConflictPolicy = iota
	// ConflictSkip keeps the existing file.
	ConflictSkip
	// ConflictOverwrite replaces the existing file.
	ConflictOverwrite
)

// WriteStatus reports what a Write call did.
type WriteStatus int

const (
	StatusCreated WriteStatus = iota
	StatusOverwritten
	StatusSkipped
	StatusIdentical
)

// String returns the label printed next to each file.
func (s WriteStatus) String() string {
	switch s {
	case StatusCreated:
		return "create"
	case StatusOverwritten:
		return "force"
	case StatusSkipped:
		return "skip"
	case StatusIdentical:
		return "identical"
	default:
		return "unknown"
	}
}

// Writer persists rendered files. Paths are slash-separated and relative to
// the output root.
type Writer interface {
	MkdirAll(dir string) error
	Write(path string, data []byte) (WriteStatus, error)
}

// FSWriter writes into Root on an afero filesystem.
type FSWriter struct {
	Fs     afero.Fs
	Root   string
	Policy ConflictPolicy
}

// NewFSWriter returns a writer rooted at root on the OS filesystem.
func NewFSWriter(root string, policy ConflictPolicy) *FSWriter {
	return &FSWriter{Fs: afero.NewOsFs(), Root: root, Policy: policy}
}

func (w *FSWriter) abs(p string) string {
	return filepath.Join(w.Root, filepath.FromSlash(p))
}

// MkdirAll creates dir and any missing parents. Existing directories are
// left alone.
func (w *FSWriter) MkdirAll(dir string) error {
	if err := w.Fs.MkdirAll(w.abs(dir), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Write stores data at path. Identical existing content is never rewritten.
func (w *FSWriter) Write(path string, data []byte) (WriteStatus, error) {
	target := w.abs(path)

	existing, err := afero.ReadFile(w.Fs, target)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			return StatusIdentical, nil
		}
		switch w.Policy {
		case ConflictSkip:
			return StatusSkipped, nil
		case ConflictOverwrite:
			if err := w.writeFile(target, data); err != nil {
				return 0, err
			}
			return StatusOverwritten, nil
		default:
			return 0, fmt.Errorf("%w: %s (use --force to overwrite or --skip-existing to keep it)", ErrConflict, path)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := w.writeFile(target, data); err != nil {
			return 0, err
		}
		return StatusCreated, nil
	default:
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
}

func (w *FSWriter) writeFile(target string, data []byte) error {
	if err := w.Fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(w.Fs, target, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// ReadFile returns the content at path, for post-generation checks.
func (w *FSWriter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(w.Fs, w.abs(path))
}
