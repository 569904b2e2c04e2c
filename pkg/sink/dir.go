package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/standings/pkg/errors"
)

// DefaultDir is used when no output directory is configured.
const DefaultDir = "."

// Dir writes each image to a file in a local directory.
//
// Files are written to a temporary name and renamed into place, so a reader
// never sees a half-written image.
type Dir struct {
	baseDir string
}

// NewDir creates the directory if needed and returns a sink rooted there.
// An empty dir selects [DefaultDir].
func NewDir(dir string) (*Dir, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Dir{baseDir: dir}, nil
}

// Path returns the output directory.
func (d *Dir) Path() string { return d.baseDir }

// Save writes data to name inside the directory.
func (d *Dir) Save(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateFileName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.CreateTemp(d.baseDir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(d.baseDir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// Close is a no-op.
func (d *Dir) Close() error { return nil }

var _ Sink = (*Dir)(nil)
