// Package fsys provides the two filesystem capabilities the generator needs:
// an existence check and a write that creates parent directories.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

// Exister reports whether a path exists.
type Exister interface {
	Exists(path string) bool
}

// Writer writes string content to a path, creating parent directories.
type Writer interface {
	// Write writes content to path. Without force an existing file is an error.
	// It reports whether an existing file was replaced.
	Write(path, content string, force bool) (overwritten bool, err error)
}

// FS implements Exister and Writer over an afero filesystem.
type FS struct {
	fs afero.Fs
}

// New returns an FS backed by fs.
func New(fs afero.Fs) *FS {
	return &FS{fs: fs}
}

// Exists reports whether path exists. Stat errors other than not-exist
// (permissions, I/O) are treated as absent.
func (f *FS) Exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	return err == nil && ok
}

// Write writes content to path.
func (f *FS) Write(path, content string, force bool) (bool, error) {
	existed := f.Exists(path)
	if existed && !force {
		return false, oerrors.NewValidationError(
			"file already exists",
			path,
			"",
			"Use --force to overwrite the existing file.",
		)
	}

	dir := filepath.Dir(path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return false, writeError(fmt.Sprintf("creating directory %s", dir), dir, err)
	}

	if err := afero.WriteFile(f.fs, path, []byte(content), 0o644); err != nil {
		return false, writeError("writing file", path, err)
	}

	return existed, nil
}

func writeError(msg, path string, err error) error {
	if os.IsPermission(err) {
		return oerrors.NewPermissionError(msg, path, "Check the directory permissions.")
	}
	return fmt.Errorf("%s %s: %w", msg, path, err)
}
