// Package testutil provides test helpers for modgen tests.
package testutil

import (
	"fmt"
	"path"
	"testing"

	"github.com/spf13/afero"
)

// ModulesFS returns an in-memory filesystem with one module per name under
// root. Each module gets a module.json carrying its name.
func ModulesFS(t *testing.T, root string, names ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, name := range names {
		WriteFile(t, fs, path.Join(root, name, "module.json"), fmt.Sprintf(`{"name": %q}`, name))
	}
	return fs
}

// WriteFile writes content to p on fs, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, p, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", p, err)
	}
}

// ReadFile returns the content of p on fs.
func ReadFile(t *testing.T, fs afero.Fs, p string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, p)
	if err != nil {
		t.Fatalf("failed to read %s: %v", p, err)
	}
	return string(data)
}
