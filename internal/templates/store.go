package templates

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
)

// OverrideStore reads stubs from a user directory and falls back to another
// store when a stub is not overridden.
type OverrideStore struct {
	fs       afero.Fs
	dir      string
	fallback Store
}

// NewOverrideStore returns a store that checks dir first, then fallback.
// A nil fallback means overrides are the only source.
func NewOverrideStore(fs afero.Fs, dir string, fallback Store) *OverrideStore {
	return &OverrideStore{fs: fs, dir: dir, fallback: fallback}
}

// Load implements Store.
func (s *OverrideStore) Load(name StubName) (Stub, error) {
	p := filepath.Join(s.dir, FileName(name))

	content, err := afero.ReadFile(s.fs, p)
	if err == nil {
		output.Debug("using stub override", "stub", name, "path", p)
		return Stub{Name: name, Content: string(content), Source: SourceOverride, Path: p}, nil
	}
	if ok, _ := afero.Exists(s.fs, p); ok {
		return Stub{}, fmt.Errorf("reading stub %s: %w", p, err)
	}

	if s.fallback == nil {
		return Stub{}, oerrors.NewTemplateMissingError(string(name), []string{p})
	}

	stub, err := s.fallback.Load(name)
	if errors.Is(err, oerrors.ErrTemplateMissing) {
		return Stub{}, oerrors.NewTemplateMissingError(string(name), []string{p, string(SourceEmbedded)})
	}
	return stub, err
}

// NewStore builds the stub store: overrides from dir when enabled, then the
// embedded stubs.
func NewStore(fs afero.Fs, overridesEnabled bool, dir string) Store {
	embedded := NewEmbeddedStore()
	if !overridesEnabled {
		return embedded
	}
	return NewOverrideStore(fs, dir, embedded)
}
