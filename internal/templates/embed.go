package templates

import (
	"embed"
	"io/fs"
	"path"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

//go:embed stubs/*.stub
var stubFS embed.FS

// stubDir is the embedded directory holding the stubs.
const stubDir = "stubs"

// Store loads stub templates by name.
type Store interface {
	Load(name StubName) (Stub, error)
}

// EmbeddedStore serves the stubs compiled into the binary.
type EmbeddedStore struct {
	fsys fs.FS
}

// NewEmbeddedStore returns a store over the built-in stubs.
func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{fsys: stubFS}
}

// Load implements Store.
func (s *EmbeddedStore) Load(name StubName) (Stub, error) {
	p := path.Join(stubDir, FileName(name))
	content, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return Stub{}, oerrors.NewTemplateMissingError(string(name), []string{string(SourceEmbedded)})
	}
	return Stub{Name: name, Content: string(content), Source: SourceEmbedded, Path: p}, nil
}
