package scaffold

import (
	"path/filepath"

	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/module"
)

// Extension is the file suffix of generated classes and probed interfaces.
const Extension = ".php"

// DestinationPath returns <module root>/<repositories dir>/<class>.php.
// It never touches the filesystem.
func DestinationPath(desc module.Descriptor, class string, cfg config.GeneratorConfig) string {
	return filepath.Join(desc.Path, filepath.FromSlash(cfg.RepositoryPath()), class+Extension)
}

// InterfacePath returns <module root>/<interfaces dir>/<interface>.php.
func InterfacePath(desc module.Descriptor, iface string, cfg config.GeneratorConfig) string {
	return filepath.Join(desc.Path, filepath.FromSlash(cfg.InterfacesPath()), iface+Extension)
}
