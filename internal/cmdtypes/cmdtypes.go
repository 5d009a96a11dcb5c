// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/generate, internal/cmd/module, internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/afero"

	"github.com/opmodel/modgen/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path
	Verbose    bool

	// FS is the filesystem modules are read from and written to.
	// Nil means the OS filesystem.
	FS afero.Fs
}

// Filesystem returns FS, or the OS filesystem when FS is unset.
func (g *GlobalConfig) Filesystem() afero.Fs {
	if g.FS == nil {
		return afero.NewOsFs()
	}
	return g.FS
}

// Settings returns the loaded configuration, or the defaults when nothing has
// been loaded yet.
func (g *GlobalConfig) Settings() *config.Config {
	if g.Config == nil {
		return config.DefaultConfig()
	}
	return g.Config
}
