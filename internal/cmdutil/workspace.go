package cmdutil

import (
	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/fsys"
	"github.com/opmodel/modgen/internal/module"
	"github.com/opmodel/modgen/internal/scaffold"
	"github.com/opmodel/modgen/internal/templates"
)

// NewRegistry returns the module registry rooted at the configured modules path.
func NewRegistry(gc *cmdtypes.GlobalConfig) *module.Registry {
	cfg := gc.Settings()
	return module.NewRegistry(gc.Filesystem(), cfg.Modules.Path)
}

// NewStubStore returns the stub store, honouring the configured override directory.
func NewStubStore(gc *cmdtypes.GlobalConfig) templates.Store {
	cfg := gc.Settings()
	return templates.NewStore(gc.Filesystem(), cfg.Stubs.Enabled, cfg.Stubs.Path)
}

// NewRenderer returns the stub renderer. stubs.strict: false selects the
// lenient mode.
func NewRenderer(gc *cmdtypes.GlobalConfig) *templates.Renderer {
	r := templates.NewRenderer(NewStubStore(gc))
	if !gc.Settings().Stubs.IsStrict() {
		return r.WithMode(templates.Lenient)
	}
	return r
}

// NewGenerator wires a repository generator from the global configuration.
func NewGenerator(gc *cmdtypes.GlobalConfig) *scaffold.Generator {
	cfg := gc.Settings()
	return scaffold.NewGenerator(
		NewRegistry(gc),
		fsys.New(gc.Filesystem()),
		NewRenderer(gc),
		cfg.Resolve(),
	)
}
