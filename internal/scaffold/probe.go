package scaffold

import (
	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/fsys"
	"github.com/opmodel/modgen/internal/module"
)

// ProbeResult is the outcome of looking for a repository's interface file.
type ProbeResult struct {
	// Name is the interface name that was probed.
	Name string

	// Path is where the interface file is expected.
	Path string

	// Namespace is the fully-qualified name the interface would have. It is
	// computed whether or not the file exists.
	Namespace string

	// Exists reports whether Path exists.
	Exists bool
}

// Binding returns the interface variant the placeholders are built from.
func (r ProbeResult) Binding() InterfaceBinding {
	if !r.Exists {
		return WithoutInterface{}
	}
	return WithInterface{Namespace: r.Namespace, Name: r.Name}
}

// Probe checks for interface files.
type Probe struct {
	fs  fsys.Exister
	cfg config.GeneratorConfig
}

// NewProbe creates a probe using fs for existence checks.
func NewProbe(fs fsys.Exister, cfg config.GeneratorConfig) *Probe {
	return &Probe{fs: fs, cfg: cfg}
}

// Probe looks for the interface named iface in the module. It performs a
// single existence check and reads no file content.
func (p *Probe) Probe(desc module.Descriptor, iface string) ProbeResult {
	path := InterfacePath(desc, iface, p.cfg)
	ns := ModuleNamespace(p.cfg.RootNamespace, desc.StudlyName, p.cfg.InterfacesNamespace()) + `\` + iface

	return ProbeResult{
		Name:      iface,
		Path:      path,
		Namespace: ns,
		Exists:    p.fs.Exists(path),
	}
}
