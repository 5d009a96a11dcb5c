package scaffold

import (
	"context"

	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/fsys"
	"github.com/opmodel/modgen/internal/module"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// FS is the filesystem the generator probes and writes through.
type FS interface {
	fsys.Exister
	fsys.Writer
}

// Request describes one repository to generate.
type Request struct {
	// Name is the raw class name as typed by the user.
	Name string

	// Module is the module identifier. Empty means the stored used module.
	Module string

	// Invokable selects the invokable stub.
	Invokable bool

	// Force allows overwriting an existing file.
	Force bool
}

// Result describes a generated (or rendered) repository.
type Result struct {
	Names     Names
	Module    module.Descriptor
	Stub      templates.StubName
	Path      string
	Interface ProbeResult
	Content   string

	// Placeholders are the values substituted into the stub.
	Placeholders templates.Placeholders

	// Written is set once Content has been persisted.
	Written bool

	// Overwritten is set when an existing file was replaced.
	Overwritten bool
}

// Generator renders repository classes and writes them into modules.
type Generator struct {
	modules  module.Resolver
	fs       FS
	renderer *templates.Renderer
	cfg      config.GeneratorConfig
}

// NewGenerator creates a generator.
func NewGenerator(modules module.Resolver, fs FS, renderer *templates.Renderer, cfg config.GeneratorConfig) *Generator {
	return &Generator{modules: modules, fs: fs, renderer: renderer, cfg: cfg}
}

// Render runs every stage except the write. Nothing is persisted.
func (g *Generator) Render(req Request) (*Result, error) {
	names, err := ResolveNames(req.Name)
	if err != nil {
		return nil, err
	}

	desc, err := g.modules.Resolve(req.Module)
	if err != nil {
		return nil, err
	}

	dest := DestinationPath(desc, names.Class, g.cfg)
	stub := templates.SelectStub(req.Invokable)

	probe := NewProbe(g.fs, g.cfg).Probe(desc, names.Interface)
	output.Debug("probed repository interface",
		"interface", probe.Name,
		"path", probe.Path,
		"exists", probe.Exists)

	placeholders := BuildPlaceholders(names, ClassNamespace(desc, g.cfg), probe.Binding())

	content, err := g.renderer.Render(stub, placeholders)
	if err != nil {
		return nil, err
	}

	output.Debug("rendered repository",
		"class", names.Class,
		"module", desc.Name,
		"stub", stub,
		"path", dest)

	return &Result{
		Names:        names,
		Module:       desc,
		Stub:         stub,
		Path:         dest,
		Interface:    probe,
		Content:      content,
		Placeholders: placeholders,
	}, nil
}

// Generate renders the repository and writes it to its destination path.
// The document is fully rendered before anything is written.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	res, err := g.Render(req)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	overwritten, err := g.fs.Write(res.Path, res.Content, req.Force)
	if err != nil {
		return nil, err
	}
	res.Written = true
	res.Overwritten = overwritten

	return res, nil
}
