package module

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/naming"
	"github.com/opmodel/modgen/internal/output"
)

// usedFile stores the module used when none is given on the command line.
const usedFile = ".modgen_used"

// Registry discovers modules as direct subdirectories of a root directory
// that contain a module.json.
type Registry struct {
	fs   afero.Fs
	root string
}

// NewRegistry creates a registry rooted at root.
func NewRegistry(fs afero.Fs, root string) *Registry {
	return &Registry{fs: fs, root: root}
}

// Root returns the modules root directory.
func (r *Registry) Root() string {
	return r.root
}

// All returns every discovered module sorted by priority, then name.
// A missing root directory yields no modules. A module whose manifest cannot
// be decoded is skipped with a warning.
func (r *Registry) All() ([]Descriptor, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		if ok, _ := afero.DirExists(r.fs, r.root); !ok {
			return nil, nil
		}
		return nil, fmt.Errorf("reading modules directory %s: %w", r.root, err)
	}

	var mods []Descriptor
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		desc, ok, err := r.load(e.Name())
		if err != nil {
			if errors.Is(err, oerrors.ErrValidation) {
				output.Warn("skipping module", "dir", e.Name(), "err", err)
				continue
			}
			return nil, err
		}
		if ok {
			mods = append(mods, desc)
		}
	}

	sort.SliceStable(mods, func(i, j int) bool {
		if mods[i].Manifest.Priority != mods[j].Manifest.Priority {
			return mods[i].Manifest.Priority < mods[j].Manifest.Priority
		}
		return mods[i].Name < mods[j].Name
	})
	return mods, nil
}

// Find returns the module whose directory or manifest name matches name,
// ignoring case. The snake_case form of the name also matches, so user_admin
// finds UserAdmin.
func (r *Registry) Find(name string) (Descriptor, error) {
	mods, err := r.All()
	if err != nil {
		return Descriptor{}, err
	}

	for _, m := range mods {
		if strings.EqualFold(m.Name, name) || strings.EqualFold(filepath.Base(m.Path), name) {
			return m, nil
		}
	}
	snake := strcase.ToSnake(name)
	for _, m := range mods {
		if snake != "" && snake == m.SnakeName {
			return m, nil
		}
	}

	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name)
	}
	hint := fmt.Sprintf("No modules found under %s.", r.root)
	if len(names) > 0 {
		hint = "Available modules: " + strings.Join(names, ", ")
	}
	return Descriptor{}, oerrors.NewNotFoundError(fmt.Sprintf("module %q not found", name), r.root, hint)
}

// Resolve implements Resolver. An empty identifier falls back to the used module.
func (r *Registry) Resolve(identifier string) (Descriptor, error) {
	if identifier == "" {
		used, err := r.UsedNow()
		if err != nil {
			return Descriptor{}, err
		}
		if used == "" {
			return Descriptor{}, oerrors.NewValidationError(
				"no module specified",
				"",
				"module",
				"Pass the module name or select one with 'modgen module:use <module>'.",
			)
		}
		output.Debug("using stored module", "module", used)
		identifier = used
	}
	return r.Find(identifier)
}

// Use stores name as the module used when none is given.
func (r *Registry) Use(name string) (Descriptor, error) {
	desc, err := r.Find(name)
	if err != nil {
		return Descriptor{}, err
	}
	if err := afero.WriteFile(r.fs, r.usedPath(), []byte(desc.Name), 0o644); err != nil {
		return Descriptor{}, fmt.Errorf("storing used module: %w", err)
	}
	return desc, nil
}

// UsedNow returns the stored module name, or "" when none is stored.
func (r *Registry) UsedNow() (string, error) {
	data, err := afero.ReadFile(r.fs, r.usedPath())
	if err != nil {
		if ok, _ := afero.Exists(r.fs, r.usedPath()); !ok {
			return "", nil
		}
		return "", fmt.Errorf("reading used module: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ForgetUsed clears the stored module. Clearing when none is stored is a no-op.
func (r *Registry) ForgetUsed() error {
	if ok, _ := afero.Exists(r.fs, r.usedPath()); !ok {
		return nil
	}
	if err := r.fs.Remove(r.usedPath()); err != nil {
		return fmt.Errorf("clearing used module: %w", err)
	}
	return nil
}

func (r *Registry) usedPath() string {
	return filepath.Join(r.root, usedFile)
}

// load reads dir/module.json. Directories without a manifest are skipped.
func (r *Registry) load(dir string) (Descriptor, bool, error) {
	modPath := filepath.Join(r.root, dir)
	manifestPath := filepath.Join(modPath, ManifestFile)

	data, err := afero.ReadFile(r.fs, manifestPath)
	if err != nil {
		if ok, _ := afero.Exists(r.fs, manifestPath); !ok {
			return Descriptor{}, false, nil
		}
		return Descriptor{}, false, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Descriptor{}, false, oerrors.NewValidationError(
			fmt.Sprintf("invalid module manifest: %v", err),
			manifestPath,
			"",
			"",
		)
	}
	if m.Name == "" {
		m.Name = dir
	}

	return Descriptor{
		Name:       m.Name,
		StudlyName: naming.Studly(m.Name),
		SnakeName:  strcase.ToSnake(m.Name),
		Path:       modPath,
		Manifest:   m,
	}, true, nil
}
