package scaffold

import (
	"strings"

	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/module"
)

// ModuleNamespace joins the root namespace, the module's studly name and a
// segment into a backslash-separated namespace. Forward slashes in segment
// are treated as separators; empty parts are skipped.
func ModuleNamespace(root, studlyModule, segment string) string {
	var parts []string
	for _, p := range []string{root, studlyModule, segment} {
		p = strings.Trim(strings.ReplaceAll(p, "/", `\`), `\`)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, `\`)
}

// ClassNamespace returns the namespace generated repositories live in.
func ClassNamespace(desc module.Descriptor, cfg config.GeneratorConfig) string {
	return ModuleNamespace(cfg.RootNamespace, desc.StudlyName, cfg.RepositoryNamespace())
}
