// Package scaffold implements the repository generator: naming, the interface
// probe, placeholder construction, destination paths and the pipeline that
// ties them to the stub renderer.
package scaffold

import (
	"strings"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/naming"
)

// Names holds the canonical class name and the interface name derived from it.
type Names struct {
	// Class is the StudlyCase class name without namespace.
	Class string

	// Interface is Class with its first "Repository" replaced by
	// "RepositoryInterface", or Class unchanged when it has none.
	Interface string
}

// ResolveNames canonicalizes a raw class name and derives the interface name.
func ResolveNames(raw string) (Names, error) {
	class := Canonicalize(raw)
	if class == "" {
		return Names{}, oerrors.NewValidationError(
			"class name cannot be empty",
			"",
			"name",
			"Pass a class name such as OrderRepository.",
		)
	}
	return Names{Class: class, Interface: InterfaceName(class)}, nil
}

// Canonicalize returns raw as a StudlyCase class name. Any namespace prefix
// (up to the last / or \) is dropped. It is idempotent.
func Canonicalize(raw string) string {
	base := strings.TrimSpace(raw)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return naming.Studly(base)
}

// InterfaceName derives the interface name for class.
func InterfaceName(class string) string {
	return strings.Replace(class, "Repository", "RepositoryInterface", 1)
}
