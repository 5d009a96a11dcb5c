// Package module discovers application modules on disk and resolves a module
// identifier to its descriptor.
package module

// ManifestFile is the file that marks a directory as a module.
const ManifestFile = "module.json"

// Manifest is the decoded module.json.
type Manifest struct {
	Name        string   `json:"name"`
	Alias       string   `json:"alias,omitempty"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Providers   []string `json:"providers,omitempty"`
}

// Descriptor identifies a resolved module. It is read-only to consumers.
type Descriptor struct {
	// Name is the module name from its manifest.
	Name string

	// StudlyName is Name in StudlyCase, used in namespaces.
	StudlyName string

	// SnakeName is Name in snake_case, accepted as an alias by Find.
	SnakeName string

	// Path is the module root directory.
	Path string

	// Manifest is the decoded module.json.
	Manifest Manifest
}

// Resolver resolves a module identifier to a Descriptor.
type Resolver interface {
	Resolve(identifier string) (Descriptor, error)
}
