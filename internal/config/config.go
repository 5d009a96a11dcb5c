// Package config provides configuration loading and management.
package config

import (
	"path"
	"strings"
)

// Default configuration values.
const (
	DefaultModulesPath         = "Modules"
	DefaultRootNamespace       = "Modules"
	DefaultAppFolder           = "app/"
	DefaultRepositoryNamespace = "Repositories"
	DefaultInterfacesNamespace = "Interfaces"
	DefaultStubsPath           = "stubs"
)

// ModulesConfig describes where modules live and how they are namespaced.
type ModulesConfig struct {
	// Path is the directory holding one subdirectory per module.
	// Env: MODGEN_MODULES_PATH, Default: Modules
	Path string `mapstructure:"path" yaml:"path"`

	// Namespace is the root namespace every module namespace starts with.
	// Default: Modules
	Namespace string `mapstructure:"namespace" yaml:"namespace"`

	// AppFolder is the module-relative source folder, with trailing slash.
	// Default: app/
	AppFolder string `mapstructure:"appFolder" yaml:"appFolder"`
}

// TargetConfig is a path/namespace override pair for one kind of generated class.
type TargetConfig struct {
	// Path is the module-relative directory. Empty means <appFolder><Namespace>.
	Path string `mapstructure:"path" yaml:"path"`

	// Namespace is the namespace segment appended to the module namespace.
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// GeneratorTargets holds per-kind overrides.
type GeneratorTargets struct {
	Repository TargetConfig `mapstructure:"repository" yaml:"repository"`
	Interfaces TargetConfig `mapstructure:"interfaces" yaml:"interfaces"`
}

// StubsConfig controls the user stub override directory.
type StubsConfig struct {
	// Enabled turns on lookups in Path before the built-in stubs.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Path is the override directory, relative to the working directory.
	Path string `mapstructure:"path" yaml:"path"`

	// Strict fails a render when a stub references a placeholder with no
	// value. When false such tokens are left in the output.
	// Env: MODGEN_STUBS_STRICT, Default: true
	Strict *bool `mapstructure:"strict" yaml:"strict"`
}

// IsStrict reports whether unresolved placeholders fail the render.
func (s StubsConfig) IsStrict() bool {
	return s.Strict == nil || *s.Strict
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the modgen configuration file.
type Config struct {
	Modules   ModulesConfig    `mapstructure:"modules" yaml:"modules"`
	Generator GeneratorTargets `mapstructure:"generator" yaml:"generator"`
	Stubs     StubsConfig      `mapstructure:"stubs" yaml:"stubs"`
	Log       LogConfig        `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `modgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Modules: ModulesConfig{
			Path:      DefaultModulesPath,
			Namespace: DefaultRootNamespace,
			AppFolder: DefaultAppFolder,
		},
		Generator: GeneratorTargets{
			Repository: TargetConfig{Namespace: DefaultRepositoryNamespace},
			Interfaces: TargetConfig{Namespace: DefaultInterfacesNamespace},
		},
		Stubs: StubsConfig{Path: DefaultStubsPath, Strict: boolPtr(true)},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
// Empty target paths stay empty; they are derived in GeneratorConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	d := DefaultConfig()

	if out.Modules.Path == "" {
		out.Modules.Path = d.Modules.Path
	}
	if out.Modules.Namespace == "" {
		out.Modules.Namespace = d.Modules.Namespace
	}
	if out.Modules.AppFolder == "" {
		out.Modules.AppFolder = d.Modules.AppFolder
	}
	if out.Generator.Repository.Namespace == "" {
		out.Generator.Repository.Namespace = d.Generator.Repository.Namespace
	}
	if out.Generator.Interfaces.Namespace == "" {
		out.Generator.Interfaces.Namespace = d.Generator.Interfaces.Namespace
	}
	if out.Stubs.Path == "" {
		out.Stubs.Path = d.Stubs.Path
	}
	if out.Stubs.Strict == nil {
		out.Stubs.Strict = d.Stubs.Strict
	}
	return &out
}

// Resolve builds the GeneratorConfig handed to the scaffolding components.
func (c *Config) Resolve() GeneratorConfig {
	full := c.WithDefaults()
	return GeneratorConfig{
		RootNamespace: full.Modules.Namespace,
		AppFolder:     full.Modules.AppFolder,
		Repository:    full.Generator.Repository,
		Interfaces:    full.Generator.Interfaces,
	}
}

// GeneratorConfig is the explicit, read-only configuration for one generation
// run. It is built once and passed into each component.
type GeneratorConfig struct {
	// RootNamespace prefixes every module namespace (e.g. "Modules").
	RootNamespace string

	// AppFolder is the module-relative source folder (e.g. "app/").
	AppFolder string

	Repository TargetConfig
	Interfaces TargetConfig
}

// DefaultGeneratorConfig returns the generator configuration with all defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return DefaultConfig().Resolve()
}

// RepositoryPath returns the module-relative repositories directory.
func (g GeneratorConfig) RepositoryPath() string {
	return g.targetPath(g.Repository, DefaultRepositoryNamespace)
}

// InterfacesPath returns the module-relative interfaces directory.
func (g GeneratorConfig) InterfacesPath() string {
	return g.targetPath(g.Interfaces, DefaultInterfacesNamespace)
}

// RepositoryNamespace returns the namespace segment for repositories.
func (g GeneratorConfig) RepositoryNamespace() string {
	return orDefault(g.Repository.Namespace, DefaultRepositoryNamespace)
}

// InterfacesNamespace returns the namespace segment for interfaces.
func (g GeneratorConfig) InterfacesNamespace() string {
	return orDefault(g.Interfaces.Namespace, DefaultInterfacesNamespace)
}

// targetPath applies the override, falling back to <appFolder><folder>.
// The default folder is fixed and does not follow a namespace override.
func (g GeneratorConfig) targetPath(t TargetConfig, folder string) string {
	if p := strings.TrimSpace(t.Path); p != "" {
		return p
	}
	return path.Clean(g.AppFolder + folder)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
