// Package config provides configuration loading and management.
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "Modules", cfg.Modules.Path)
	assert.Equal(t, "Modules", cfg.Modules.Namespace)
	assert.Equal(t, "app/", cfg.Modules.AppFolder)
	assert.Equal(t, "Repositories", cfg.Generator.Repository.Namespace)
	assert.Equal(t, "Interfaces", cfg.Generator.Interfaces.Namespace)
	assert.Empty(t, cfg.Generator.Repository.Path, "empty path means derived from appFolder")
	assert.Empty(t, cfg.Generator.Interfaces.Path)
	assert.False(t, cfg.Stubs.Enabled)
	assert.Equal(t, "stubs", cfg.Stubs.Path)
	assert.True(t, cfg.Stubs.IsStrict())
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestStubsConfig_IsStrict(t *testing.T) {
	off, on := false, true
	assert.True(t, StubsConfig{}.IsStrict(), "unset means strict")
	assert.True(t, StubsConfig{Strict: &on}.IsStrict())
	assert.False(t, StubsConfig{Strict: &off}.IsStrict())
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := &Config{
		Modules: ModulesConfig{Path: "packages"},
		Generator: GeneratorTargets{
			Repository: TargetConfig{Path: "src/Repos"},
		},
	}

	full := cfg.WithDefaults()

	assert.Equal(t, "packages", full.Modules.Path, "set values are kept")
	assert.Equal(t, "Modules", full.Modules.Namespace)
	assert.Equal(t, "app/", full.Modules.AppFolder)
	assert.Equal(t, "src/Repos", full.Generator.Repository.Path)
	assert.Equal(t, "Repositories", full.Generator.Repository.Namespace)

	// The receiver is not mutated.
	assert.Empty(t, cfg.Modules.Namespace)
}

func TestGeneratorConfig_Paths(t *testing.T) {
	tests := []struct {
		name           string
		cfg            *Config
		wantRepository string
		wantInterfaces string
	}{
		{
			name:           "defaults derive from app folder",
			cfg:            &Config{},
			wantRepository: "app/Repositories",
			wantInterfaces: "app/Interfaces",
		},
		{
			name:           "custom app folder",
			cfg:            &Config{Modules: ModulesConfig{AppFolder: "src/"}},
			wantRepository: "src/Repositories",
			wantInterfaces: "src/Interfaces",
		},
		{
			name: "explicit overrides win",
			cfg: &Config{Generator: GeneratorTargets{
				Repository: TargetConfig{Path: "Data/Repos"},
				Interfaces: TargetConfig{Path: "Contracts"},
			}},
			wantRepository: "Data/Repos",
			wantInterfaces: "Contracts",
		},
		{
			name: "namespace override does not move the default folder",
			cfg: &Config{Generator: GeneratorTargets{
				Repository: TargetConfig{Namespace: "Persistence"},
			}},
			wantRepository: "app/Repositories",
			wantInterfaces: "app/Interfaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.cfg.Resolve()
			assert.Equal(t, tt.wantRepository, g.RepositoryPath())
			assert.Equal(t, tt.wantInterfaces, g.InterfacesPath())
		})
	}
}

func TestGeneratorConfig_Namespaces(t *testing.T) {
	g := DefaultGeneratorConfig()
	assert.Equal(t, "Modules", g.RootNamespace)
	assert.Equal(t, "Repositories", g.RepositoryNamespace())
	assert.Equal(t, "Interfaces", g.InterfacesNamespace())

	// Zero value falls back to defaults rather than producing empty segments.
	var zero GeneratorConfig
	assert.Equal(t, "Repositories", zero.RepositoryNamespace())
	assert.Equal(t, "Interfaces", zero.InterfacesNamespace())
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, Validate(DefaultConfig()))
	})

	t.Run("nested namespace is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Generator.Repository.Namespace = `Data\Repositories`
		assert.NoError(t, Validate(cfg))
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Modules.Namespace = "My-Modules"
		cfg.Generator.Interfaces.Path = "/abs/Interfaces"

		err := Validate(cfg)
		require.Error(t, err)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
		assert.Contains(t, err.Error(), "modules.namespace")
		assert.Contains(t, err.Error(), "generator.interfaces.path")
	})
}
