package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/module"
)

func salesModule() module.Descriptor {
	return module.Descriptor{Name: "Sales", StudlyName: "Sales", Path: filepath.FromSlash("/app/Modules/Sales")}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.GeneratorConfig
		want string
	}{
		{
			name: "defaults",
			cfg:  config.DefaultGeneratorConfig(),
			want: "/app/Modules/Sales/app/Repositories/OrderRepository.php",
		},
		{
			name: "path override",
			cfg: config.GeneratorConfig{
				AppFolder:  "app/",
				Repository: config.TargetConfig{Path: "src/Data/Repos"},
			},
			want: "/app/Modules/Sales/src/Data/Repos/OrderRepository.php",
		},
		{
			name: "app folder change",
			cfg:  config.GeneratorConfig{AppFolder: "src/"},
			want: "/app/Modules/Sales/src/Repositories/OrderRepository.php",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), DestinationPath(salesModule(), "OrderRepository", tt.cfg))
		})
	}
}

func TestDestinationPath_Pure(t *testing.T) {
	// The module root does not exist anywhere; the path is computed regardless
	// and is stable across calls.
	desc := module.Descriptor{Name: "Ghost", StudlyName: "Ghost", Path: filepath.FromSlash("/does/not/exist/Ghost")}
	cfg := config.DefaultGeneratorConfig()

	first := DestinationPath(desc, "GhostRepository", cfg)
	assert.Equal(t, first, DestinationPath(desc, "GhostRepository", cfg))
	assert.Equal(t, filepath.FromSlash("/does/not/exist/Ghost/app/Repositories/GhostRepository.php"), first)
}

func TestModuleNamespace(t *testing.T) {
	assert.Equal(t, `Modules\Sales\Repositories`, ModuleNamespace("Modules", "Sales", "Repositories"))
	assert.Equal(t, `Modules\Sales\Data\Repositories`, ModuleNamespace("Modules", "Sales", "Data/Repositories"))
	assert.Equal(t, `Modules\Sales\Data\Repositories`, ModuleNamespace(`\Modules\`, "Sales", `Data\Repositories\`))
	assert.Equal(t, `Sales\Repositories`, ModuleNamespace("", "Sales", "Repositories"))
}

func TestClassNamespace(t *testing.T) {
	cfg := config.DefaultGeneratorConfig()
	assert.Equal(t, `Modules\Sales\Repositories`, ClassNamespace(salesModule(), cfg))

	cfg.Repository.Namespace = "Persistence"
	assert.Equal(t, `Modules\Sales\Persistence`, ClassNamespace(salesModule(), cfg))
}
