package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/modgen/internal/config"
)

// countingExister records every existence check.
type countingExister struct {
	existing map[string]bool
	calls    []string
}

func (c *countingExister) Exists(path string) bool {
	c.calls = append(c.calls, path)
	return c.existing[path]
}

func TestProbe(t *testing.T) {
	ifacePath := filepath.FromSlash("/app/Modules/Sales/app/Interfaces/OrderRepositoryInterface.php")

	t.Run("interface present", func(t *testing.T) {
		fs := &countingExister{existing: map[string]bool{ifacePath: true}}
		res := NewProbe(fs, config.DefaultGeneratorConfig()).Probe(salesModule(), "OrderRepositoryInterface")

		assert.True(t, res.Exists)
		assert.Equal(t, ifacePath, res.Path)
		assert.Equal(t, `Modules\Sales\Interfaces\OrderRepositoryInterface`, res.Namespace)
		assert.Equal(t, []string{ifacePath}, fs.calls, "exactly one existence check")
	})

	t.Run("namespace computed when absent", func(t *testing.T) {
		fs := &countingExister{}
		res := NewProbe(fs, config.DefaultGeneratorConfig()).Probe(salesModule(), "OrderRepositoryInterface")

		assert.False(t, res.Exists)
		assert.Equal(t, `Modules\Sales\Interfaces\OrderRepositoryInterface`, res.Namespace)
		assert.Len(t, fs.calls, 1)
	})

	t.Run("configured interfaces path and namespace", func(t *testing.T) {
		cfg := config.DefaultGeneratorConfig()
		cfg.Interfaces = config.TargetConfig{Path: "Contracts", Namespace: "Contracts"}
		fs := &countingExister{}

		res := NewProbe(fs, cfg).Probe(salesModule(), "OrderRepositoryInterface")

		assert.Equal(t, filepath.FromSlash("/app/Modules/Sales/Contracts/OrderRepositoryInterface.php"), res.Path)
		assert.Equal(t, `Modules\Sales\Contracts\OrderRepositoryInterface`, res.Namespace)
	})
}
