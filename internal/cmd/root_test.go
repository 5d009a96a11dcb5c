package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/modgen/internal/cmdtypes"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/testutil"
)

func execute(t *testing.T, gc *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	prev := output.SetOutput(&out)
	t.Cleanup(func() { output.SetOutput(prev) })

	root := newRootCmd(gc)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "modgen", root.Use)
	for _, flag := range []string{"config", "modules-path", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	for _, name := range []string{"make:repository", "module:use", "module:unuse", "module:list", "stub:list", "config", "version"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}

	c, _, err := root.Find([]string{"make-repository"})
	require.NoError(t, err)
	assert.Equal(t, "make:repository", c.Name())
}

func TestRoot_ConfigFileDrivesGeneration(t *testing.T) {
	fs := testutil.ModulesFS(t, "/app/packages", "Sales")
	testutil.WriteFile(t, fs, "/app/modgen.yaml", `
modules:
  path: /app/packages
  namespace: Acme
  appFolder: src/
generator:
  repository:
    namespace: Persistence
`)
	gc := &cmdtypes.GlobalConfig{FS: fs}

	_, err := execute(t, gc, "--config", "/app/modgen.yaml", "make:repository", "OrderRepository", "Sales")
	require.NoError(t, err)

	doc := testutil.ReadFile(t, fs, "/app/packages/Sales/src/Repositories/OrderRepository.php")
	assert.Contains(t, doc, `namespace Acme\Sales\Persistence;`)
	assert.Equal(t, "/app/modgen.yaml", gc.ConfigPath)
}

func TestRoot_ModulesPathFlag(t *testing.T) {
	fs := testutil.ModulesFS(t, "/work/Modules", "Sales")
	gc := &cmdtypes.GlobalConfig{FS: fs}

	_, err := execute(t, gc, "--config", "/work/missing.yaml", "--modules-path", "/work/Modules",
		"make:repository", "OrderRepository", "Sales")
	require.NoError(t, err)

	doc := testutil.ReadFile(t, fs, "/work/Modules/Sales/app/Repositories/OrderRepository.php")
	assert.Contains(t, doc, `namespace Modules\Sales\Repositories;`)
}

func TestRoot_UseThenGenerate(t *testing.T) {
	fs := testutil.ModulesFS(t, "/work/Modules", "Sales", "Blog")
	gc := &cmdtypes.GlobalConfig{FS: fs}
	base := []string{"--config", "/work/missing.yaml", "--modules-path", "/work/Modules"}

	_, err := execute(t, gc, append(base, "module:use", "Blog")...)
	require.NoError(t, err)

	_, err = execute(t, gc, append(base, "make:repository", "PostRepository")...)
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, fs, "/work/Modules/Blog/app/Repositories/PostRepository.php"), "class PostRepository")
}

func TestRoot_InvalidConfig(t *testing.T) {
	fs := testutil.ModulesFS(t, "/work/Modules", "Sales")
	testutil.WriteFile(t, fs, "/work/modgen.yaml", "modules:\n  namespace: \"1Bad\"\n")
	gc := &cmdtypes.GlobalConfig{FS: fs}

	_, err := execute(t, gc, "--config", "/work/modgen.yaml", "module:list")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	// config commands still run against a broken file.
	_, err = execute(t, gc, "--config", "/work/modgen.yaml", "config", "init", "--force")
	assert.NoError(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, &cmdtypes.GlobalConfig{FS: testutil.ModulesFS(t, "/work")}, "--config", "/work/missing.yaml", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modgen version")
}
