package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/modgen/internal/testutil"
)

func TestStubList(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		out, _, err := run(t, NewStubListCmd(newGlobalConfig(t)))
		require.NoError(t, err)
		assert.Contains(t, out, "repository-invoke")
		assert.Contains(t, out, "embedded")
		assert.NotContains(t, out, "override")
	})

	t.Run("override", func(t *testing.T) {
		gc := newGlobalConfig(t)
		gc.Config.Stubs.Enabled = true
		testutil.WriteFile(t, gc.FS, "/app/stubs/repository.stub", "$CLASS$")

		out, _, err := run(t, NewStubListCmd(gc))
		require.NoError(t, err)
		assert.Contains(t, out, "override (/app/stubs/repository.stub)")
		assert.Contains(t, out, "embedded")
	})
}
