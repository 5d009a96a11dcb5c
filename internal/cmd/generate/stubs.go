package generate

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// NewStubListCmd creates the stub:list command.
func NewStubListCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "stub:list",
		Short: "List the stubs used by the generators",
		Long: `List every stub with the location it is loaded from.

Stubs are read from the override directory (stubs.path) when stubs.enabled is
set, and from the built-in set otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runStubList(gc)
		},
	}
}

func runStubList(gc *cmdtypes.GlobalConfig) error {
	store := cmdutil.NewStubStore(gc)

	tbl := output.NewTable("STUB", "SOURCE", "DESCRIPTION")
	for _, name := range templates.Names() {
		desc, _ := templates.Describe(name)

		source := "missing"
		stub, err := store.Load(name)
		switch {
		case err == nil:
			source = string(stub.Source)
			if stub.Source == templates.SourceOverride {
				source += " (" + stub.Path + ")"
			}
		case !errors.Is(err, oerrors.ErrTemplateMissing):
			return err
		}

		tbl.Row(string(name), source, desc)
	}

	output.Println(tbl.String())
	return nil
}
