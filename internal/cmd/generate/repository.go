// Package generate provides the make:* generator commands.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/scaffold"
)

// NewMakeRepositoryCmd creates the make:repository command.
func NewMakeRepositoryCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.GenerateFlags

	c := &cobra.Command{
		Use:     "make:repository <name> [module]",
		Aliases: []string{"make-repository"},
		Short:   "Create a new repository class for a module",
		Long: `Create a new repository class inside a module.

The class is written to <module>/app/Repositories/<Name>.php. When the module
already has a matching interface (OrderRepository -> OrderRepositoryInterface
in app/Interfaces), the class imports and implements it.

When [module] is omitted the module selected with 'modgen module:use' is used.

Examples:
  # Create Modules/Sales/app/Repositories/OrderRepository.php
  modgen make:repository OrderRepository Sales

  # Single-action repository with an __invoke method
  modgen make:repository OrderRepository Sales --invokable

  # Replace an existing file
  modgen make:repository OrderRepository Sales --force`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			req := scaffold.Request{
				Name:      args[0],
				Invokable: flags.Invokable,
				Force:     flags.Force,
			}
			if len(args) > 1 {
				req.Module = args[1]
			}
			return runMakeRepository(c, gc, req)
		},
	}

	flags.AddTo(c)

	return c
}

func runMakeRepository(c *cobra.Command, gc *cmdtypes.GlobalConfig, req scaffold.Request) error {
	gen := cmdutil.NewGenerator(gc)

	res, err := gen.Generate(c.Context(), req)
	if err != nil {
		return err
	}

	cmdutil.WriteGenerateResult(res)
	if gc.Verbose {
		return cmdutil.WriteVerboseResult(res, c.ErrOrStderr())
	}
	return nil
}
