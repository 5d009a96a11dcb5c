// Package module provides the module:* commands that inspect and select
// application modules.
package module

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/output"
)

// NewUseCmd creates the module:use command.
func NewUseCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "module:use <module>",
		Short: "Select the module generators use by default",
		Long: `Store the module that generator commands use when no module argument is
given. The selection is kept in <modules.path>/.modgen_used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			desc, err := cmdutil.NewRegistry(gc).Use(args[0])
			if err != nil {
				return err
			}
			output.Println(output.FormatCheckmark(fmt.Sprintf("Module %s is now in use", output.StyleNoun.Render(desc.Name))))
			return nil
		},
	}
}

// NewUnuseCmd creates the module:unuse command.
func NewUnuseCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "module:unuse",
		Short: "Forget the module selected with module:use",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := cmdutil.NewRegistry(gc).ForgetUsed(); err != nil {
				return err
			}
			output.Println(output.FormatCheckmark("Previous module used successfully forgotten"))
			return nil
		},
	}
}
