package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/config"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/fsys"
	"github.com/opmodel/modgen/internal/output"
)

const configHeader = "# modgen configuration\n# Environment variables (MODGEN_MODULES_PATH, ...) override these values.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a modgen.yaml with every setting at its default value.

The file is written to the path given by --config, MODGEN_CONFIG, or
./modgen.yaml, in that order.

Examples:
  # Create ./modgen.yaml
  modgen config init

  # Overwrite an existing file
  modgen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(gc)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	fs := gc.Filesystem()
	exists, err := config.ConfigFileExists(fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists && !force {
		return oerrors.NewValidationError(
			"configuration already exists",
			path,
			"",
			"Use --force to overwrite existing configuration.",
		)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if _, err := fsys.New(fs).Write(path, string(data), true); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Configuration written to " + path))
	return nil
}
