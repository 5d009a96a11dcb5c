// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for modgen.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}

// configPath returns the config file the command operates on.
func configPath(gc *cmdtypes.GlobalConfig) (string, error) {
	p := gc.ConfigPath
	if p == "" {
		p, _ = config.ResolveConfigPath("")
	}
	return config.ExpandPath(p)
}
