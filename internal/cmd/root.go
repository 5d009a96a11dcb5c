// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmd/config"
	"github.com/opmodel/modgen/internal/cmd/generate"
	"github.com/opmodel/modgen/internal/cmd/module"
	"github.com/opmodel/modgen/internal/cmdtypes"
	modgenconfig "github.com/opmodel/modgen/internal/config"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config      string
	modulesPath string
	verbose     bool
	timestamps  bool
}

// NewRootCmd creates the root command for modgen.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{})
}

func newRootCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "modgen",
		Short: "Module code generator",
		Long: `modgen generates source files inside the modules of a modular application.

Modules are the directories under the modules path (default ./Modules) that
contain a module.json.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, gc, &flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MODGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.modulesPath, "modules-path", "", "Modules directory (env: MODGEN_MODULES_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		generate.NewMakeRepositoryCmd(gc),
		generate.NewStubListCmd(gc),
		module.NewUseCmd(gc),
		module.NewUnuseCmd(gc),
		module.NewListCmd(gc),
		config.NewConfigCmd(gc),
		NewVersionCmd(gc),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, flags *rootFlags) error {
	path, source := modgenconfig.ResolveConfigPath(flags.config)

	// The config commands must work on a broken config file.
	configCmd := cmd.Parent() != nil && cmd.Parent().Name() == "config"

	cfg, err := modgenconfig.NewLoader().WithFs(gc.Filesystem()).LoadWithDefaults(path)
	if err != nil {
		if !configCmd {
			return oerrors.NewExitError(fmt.Errorf("loading config %s: %w", path, err), oerrors.ExitValidationError)
		}
		cfg = modgenconfig.DefaultConfig()
	}
	if flags.modulesPath != "" {
		cfg.Modules.Path = flags.modulesPath
	}

	gc.Config = cfg
	gc.ConfigPath = path
	gc.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"version", version.Get().Version,
		"config", path,
		"config_source", source,
		"modules", cfg.Modules.Path)
	if err != nil {
		output.Debug("config load error", "error", err)
	}

	if !configCmd {
		if err := modgenconfig.Validate(cfg); err != nil {
			return oerrors.NewExitError(err, oerrors.ExitValidationError)
		}
	}

	return nil
}
