package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigFile is the project-local config file name.
const DefaultConfigFile = "modgen.yaml"

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODGEN_CONFIG env, (3) ./modgen.yaml.
func ResolveConfigPath(flagValue string) (string, ConfigSource) {
	if flagValue != "" {
		return flagValue, SourceFlag
	}
	if env := os.Getenv("MODGEN_CONFIG"); env != "" {
		return env, SourceEnv
	}
	return DefaultConfigFile, SourceDefault
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
