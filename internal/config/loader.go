package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment variable prefix for modgen configuration.
const envPrefix = "MODGEN"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register every key so AutomaticEnv can see it during Unmarshal.
	d := DefaultConfig()
	v.SetDefault("modules.path", d.Modules.Path)
	v.SetDefault("modules.namespace", d.Modules.Namespace)
	v.SetDefault("modules.appFolder", d.Modules.AppFolder)
	v.SetDefault("generator.repository.path", "")
	v.SetDefault("generator.repository.namespace", d.Generator.Repository.Namespace)
	v.SetDefault("generator.interfaces.path", "")
	v.SetDefault("generator.interfaces.namespace", d.Generator.Interfaces.Namespace)
	v.SetDefault("stubs.enabled", false)
	v.SetDefault("stubs.path", d.Stubs.Path)
	v.SetDefault("stubs.strict", true)

	_ = v.BindEnv("log.timestamps", "MODGEN_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// WithFs makes the loader read config files from fs instead of the OS filesystem.
func (l *Loader) WithFs(fs afero.Fs) *Loader {
	l.v.SetFs(fs)
	return l
}

// Load loads configuration from the given file path.
// If configFile is empty, only defaults and environment variables apply.
// A missing file is not an error. Environment variables take precedence over
// file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		expandedPath, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists on fs.
func ConfigFileExists(fs afero.Fs, configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	return afero.Exists(fs, expandedPath)
}
