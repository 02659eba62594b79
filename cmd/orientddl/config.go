package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "orientddl"
	configFileType = "yaml"
	envPrefix      = "ORIENTDDL"

	cfgKeyEscapeLiterals = "escape_literals"
	cfgKeyLogLevel       = "log_level"
	cfgKeyWatch          = "watch"

	defaultLogLevel = "warn"
)

// flagKeys maps command-line flags to their config keys.
var flagKeys = map[string]string{
	"escape-literals": cfgKeyEscapeLiterals,
	"log-level":       cfgKeyLogLevel,
	"watch":           cfgKeyWatch,
}

// loadConfig reads the config file, ORIENTDDL_* environment variables and
// the flags of cmd. Flags take precedence over the environment, which
// takes precedence over the file. A missing default config file is not an
// error; a missing explicit one is.
func loadConfig(path string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyEscapeLiterals, false)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyWatch, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	return v, nil
}
