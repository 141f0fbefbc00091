// Config loading for the discrete CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "discrete"
	configFileType = "yaml"
	envPrefix      = "DISCRETE"

	cfgKeyFormat = "format"
	cfgKeyLimit  = "limit"

	defaultFormat = "json"
	defaultLimit  = 100
)

// loadConfig resolves settings with the precedence flag > DISCRETE_* env >
// config file > default. Without an explicit path the file is discrete.yaml
// in the working directory, and a missing file is not an error.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyLimit, defaultLimit)
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

	if f := flags.Lookup(cfgKeyFormat); f != nil {
		if err := v.BindPFlag(cfgKeyFormat, f); err != nil {
			return nil, fmt.Errorf("bind flag: %w", err)
		}
	}
	return v, nil
}
