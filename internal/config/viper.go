// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"xmlcsv/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the
// application.
const EnvPrefix = "XMLCSV"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		Pattern   string `mapstructure:"pattern" yaml:"pattern"`
	} `mapstructure:"input" yaml:"input"`

	Interactive struct {
		Banner      bool `mapstructure:"banner" yaml:"banner"`
		PauseOnExit bool `mapstructure:"pause_on_exit" yaml:"pause_on_exit"`
	} `mapstructure:"interactive" yaml:"interactive"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.xmlcsv")
	v.AddConfigPath(".xmlcsv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. Unprefixed logging variables, as used by most of our tooling
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.directory", ".")
	v.SetDefault("input.pattern", "*.xml")

	v.SetDefault("interactive.banner", true)
	v.SetDefault("interactive.pause_on_exit", true)

	v.SetDefault("report.format", "text")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if err := validation.IsValidLogFormat(config.Log.Format); err != nil {
		return err
	}

	if strings.TrimSpace(config.Input.Directory) == "" {
		return fmt.Errorf("input.directory cannot be empty")
	}

	if strings.TrimSpace(config.Input.Pattern) == "" {
		return fmt.Errorf("input.pattern cannot be empty")
	}

	return validation.IsValidReportFormat(config.Report.Format)
}
