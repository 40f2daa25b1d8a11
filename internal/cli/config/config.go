package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/conduit-lang/typedesc/internal/format"
	"github.com/conduit-lang/typedesc/internal/logging"
	"github.com/spf13/viper"
)

// Output styles accepted by the output key and the --output flag.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCBOR = "cbor"
)

var outputStyles = []string{OutputText, OutputJSON, OutputCBOR}

// Config represents the typedesc CLI configuration
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	FormatConfig string `mapstructure:"format_config"`
	Output       string `mapstructure:"output"`
}

// Load loads the configuration from typedesc.yml or typedesc.yaml in the
// nearest directory that has one, falling back to defaults. Environment
// variables prefixed with TYPEDESC_ override file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("format_config", format.DefaultPath)
	v.SetDefault("output", OutputText)

	v.SetConfigName("typedesc")
	v.SetConfigType("yaml")
	if dir, err := FindConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("TYPEDESC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A relative format file is resolved against the config file's directory.
	if used := v.ConfigFileUsed(); used != "" && config.FormatConfig != "" && !filepath.IsAbs(config.FormatConfig) {
		config.FormatConfig = filepath.Join(filepath.Dir(used), config.FormatConfig)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// FindConfigDir walks up from the working directory looking for
// typedesc.yml or typedesc.yaml.
func FindConfigDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{"typedesc.yml", "typedesc.yaml"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no typedesc.yml found")
		}
		dir = parent
	}
}

// ValidateOutput checks an output style name.
func ValidateOutput(style string) error {
	if !slices.Contains(outputStyles, style) {
		return fmt.Errorf("output must be one of %v, got: %s", outputStyles, style)
	}
	return nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if err := ValidateOutput(cfg.Output); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if cfg.FormatConfig == "" {
		return fmt.Errorf("format_config must not be empty")
	}
	return nil
}
