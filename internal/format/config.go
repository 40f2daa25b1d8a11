// Package format loads and saves the rendering configuration used by the
// typedesc CLI.
package format

import (
	"fmt"
	"os"

	"github.com/conduit-lang/typedesc/pkg/typeconv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file name looked up when no path is configured.
const DefaultPath = ".typedesc-format.yml"

type fileLayout struct {
	Format typeconv.Formatting `yaml:"format"`
}

// DefaultConfig returns the default rendering configuration
func DefaultConfig() *typeconv.Formatting {
	f := typeconv.DefaultFormatting()
	return &f
}

// LoadConfig loads the rendering configuration from a file.
// If the file doesn't exist, returns the default configuration.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*typeconv.Formatting, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	layout := fileLayout{Format: typeconv.DefaultFormatting()}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &layout.Format, nil
}

// SaveConfig saves the rendering configuration to a file
func SaveConfig(path string, config *typeconv.Formatting) error {
	data, err := yaml.Marshal(fileLayout{Format: *config})
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
