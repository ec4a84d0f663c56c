// Package config provides configuration loading and management for fastmorph.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the run configuration loaded from YAML. Command-line
// flags override these values.
type Config struct {
	// Processing parameters
	Processing struct {
		// Threads is how many worker goroutines the block scheduler uses.
		// 0 means single-threaded synchronous execution.
		Threads int `yaml:"threads"`

		// BackgroundOnly controls multilabel dilation: when true only
		// background voxels are filled in, existing labels are preserved.
		BackgroundOnly bool `yaml:"backgroundOnly"`

		// ErodeBorder controls multilabel erosion: when true the volume rim
		// counts as background and cannot survive erosion.
		ErodeBorder bool `yaml:"erodeBorder"`
	} `yaml:"processing"`

	// Output parameters
	Output struct {
		// Verbose controls the level of progress output.
		Verbose bool `yaml:"verbose"`

		// Stats reports the value-distribution summary before and after.
		Stats bool `yaml:"stats"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Processing.Threads = runtime.NumCPU()
	cfg.Processing.BackgroundOnly = true
	cfg.Processing.ErodeBorder = true

	cfg.Output.Verbose = true
	cfg.Output.Stats = false

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
