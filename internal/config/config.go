// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for payloaddoc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the payloaddoc configuration.
type Config struct {
	// Descriptors is the path to the field specification file
	Descriptors string `mapstructure:"descriptors" yaml:"descriptors" json:"descriptors"`

	// Format is the report output format (text, json, yaml)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Output is the directory for generated documentation snippets
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Payloads contains captured-payload discovery configuration
	Payloads PayloadConfig `mapstructure:"payloads" yaml:"payloads" json:"payloads"`

	// Check contains check behavior configuration
	Check CheckConfig `mapstructure:"check" yaml:"check" json:"check"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// PayloadConfig contains captured-payload discovery configuration.
type PayloadConfig struct {
	// Paths is a list of paths to scan for captured payloads
	Paths []string `mapstructure:"paths" yaml:"paths" json:"paths"`

	// Include is a list of glob patterns to include
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns to exclude
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// CheckConfig contains check behavior configuration.
type CheckConfig struct {
	// Strict fails the check on any finding
	Strict bool `mapstructure:"strict" yaml:"strict" json:"strict"`

	// Ignore is a list of path patterns excluded from findings
	Ignore []string `mapstructure:"ignore" yaml:"ignore" json:"ignore"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`

	// OnChange is the command to run after a re-check
	OnChange string `mapstructure:"onChange" yaml:"onChange" json:"onChange"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"payloaddoc.yaml",
	"payloaddoc.json",
	".payloaddoc.yaml",
	".payloaddoc.json",
}

// supportedFormats is the list of supported report formats.
var supportedFormats = []string{
	"text",
	"json",
	"yaml",
}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Descriptors: "fields.yaml",
		Format:      "text",
		Output:      "docs/payload",
		Payloads: PayloadConfig{
			Paths:   []string{"."},
			Include: []string{"**/*.json"},
			Exclude: []string{
				"node_modules/**",
				".git/**",
				"**/payloaddoc.json",
				"**/.payloaddoc.json",
			},
		},
		Check: CheckConfig{
			Strict: true,
		},
		Watch: WatchConfig{
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. payloaddoc.yaml
// 2. payloaddoc.json
// 3. .payloaddoc.yaml
// 4. .payloaddoc.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("descriptors", "fields.yaml")
	v.SetDefault("format", "text")
	v.SetDefault("output", "docs/payload")
	v.SetDefault("payloads.paths", []string{"."})
	v.SetDefault("payloads.include", []string{"**/*.json"})
	v.SetDefault("payloads.exclude", []string{
		"node_modules/**",
		".git/**",
		"**/payloaddoc.json",
		"**/.payloaddoc.json",
	})
	v.SetDefault("check.strict", true)
	v.SetDefault("watch.debounce", 500)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Descriptors == "" {
		errs = append(errs, ValidationError{
			Field:   "descriptors",
			Message: "a field specification file is required",
		})
	}

	if c.Format != "" && !contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
