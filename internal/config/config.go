// Package config loads tablebook defaults from an optional YAML file.
//
// Command-line flags always win over file values; file values win over the
// built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tablebook/internal/store"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "csv"}

// Config holds settings shared by every command.
type Config struct {
	// Database is the path of the SQLite backing file.
	Database string `yaml:"db"`

	// Format selects the output format (text|json|csv).
	Format string `yaml:"format"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: store.DefaultPath,
		Format:   "text",
	}
}

// Load reads a YAML config file and merges it over Default.
// Unknown keys are rejected so typos surface instead of being ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds an allowed value.
func (c Config) Validate() error {
	if c.Database == "" {
		return errors.New("db must not be empty")
	}
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	return nil
}

// IsValidFormat checks if the format is one of the allowed values.
func IsValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
