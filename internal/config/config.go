// Package config loads the clientboundary configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = "clientboundary.config.json"

// Config represents the clientboundary configuration.
type Config struct {
	// Files selects which source files are checked.
	Files FilesConfig `json:"files"`

	// AllowTypes adds nominal type names to the built-in allowlist.
	// Use for app-specific wrappers that serialize by contract.
	AllowTypes []string `json:"allowTypes,omitempty"`

	// AllowProps lists prop names treated as Server Actions regardless of
	// the naming convention.
	AllowProps []string `json:"allowProps,omitempty"`

	// Strict promotes warnings to errors.
	Strict bool `json:"strict,omitempty"`

	// Quiet suppresses warnings and informational output.
	Quiet bool `json:"quiet,omitempty"`
}

// FilesConfig specifies which source files to check.
// An empty include list checks every non-declaration file of the program.
type FilesConfig struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{}
}

// Load reads and parses a clientboundary config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Discover returns the path of a config file in dir, or empty string if none.
func Discover(dir string) string {
	p := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	for _, name := range c.AllowTypes {
		if name == "" {
			return fmt.Errorf("allowTypes must not contain empty names")
		}
	}
	for _, name := range c.AllowProps {
		if name == "" {
			return fmt.Errorf("allowProps must not contain empty names")
		}
	}
	for _, pattern := range append(append([]string{}, c.Files.Include...), c.Files.Exclude...) {
		if pattern == "" {
			return fmt.Errorf("files patterns must not be empty")
		}
	}
	return nil
}
