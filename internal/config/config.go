package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the plume.yaml project configuration.
type Config struct {
	// Directories scanned for templates by check and watch
	TemplateDirs []string `yaml:"templateDirs,omitempty"`

	// File extensions treated as templates
	Extensions []string `yaml:"extensions,omitempty"`

	// Registry configuration
	Registry *RegistryConfig `yaml:"registry,omitempty"`

	// Watch mode configuration
	Watch *WatchConfig `yaml:"watch,omitempty"`
}

// RegistryConfig configures the parse-result registry.
type RegistryConfig struct {
	// Whether the registry is consulted at all
	Enabled bool `yaml:"enabled"`

	// Path to the sqlite database file
	Path string `yaml:"path,omitempty"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Quiet period in milliseconds before re-checking after a burst
	// of events
	DebounceMs int `yaml:"debounceMs,omitempty"`
}

// Debounce returns the quiet period as a duration.
func (w *WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

const fileName = "plume.yaml"

// Load reads plume.yaml from projectPath, falling back to defaults if
// the file does not exist.
func Load(projectPath string) (*Config, error) {
	configPath := filepath.Join(projectPath, fileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	applyDefaults(&config)

	return &config, nil
}

// Save writes the configuration to plume.yaml in projectPath.
func Save(config *Config, projectPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(projectPath, fileName), data, 0644)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TemplateDirs: []string{"templates"},
		Extensions:   []string{".html", ".txt", ".plume"},
		Registry: &RegistryConfig{
			Enabled: true,
			Path:    ".plume/registry.db",
		},
		Watch: &WatchConfig{
			DebounceMs: 300,
		},
	}
}

func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if len(config.TemplateDirs) == 0 {
		config.TemplateDirs = defaults.TemplateDirs
	}
	if len(config.Extensions) == 0 {
		config.Extensions = defaults.Extensions
	}

	if config.Registry == nil {
		config.Registry = defaults.Registry
	} else if config.Registry.Path == "" {
		config.Registry.Path = defaults.Registry.Path
	}

	if config.Watch == nil {
		config.Watch = defaults.Watch
	} else if config.Watch.DebounceMs == 0 {
		config.Watch.DebounceMs = defaults.Watch.DebounceMs
	}
}

// IsTemplate reports whether path has one of the configured template
// extensions.
func (c *Config) IsTemplate(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
