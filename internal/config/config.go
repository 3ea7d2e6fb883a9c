// Package config handles loading and merging configuration files.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultContact is the bot owner named in the disclaimer.
const DefaultContact = "jrosenth@chromium.org"

// Config represents the commitwatch configuration.
type Config struct {
	Version int         `yaml:"version"`
	Contact string      `yaml:"contact,omitempty"`
	Repo    string      `yaml:"repo,omitempty"`
	Tags    []TagConfig `yaml:"tags,omitempty"`
}

// TagConfig defines an extra classification tag with a fixed verdict.
// Extra tags are appended after the built-in table and go through the
// same ambiguity validation.
type TagConfig struct {
	Name        string `yaml:"name"`
	Disposition string `yaml:"disposition"`
	Help        string `yaml:"help,omitempty"`
	Message     string `yaml:"message"`
	Hidden      bool   `yaml:"hidden,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Contact: DefaultContact,
		Repo:    ".",
	}
}

// Load loads configuration. If local config exists, it is used exclusively.
// Otherwise, global config is used. No merging occurs.
func Load() (*Config, error) {
	cfg := Default()

	// Check for local config first - if exists, use only local
	localPath := localConfigPath()
	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			if err := cfg.loadFrom(localPath); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}

	// No local config - use global
	globalPath := globalConfigPath()
	if globalPath != "" {
		if err := cfg.loadFrom(globalPath); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return cfg, nil
}

// loadFrom loads and merges a config file into the current config.
func (c *Config) loadFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}

	c.merge(&overlay)
	return nil
}

// merge applies overlay config onto the current config. Scalar values
// override defaults only when set; extra tags are appended by name.
func (c *Config) merge(overlay *Config) {
	if overlay.Version > 0 {
		c.Version = overlay.Version
	}
	if overlay.Contact != "" {
		c.Contact = overlay.Contact
	}
	if overlay.Repo != "" {
		c.Repo = overlay.Repo
	}
	c.Tags = appendTagsUnique(c.Tags, overlay.Tags)
}

func appendTagsUnique(base, items []TagConfig) []TagConfig {
	seen := make(map[string]bool)
	for _, t := range base {
		seen[t.Name] = true
	}
	result := base
	for _, t := range items {
		if !seen[t.Name] {
			result = append(result, t)
			seen[t.Name] = true
		}
	}
	return result
}

func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "commitwatch", "config.yml")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return globalConfigPath()
}

func localConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".commitwatch.yml")
}
