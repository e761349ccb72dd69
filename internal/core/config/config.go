// Package config handles configuration loading and validation for scrub.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/scrub/internal/core/classify"
	"github.com/hay-kot/scrub/internal/core/imports"
)

// Config holds the application configuration.
type Config struct {
	Root         string   `yaml:"root"`          // directory scanned when no argument is given
	Include      []string `yaml:"include"`       // doublestar globs relative to root
	Exclude      []string `yaml:"exclude"`       // doublestar globs relative to root
	ImportPrefix string   `yaml:"import_prefix"` // trimmed-line prefix of an import statement
	Backup       bool     `yaml:"backup"`        // write <file>.bak before overwriting
	Patterns     Patterns `yaml:"patterns"`
	PatternFiles []string `yaml:"pattern_files,omitempty"` // extra pattern files appended to Patterns
}

// Patterns configures the comment classifier.
type Patterns struct {
	Informal         []string `yaml:"informal"`
	Task             []string `yaml:"task"`
	GenericPhrases   []string `yaml:"generic_phrases"`
	GenericMaxLength int      `yaml:"generic_max_length"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Root:         ".",
		Include:      []string{"**/*.kt"},
		Exclude:      []string{},
		ImportPrefix: imports.DefaultPrefix,
		Patterns: Patterns{
			Informal:         classify.DefaultInformalPatterns(),
			Task:             classify.DefaultTaskPatterns(),
			GenericPhrases:   classify.DefaultGenericPhrases(),
			GenericMaxLength: classify.DefaultGenericMaxLength,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			if len(cfg.PatternFiles) > 0 {
				extra, err := loadPatternFiles(filepath.Dir(configPath), cfg.PatternFiles)
				if err != nil {
					return nil, err
				}
				cfg.Patterns = appendPatterns(cfg.Patterns, extra)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Root == "" {
		c.Root = defaults.Root
	}
	if c.ImportPrefix == "" {
		c.ImportPrefix = defaults.ImportPrefix
	}
	if c.Patterns.GenericMaxLength == 0 {
		c.Patterns.GenericMaxLength = defaults.Patterns.GenericMaxLength
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return fmt.Errorf("include must list at least one glob")
	}

	if c.Patterns.GenericMaxLength < 1 {
		return fmt.Errorf("patterns.generic_max_length must be at least 1")
	}

	return nil
}

// Rules compiles the classifier rules. Call it once per run.
func (c *Config) Rules() (*classify.Rules, error) {
	rules, err := classify.NewRules(
		c.Patterns.Informal,
		c.Patterns.Task,
		c.Patterns.GenericPhrases,
		c.Patterns.GenericMaxLength,
	)
	if err != nil {
		return nil, fmt.Errorf("compile patterns: %w", err)
	}
	return rules, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
