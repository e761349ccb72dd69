package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/scrub/internal/core/scan"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including regex patterns, globs, and file accessibility. The configPath
// argument specifies the config file location to validate (empty string
// skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validatePatterns(),
		c.validateGlobs(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if len(c.Patterns.Informal) == 0 && len(c.Patterns.Task) == 0 && len(c.Patterns.GenericPhrases) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Patterns",
			Message:  "no patterns configured; clean will only merge blank lines and dedupe imports",
		})
	}

	for i, expr := range c.Patterns.Informal {
		if !strings.Contains(expr, `\b`) {
			warnings = append(warnings, ValidationWarning{
				Category: "Patterns",
				Item:     fmt.Sprintf("informal[%d]", i),
				Message:  fmt.Sprintf("pattern %q has no word boundary and may match inside identifiers", expr),
			})
		}
	}

	return warnings
}

// validateFileAccess checks the config file and root directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("root", c.Root, isDirectory),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectory validates that a path exists and is a directory.
func isDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validatePatterns checks every classifier pattern compiles.
func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder

	sets := []struct {
		field string
		exprs []string
	}{
		{"patterns.informal", c.Patterns.Informal},
		{"patterns.task", c.Patterns.Task},
	}
	for _, set := range sets {
		for i, expr := range set.exprs {
			if _, err := regexp.Compile("(?i)" + expr); err != nil {
				errs = errs.Append(fmt.Sprintf("%s[%d]", set.field, i), fmt.Errorf("invalid regex %q: %w", expr, err))
			}
		}
	}

	for i, phrase := range c.Patterns.GenericPhrases {
		if strings.TrimSpace(phrase) == "" {
			errs = errs.Append(fmt.Sprintf("patterns.generic_phrases[%d]", i), fmt.Errorf("phrase is empty"))
		}
	}

	return errs.ToError()
}

// validateGlobs checks include and exclude globs parse.
func (c *Config) validateGlobs() error {
	var errs criterio.FieldErrorsBuilder

	for i, g := range c.Include {
		if err := scan.ValidatePatterns([]string{g}); err != nil {
			errs = errs.Append(fmt.Sprintf("include[%d]", i), err)
		}
	}
	for i, g := range c.Exclude {
		if err := scan.ValidatePatterns([]string{g}); err != nil {
			errs = errs.Append(fmt.Sprintf("exclude[%d]", i), err)
		}
	}

	return errs.ToError()
}
