package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadPatternFiles reads YAML pattern files in declaration order and
// concatenates their lists. A file uses the same keys as the patterns
// section of the main config.
func loadPatternFiles(configDir string, files []string) (Patterns, error) {
	var merged Patterns

	for _, file := range files {
		path := resolvePath(configDir, file)

		data, err := os.ReadFile(path)
		if err != nil {
			return Patterns{}, fmt.Errorf("read pattern file %q: %w", file, err)
		}

		var p Patterns
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Patterns{}, fmt.Errorf("parse pattern file %q: %w", file, err)
		}

		merged = appendPatterns(merged, p)
	}

	return merged, nil
}

// appendPatterns appends the lists of src to dst. A non-zero
// generic_max_length in src replaces the one in dst.
func appendPatterns(dst, src Patterns) Patterns {
	dst.Informal = append(dst.Informal, src.Informal...)
	dst.Task = append(dst.Task, src.Task...)
	dst.GenericPhrases = append(dst.GenericPhrases, src.GenericPhrases...)
	if src.GenericMaxLength != 0 {
		dst.GenericMaxLength = src.GenericMaxLength
	}
	return dst
}

func resolvePath(configDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(configDir, file)
}
