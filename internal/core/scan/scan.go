// Package scan enumerates source files under a filesystem root.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Root is the walk root inside the filesystem. Production code chroots an
// osfs at the target directory, so every path is relative to it.
const Root = "/"

// Scanner finds files whose slash-separated path relative to the root
// matches at least one include glob and no exclude glob.
type Scanner struct {
	fs      billy.Filesystem
	include []string
	exclude []string
}

// New creates a Scanner. Patterns use doublestar syntax ("**/*.kt").
func New(fs billy.Filesystem, include, exclude []string) *Scanner {
	return &Scanner{fs: fs, include: include, exclude: exclude}
}

// Scan walks the filesystem and returns matching file paths in lexical order.
// Paths are filesystem paths suitable for reading through the same billy.Filesystem.
func (s *Scanner) Scan() ([]string, error) {
	var files []string

	err := util.Walk(s.fs, Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel := Rel(path)
		if info.IsDir() {
			if rel != "" && s.excludedDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if s.included(rel) && !s.excluded(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) included(rel string) bool {
	for _, pattern := range s.include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (s *Scanner) excluded(rel string) bool {
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// excludedDir prunes a directory when it matches an exclude glob itself or
// the part of a "dir/**" glob before the trailing "/**".
func (s *Scanner) excludedDir(rel string) bool {
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if base, found := strings.CutSuffix(pattern, "/**"); found {
			if ok, _ := doublestar.Match(base, rel); ok {
				return true
			}
		}
	}
	return false
}

// Rel converts a walk path to a slash-separated path relative to the root.
func Rel(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "/")
}

// ValidatePatterns reports the first glob in patterns that doublestar rejects.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob %q", p)
		}
	}
	return nil
}
