// Package imports removes repeated import statements from a source file.
package imports

import (
	"strings"

	"github.com/hay-kot/scrub/internal/core/rewrite"
)

// DefaultPrefix marks an import statement in Kotlin and Java sources.
const DefaultPrefix = "import "

// Dedupe drops every import line that is an exact copy of an earlier import
// line in content. A line is an import when its trimmed text starts with
// prefix. Comparison is on the raw line, terminator included, so lines that
// differ only in whitespace are both kept. Nothing else is moved or removed.
//
// It returns the new content and the number of lines dropped.
func Dedupe(content, prefix string) (string, int) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	lines := rewrite.SplitLines(content)
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			if _, ok := seen[line]; ok {
				dropped++
				continue
			}
			seen[line] = struct{}{}
		}
		out = append(out, line)
	}

	if dropped == 0 {
		return content, 0
	}
	return rewrite.JoinLines(out), dropped
}
