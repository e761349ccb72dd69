// Package rewrite reconstructs source file content with comments removed.
//
// Two strategies are provided: Selective removes only comments flagged by a
// classify.Rules, Blanket removes every block comment regardless of content.
// Both finish with MergeBlankLines.
package rewrite

import "strings"

// SplitLines splits content into lines that keep their terminators, so that
// joining the result reproduces content exactly.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines produced by SplitLines.
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
	}
	return b.String()
}

// IsBlank reports whether a line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// MergeBlankLines drops every blank line that directly follows another blank
// line. Applying it twice yields the same result as applying it once.
func MergeBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, l := range lines {
		blank := IsBlank(l)
		if blank && prevBlank {
			continue
		}
		out = append(out, l)
		prevBlank = blank
	}
	return out
}
