package scrub

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hay-kot/scrub/internal/core/rewrite"
)

// LineDiff renders a line-level diff between before and after. Each run of
// changed lines gets a "@@ -old +new @@" header with 1-based line numbers;
// unchanged lines are omitted. It returns "" when the inputs are equal.
func LineDiff(path, before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)

	oldLine, newLine := 1, 1
	inHunk := false

	for _, d := range diffs {
		chunk := rewrite.SplitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += len(chunk)
			newLine += len(chunk)
			inHunk = false
			continue
		case diffmatchpatch.DiffDelete:
			if !inHunk {
				fmt.Fprintf(&sb, "@@ -%d +%d @@\n", oldLine, newLine)
				inHunk = true
			}
			writePrefixed(&sb, "-", chunk)
			oldLine += len(chunk)
		case diffmatchpatch.DiffInsert:
			if !inHunk {
				fmt.Fprintf(&sb, "@@ -%d +%d @@\n", oldLine, newLine)
				inHunk = true
			}
			writePrefixed(&sb, "+", chunk)
			newLine += len(chunk)
		}
	}

	return sb.String()
}

func writePrefixed(sb *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		sb.WriteString(prefix)
		sb.WriteString(strings.TrimRight(l, "\r\n"))
		sb.WriteByte('\n')
	}
}
