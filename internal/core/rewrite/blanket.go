package rewrite

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	docBlockRe   = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	plainBlockRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// Blanket removes every block comment from content regardless of what it
// says. Doc-style blocks go first, then any plain block the first pass left.
// Runs of three or more newlines are cut to two, trailing whitespace is
// trimmed from every line, and MergeBlankLines runs last.
//
// Line comments are kept. Delimiters inside string literals are matched like
// any other text.
func Blanket(content string) Result {
	var removals []Removal

	// Line numbers of the second pass refer to the text left by the first.
	strip := func(re *regexp.Regexp, src string) string {
		for _, loc := range re.FindAllStringIndex(src, -1) {
			removals = append(removals, Removal{
				Line:  strings.Count(src[:loc[0]], "\n") + 1,
				Lines: strings.Count(src[loc[0]:loc[1]], "\n") + 1,
			})
		}
		return re.ReplaceAllString(src, "")
	}

	out := strip(docBlockRe, content)
	out = strip(plainBlockRe, out)
	out = blankRunRe.ReplaceAllString(out, "\n\n")

	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	out = strings.Join(lines, "\n")

	return Result{
		Content:  JoinLines(MergeBlankLines(SplitLines(out))),
		Removals: removals,
	}
}
