package rewrite

import (
	"strings"

	"github.com/hay-kot/scrub/internal/core/classify"
)

// Removal describes one comment unit dropped by a rewrite.
type Removal struct {
	Line  int            `json:"line"`  // 1-based line of the first removed line
	Lines int            `json:"lines"` // number of lines removed
	Label classify.Label `json:"label,omitempty"`
}

// Result is the output of a rewrite.
type Result struct {
	Content  string
	Removals []Removal
}

// selectiveState carries the per-file state of a Selective pass.
type selectiveState struct {
	rules *classify.Rules

	out      []string
	removals []Removal

	inBlock    bool
	block      []string
	blockStart int

	// skipBlank is set after a removal and suppresses exactly one following
	// blank line. Only a code line or that blank line clears it.
	skipBlank bool
}

// Selective removes flagged comments from content.
//
// A block comment is buffered from its opener to the first closer and is
// dropped whole if any of its lines uses informal language; otherwise it is
// kept verbatim. The first "*/" ends the block, even mid-line; code after it
// survives a dropped block. A "//" line is dropped when rules.Match returns a
// label.
// After each removal one following blank line is skipped, then the whole
// result goes through MergeBlankLines.
//
// Block detection is line based. Delimiters inside string literals are not
// recognized as such and can shift block boundaries.
func Selective(content string, rules *classify.Rules) Result {
	s := &selectiveState{rules: rules}

	for i, line := range SplitLines(content) {
		s.step(i+1, line)
	}

	// An unterminated block at EOF is kept as is.
	if s.inBlock {
		s.out = append(s.out, s.block...)
	}

	return Result{
		Content:  JoinLines(MergeBlankLines(s.out)),
		Removals: s.removals,
	}
}

func (s *selectiveState) step(n int, line string) {
	stripped := strings.TrimSpace(line)

	if s.inBlock {
		s.block = append(s.block, line)
		if end := strings.Index(line, "*/"); end >= 0 {
			s.closeBlock(line[end+len("*/"):])
		}
		return
	}

	if strings.HasPrefix(stripped, "/*") {
		s.inBlock = true
		s.block = []string{line}
		s.blockStart = n

		// The closer must come after the opener, so "/*/" stays open.
		body := strings.Index(line, "/*") + len("/*")
		if end := strings.Index(line[body:], "*/"); end >= 0 {
			s.closeBlock(line[body+end+len("*/"):])
		}
		return
	}

	if strings.HasPrefix(stripped, "//") {
		if label := s.rules.Match(line); label != "" {
			s.removals = append(s.removals, Removal{Line: n, Lines: 1, Label: label})
			s.skipBlank = true
			return
		}
		s.out = append(s.out, line)
		return
	}

	if s.skipBlank && stripped == "" {
		s.skipBlank = false
		return
	}

	s.skipBlank = false
	s.out = append(s.out, line)
}

// closeBlock judges the buffered block. tail is the text after the closer on
// the closing line; when the block is dropped, code in tail is kept at the
// opener's indentation.
func (s *selectiveState) closeBlock(tail string) {
	if s.rules.BlockHasInformalLanguage(s.block) {
		s.removals = append(s.removals, Removal{
			Line:  s.blockStart,
			Lines: len(s.block),
			Label: classify.LabelInformal,
		})
		s.skipBlank = true

		if !IsBlank(tail) {
			first := s.block[0]
			indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
			s.out = append(s.out, indent+strings.TrimLeft(tail, " \t"))
			s.skipBlank = false
		}
	} else {
		s.out = append(s.out, s.block...)
	}

	s.inBlock = false
	s.block = nil
}
