// Package classify decides whether a comment line or comment block should be
// removed, based on compiled pattern sets.
package classify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Label identifies the pattern set a match came from.
type Label string

const (
	LabelInformal Label = "informal"
	LabelTask     Label = "task"
	LabelGeneric  Label = "generic"
)

// PatternSet is an ordered, immutable list of compiled patterns.
type PatternSet struct {
	patterns []*regexp.Regexp
}

// CompilePatterns compiles each expression case-insensitively. The error
// names the label and index of the first pattern that failed to compile.
func CompilePatterns(label Label, exprs []string) (PatternSet, error) {
	set := PatternSet{patterns: make([]*regexp.Regexp, 0, len(exprs))}
	for i, expr := range exprs {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return PatternSet{}, fmt.Errorf("%s pattern %d: %w", label, i, err)
		}
		set.patterns = append(set.patterns, re)
	}
	return set, nil
}

// MatchString reports whether any pattern in the set matches text.
func (s PatternSet) MatchString(text string) bool {
	for _, re := range s.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the set.
func (s PatternSet) Len() int { return len(s.patterns) }

// Rules is the immutable classifier configuration. Build it once per run and
// pass it to every rewrite.
type Rules struct {
	Informal         PatternSet
	Task             PatternSet
	GenericPhrases   []string
	GenericMaxLength int
}

// bareDelimiters are structural block-comment lines that are never removed on
// their own.
var bareDelimiters = map[string]struct{}{
	"*":   {},
	"/*":  {},
	"/**": {},
	"*/":  {},
}

// MatchesInformalLanguage reports whether text contains a word from the
// informal vocabulary.
func (r *Rules) MatchesInformalLanguage(text string) bool {
	return r.Informal.MatchString(trimEOL(text))
}

// MatchesTaskMarker reports whether text carries a task marker in line or
// block form.
func (r *Rules) MatchesTaskMarker(text string) bool {
	return r.Task.MatchString(trimEOL(text))
}

// MatchesGenericPhrase reports whether text is a short block-comment
// continuation line made of boilerplate. Lines at or above GenericMaxLength
// characters are kept even if they contain a phrase.
func (r *Rules) MatchesGenericPhrase(text string) bool {
	stripped := strings.TrimSpace(text)
	if !strings.HasPrefix(stripped, "*") {
		return false
	}
	if utf8.RuneCountInString(stripped) >= r.GenericMaxLength {
		return false
	}
	for _, phrase := range r.GenericPhrases {
		if phrase != "" && strings.Contains(stripped, phrase) {
			return true
		}
	}
	return false
}

// IsBareDelimiter reports whether text is only a block-comment delimiter.
func IsBareDelimiter(text string) bool {
	_, ok := bareDelimiters[strings.TrimSpace(text)]
	return ok
}

// ShouldRemove is the full removal decision for a single line.
func (r *Rules) ShouldRemove(text string) bool {
	return r.Match(text) != ""
}

// Match returns the label of the first rule that would remove text, or the
// empty label.
func (r *Rules) Match(text string) Label {
	switch {
	case IsBareDelimiter(text):
		return ""
	case r.MatchesInformalLanguage(text):
		return LabelInformal
	case r.MatchesTaskMarker(text):
		return LabelTask
	case r.MatchesGenericPhrase(text):
		return LabelGeneric
	default:
		return ""
	}
}

// BlockHasInformalLanguage reports whether any line of a comment block
// matches the informal vocabulary.
func (r *Rules) BlockHasInformalLanguage(lines []string) bool {
	for _, l := range lines {
		if r.MatchesInformalLanguage(l) {
			return true
		}
	}
	return false
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}
