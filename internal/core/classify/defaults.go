package classify

// DefaultInformalPatterns matches romanized Hindi function words that mark a
// casual, mixed-language comment.
func DefaultInformalPatterns() []string {
	return []string{
		`\bkarne\b`, `\bkarta\b`, `\bkarti\b`, `\bkarte\b`,
		`\bhai\b`, `\bhain\b`, `\bho\b`,
		`\bke liye\b`, `\bko\b`, `\bmein\b`, `\bse\b`,
		`\baur\b`, `\bya\b`, `\bki\b`, `\bka\b`,
		`\bAbhi\b`, `\bYeh\b`, `\bVah\b`,
		`\bdekhne\b`, `\bbanata\b`, `\bbanati\b`,
		`\bhandle\b.*\bkarta\b`, `\bhandle\b.*\bkarti\b`,
	}
}

// DefaultTaskPatterns matches TODO markers in line and block form.
func DefaultTaskPatterns() []string {
	return []string{
		`//\s*TODO:.*$`,
		`/\*\*?\s*TODO:.*?\*/`,
	}
}

// DefaultGenericPhrases are boilerplate descriptions that carry no information.
func DefaultGenericPhrases() []string {
	return []string{
		"Main entry point",
		"Main composable",
		"Main screen",
		"Handle",
		"Process",
		"Manage",
	}
}

// DefaultGenericMaxLength is the exclusive upper bound on the stripped length
// of a line removed by the generic-phrase rule.
const DefaultGenericMaxLength = 50

// NewRules compiles the given patterns into Rules.
func NewRules(informal, task, genericPhrases []string, genericMaxLength int) (*Rules, error) {
	inf, err := CompilePatterns(LabelInformal, informal)
	if err != nil {
		return nil, err
	}
	tsk, err := CompilePatterns(LabelTask, task)
	if err != nil {
		return nil, err
	}

	phrases := make([]string, len(genericPhrases))
	copy(phrases, genericPhrases)

	return &Rules{
		Informal:         inf,
		Task:             tsk,
		GenericPhrases:   phrases,
		GenericMaxLength: genericMaxLength,
	}, nil
}

// DefaultRules returns Rules built from the default vocabulary.
func DefaultRules() *Rules {
	r, err := NewRules(DefaultInformalPatterns(), DefaultTaskPatterns(), DefaultGenericPhrases(), DefaultGenericMaxLength)
	if err != nil {
		panic(err)
	}
	return r
}
