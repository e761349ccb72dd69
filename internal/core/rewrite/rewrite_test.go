package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/scrub/internal/core/classify"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a\n", "b\n"}},
		{"no trailing newline", "a\nb", []string{"a\n", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"only newlines", "\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, JoinLines(got))
		})
	}
}

func TestMergeBlankLines(t *testing.T) {
	in := SplitLines("a\n\n  \n\t\nb\n\nc\n")
	once := MergeBlankLines(in)

	assert.Equal(t, "a\n\nb\n\nc\n", JoinLines(once))
	assert.Equal(t, once, MergeBlankLines(once), "merge must be idempotent")
}

func TestSelective(t *testing.T) {
	rules := classify.DefaultRules()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "flagged doc block removed with trailing blank",
			in: `package app

/**
 * Yeh screen user ka profile dikhata hai
 * Loads data.
 */

class ProfileScreen {
    fun render() {}
}
`,
			want: `package app

class ProfileScreen {
    fun render() {}
}
`,
		},
		{
			name: "clean doc block kept verbatim",
			in: `/**
 * Renders the profile screen.
 *
 * @param id user id
 */
fun profile(id: String) {}
`,
			want: `/**
 * Renders the profile screen.
 *
 * @param id user id
 */
fun profile(id: String) {}
`,
		},
		{
			name: "flagged line comments removed",
			in: `fun a() {
    // TODO: remove this
    val x = 1
    // Yeh value cache karta hai

    val y = 2
    // computes sum
    return x + y
}
`,
			want: `fun a() {
    val x = 1
    val y = 2
    // computes sum
    return x + y
}
`,
		},
		{
			name: "only one blank skipped then runs merged",
			in:   "a\n// TODO: x\n\n\n\nb\n",
			want: "a\n\nb\n",
		},
		{
			name: "blank runs merged without removals",
			in:   "a\n\n\n\nb\n",
			want: "a\n\nb\n",
		},
		{
			name: "single line flagged block",
			in:   "/** Yeh hai */\nval x = 1\n",
			want: "val x = 1\n",
		},
		{
			name: "single line clean block",
			in:   "/** Kept doc */\nval x = 1\n",
			want: "/** Kept doc */\nval x = 1\n",
		},
		{
			name: "opener inside block does not restart it",
			in:   "/*\n * outer\n/* inner\n */\ncode()\n",
			want: "/*\n * outer\n/* inner\n */\ncode()\n",
		},
		{
			name: "unterminated block kept",
			in:   "code()\n/**\n * Yeh hai\n",
			want: "code()\n/**\n * Yeh hai\n",
		},
		{
			name: "no comments is untouched",
			in:   "package a\n\nfun b() = 1\n",
			want: "package a\n\nfun b() = 1\n",
		},
		{
			name: "block closed mid-line keeps following code",
			in:   "/* cache ke liye */ val cache = mutableMapOf<String, Int>()\nfun load() = cache.size\n\n/**\n * Returns the size.\n */\nfun size() = 1\n",
			want: "val cache = mutableMapOf<String, Int>()\nfun load() = cache.size\n\n/**\n * Returns the size.\n */\nfun size() = 1\n",
		},
		{
			name: "clean block closed mid-line kept verbatim",
			in:   "/* clean note */ val a = 1\nval b = 2\n",
			want: "/* clean note */ val a = 1\nval b = 2\n",
		},
		{
			name: "code after closer on last block line",
			in:   "    /**\n     * Yeh helper\n     */ fun help() = 1\nfun other() = 2\n",
			want: "    fun help() = 1\nfun other() = 2\n",
		},
		{
			name: "slash star slash does not close",
			in:   "/*/ Yeh hai\n */\nx()\n",
			want: "x()\n",
		},
		{
			name: "crlf line endings preserved",
			in:   "// TODO: x\r\n\r\nval a = 1\r\n/**\r\n * Doc\r\n */\r\n",
			want: "val a = 1\r\n/**\r\n * Doc\r\n */\r\n",
		},
		{
			name: "kept line comment does not clear skip flag",
			in:   "// TODO: one\n// keep\n\nx()\n",
			want: "// keep\nx()\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Selective(tt.in, rules)
			assert.Equal(t, tt.want, got.Content)
		})
	}
}

func TestSelective_Removals(t *testing.T) {
	rules := classify.DefaultRules()

	in := "package app\n\n/**\n * Yeh hai\n * more\n */\nfun a() {\n    // TODO: later\n}\n"
	got := Selective(in, rules)

	assert.Equal(t, []Removal{
		{Line: 3, Lines: 4, Label: classify.LabelInformal},
		{Line: 8, Lines: 1, Label: classify.LabelTask},
	}, got.Removals)
}

func TestBlanket(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "doc block removed",
			in:   "/**\n * Doc\n */\nfun a() {}\n",
			want: "\nfun a() {}\n",
		},
		{
			name: "plain inline block removed",
			in:   "val a = 1 /* inline */ + 2\n",
			want: "val a = 1  + 2\n",
		},
		{
			name: "line comments kept",
			in:   "// keep me\nval a = 1\n",
			want: "// keep me\nval a = 1\n",
		},
		{
			name: "long blank run collapsed",
			in:   "a\n\n\n\n\nb\n",
			want: "a\n\nb\n",
		},
		{
			name: "trailing whitespace trimmed",
			in:   "val x = 1   \n\tfoo\t\n",
			want: "val x = 1\n\tfoo\n",
		},
		{
			name: "whitespace only blank run merged",
			in:   "a\n  \n\t\n \nb\n",
			want: "a\n\nb\n",
		},
		{
			name: "no trailing newline preserved",
			in:   "a /* x */",
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blanket(tt.in).Content)
		})
	}
}

func TestBlanket_Idempotent(t *testing.T) {
	in := `package app

/**
 * Main screen
 */
class Screen {


    /* state */
    val s = 1 /* inline */



    // kept
}
`
	first := Blanket(in).Content
	second := Blanket(first).Content

	assert.Equal(t, first, second)
	assert.NotContains(t, first, "/*")
	assert.Contains(t, first, "// kept")
}

func TestBlanket_Removals(t *testing.T) {
	got := Blanket("/** a */\n/* b\n c */\nx\n")
	assert.Len(t, got.Removals, 2)
	assert.Equal(t, 2, got.Removals[1].Lines)
}

func TestSelective_Idempotent(t *testing.T) {
	rules := classify.DefaultRules()
	in := "/**\n * Yeh hai\n */\n\n\nfun a() {}\n// TODO: x\n\nval b = 2\n"

	first := Selective(in, rules).Content
	assert.Equal(t, first, Selective(first, rules).Content)
}
