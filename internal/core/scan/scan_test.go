package scan

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan(t *testing.T) {
	fs := memfs.New()
	for _, p := range []string{
		"/Main.kt",
		"/ui/screens/Home.kt",
		"/ui/screens/Home.java",
		"/data/Repo.kt",
		"/build/generated/Gen.kt",
		"/notes.txt",
	} {
		require.NoError(t, util.WriteFile(fs, p, []byte("x"), 0o644))
	}

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name:    "kotlin files",
			include: []string{"**/*.kt"},
			want:    []string{"/Main.kt", "/build/generated/Gen.kt", "/data/Repo.kt", "/ui/screens/Home.kt"},
		},
		{
			name:    "exclude directory",
			include: []string{"**/*.kt"},
			exclude: []string{"build/**"},
			want:    []string{"/Main.kt", "/data/Repo.kt", "/ui/screens/Home.kt"},
		},
		{
			name:    "multiple includes",
			include: []string{"**/*.kt", "**/*.java"},
			exclude: []string{"**/build/**", "data/*"},
			want:    []string{"/Main.kt", "/ui/screens/Home.java", "/ui/screens/Home.kt"},
		},
		{
			name:    "no includes matches nothing",
			include: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(fs, tt.include, tt.exclude).Scan()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRel(t *testing.T) {
	assert.Equal(t, "ui/Home.kt", Rel("/ui/Home.kt"))
	assert.Equal(t, "", Rel("/"))
}

func TestValidatePatterns(t *testing.T) {
	require.NoError(t, ValidatePatterns([]string{"**/*.kt", "src/{a,b}/*.java"}))

	err := ValidatePatterns([]string{"**/*.kt", "src/[a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "src/[a")
}
