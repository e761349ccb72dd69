package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPatternFiles_MergeOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeTestFile(filepath.Join(dir, "a.yaml"), "informal: ['\\ba\\b']\ngeneric_max_length: 40\n"))
	require.NoError(t, writeTestFile(filepath.Join(dir, "b.yaml"), "informal: ['\\bb\\b']\ngeneric_phrases: [Setup]\n"))

	got, err := loadPatternFiles(dir, []string{"a.yaml", "b.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{`\ba\b`, `\bb\b`}, got.Informal)
	assert.Equal(t, []string{"Setup"}, got.GenericPhrases)
	assert.Equal(t, 40, got.GenericMaxLength)
}

func TestLoadPatternFiles_AbsolutePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, writeTestFile(file, "task: ['FIXME:']\n"))

	got, err := loadPatternFiles("ignored", []string{file})
	require.NoError(t, err)
	assert.Equal(t, []string{"FIXME:"}, got.Task)
}

func TestLoadPatternFiles_NotFound(t *testing.T) {
	_, err := loadPatternFiles(t.TempDir(), []string{"missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read pattern file")
}

func TestLoadPatternFiles_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeTestFile(filepath.Join(dir, "bad.yaml"), "informal: [\n"))

	_, err := loadPatternFiles(dir, []string{"bad.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse pattern file")
}

func TestAppendPatterns_KeepsLengthWhenZero(t *testing.T) {
	dst := Patterns{Task: []string{"a"}, GenericMaxLength: 50}
	got := appendPatterns(dst, Patterns{Task: []string{"b"}})

	assert.Equal(t, []string{"a", "b"}, got.Task)
	assert.Equal(t, 50, got.GenericMaxLength)
}
