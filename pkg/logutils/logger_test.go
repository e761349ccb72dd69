package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	l, closer, err := New("warn", "", &buf)
	require.NoError(t, err)
	defer closer()

	l.Info().Msg("hidden")
	l.Warn().Str("path", "Main.kt").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "Main.kt")
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "logs", "scrub.log")

	l, closer, err := New("debug", file, &buf)
	require.NoError(t, err)

	l.Debug().Msg("to file")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Empty(t, buf.String())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
