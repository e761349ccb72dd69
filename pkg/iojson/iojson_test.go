package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"failed": 1}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 1, got["failed"])
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Empty(t, out.String())

	var doc Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &doc))
	assert.Equal(t, "marshal output", doc.Message)
	assert.Contains(t, doc.Data, "json_error")
}

func TestWriteError(t *testing.T) {
	var errOut bytes.Buffer
	require.NoError(t, WriteError(&errOut, "2 file(s) failed", map[string]any{"failed": 2}))

	var doc Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &doc))
	assert.Equal(t, "2 file(s) failed", doc.Message)
	assert.EqualValues(t, 2, doc.Data["failed"])
}
