package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtx_RoundTrip(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
}

func TestCtx_Fallback(t *testing.T) {
	assert.NotNil(t, Ctx(context.Background()))
}

func TestPrinter_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Successf("cleaned %d/%d files", 2, 3)
	p.Infof("target %s", "src")
	p.Errorf("failed %s", "a.kt")

	assert.Contains(t, out.String(), "cleaned 2/3 files")
	assert.Contains(t, out.String(), "target src")
	assert.NotContains(t, out.String(), "failed a.kt")
	assert.Contains(t, errOut.String(), "failed a.kt")
}

func TestPrinter_Diff(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)

	p.Diff("--- a.kt\n+++ a.kt\n-// TODO: x\n keep\n")

	assert.Contains(t, out.String(), "-// TODO: x")
	assert.Contains(t, out.String(), "keep")
}
