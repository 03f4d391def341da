package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel).Named("schedule")
	l.Debug("hidden")
	l.Info("resolved", String("zone", "Asia/Tokyo"))

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, is.Contains(out, `"zone":"Asia/Tokyo"`))
	assert.Assert(t, is.Contains(out, `"logger":"schedule"`))
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WarnLevel)
	l.Info("first")
	l.SetLevel(DebugLevel)
	l.Debug("second")
	assert.Assert(t, !strings.Contains(buf.String(), "first"))
	assert.Assert(t, is.Contains(buf.String(), "second"))
	assert.Equal(t, l.Level(), DebugLevel)
}

func TestWithFilter(t *testing.T) {
	opt, err := WithFilter("*:schedule")
	assert.NilError(t, err)

	var buf bytes.Buffer
	l := New(&buf, DebugLevel, opt)
	l.Named("schedule").Info("kept")
	l.Named("sql").Info("dropped")

	assert.Assert(t, is.Contains(buf.String(), "kept"))
	assert.Assert(t, !strings.Contains(buf.String(), "dropped"))
}

func TestContext(t *testing.T) {
	assert.Equal(t, GetFromContext(context.Background()), Default())

	l := New(&bytes.Buffer{}, InfoLevel)
	ctx := AddToContext(context.Background(), l)
	assert.Equal(t, GetFromContext(ctx), l)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	assert.NilError(t, err)
	assert.Equal(t, lvl, WarnLevel)

	_, err = ParseLevel("loud")
	assert.Assert(t, err != nil)
}
