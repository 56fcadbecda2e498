package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
	assert.Equal(t, log.InfoLevel, ParseLevel("verbose"))
}

func TestNewLoggerWithWriter(t *testing.T) {
	t.Setenv("V8BITFIELD_LOG_LEVEL", "debug")
	t.Setenv("V8BITFIELD_LOG_PREFIX", "test ")

	var buf bytes.Buffer
	lg := NewLoggerWithWriter(&buf)
	lg.Debug("decoding", "layout", "v0.12")

	out := buf.String()
	assert.Contains(t, out, "test")
	assert.Contains(t, out, "decoding")
	assert.Contains(t, out, "layout=v0.12")
	require.NoError(t, lg.Close())
	assert.True(t, IsDebug())
}

func TestNewLoggerDefaultLevel(t *testing.T) {
	t.Setenv("V8BITFIELD_LOG_LEVEL", "")

	var buf bytes.Buffer
	lg := NewLoggerWithWriter(&buf)
	lg.Debug("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, IsDebug())
}
