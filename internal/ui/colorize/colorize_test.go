package colorize

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorizeJSON(t *testing.T) {
	t.Setenv("V8BITFIELD_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")

	in := `{"layout": "PropertyDetails", "value": 42, "known": true}`
	out, err := ColorizeJSON(in)
	require.NoError(t, err)
	assert.NotEqual(t, in, out)
	assert.Equal(t, in, ansi.Strip(out))
}

func TestColorizeJSONDisabled(t *testing.T) {
	t.Setenv("V8BITFIELD_NO_COLOR", "1")

	in := `{"value": 1}`
	out, err := ColorizeJSON(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
