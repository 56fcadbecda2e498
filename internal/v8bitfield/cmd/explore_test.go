package cmd

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"v8bitfield/internal/catalog"
)

func typeKeys(m *exploreModel, keys ...string) {
	for _, k := range keys {
		m.handleKey(k)
	}
}

func TestExploreModelDecodesInput(t *testing.T) {
	m := newExploreModel(catalog.Layouts(), "v0.12")
	assert.Equal(t, "v0.12", m.layout().Version)
	assert.Contains(t, ansi.Strip(m.content()), "Type a value")

	typeKeys(m, "0", "x", "4", "0", "1", "c", "5", "2")
	assert.Equal(t, "0x401c52", m.input)

	out := ansi.Strip(m.content())
	assert.Contains(t, out, "value 0x200e29 as PropertyDetails:")
	assert.Contains(t, out, "Representation: HeapObject")

	typeKeys(m, "backspace", "backspace")
	assert.Equal(t, "0x401c", m.input)

	typeKeys(m, "ctrl+u")
	assert.Empty(t, m.input)
}

func TestExploreModelKeys(t *testing.T) {
	m := newExploreModel(catalog.Layouts(), "v0.12")

	quit, handled := m.handleKey("q")
	assert.False(t, quit)
	assert.False(t, handled)
	assert.Empty(t, m.input)

	typeKeys(m, "tab")
	assert.Equal(t, "v0.10", m.layout().Version)
	typeKeys(m, "shift+tab")
	assert.Equal(t, "v0.12", m.layout().Version)

	typeKeys(m, "7", "ctrl+d")
	out := ansi.Strip(m.content())
	assert.Contains(t, out, "PropertyType: from bit 0 for 3 bits (exclusive values)")
	assert.Contains(t, out, "value 0x3 as PropertyDetails:")

	typeKeys(m, "z")
	assert.Equal(t, "7", m.input)

	typeKeys(m, "x", "x")
	assert.Contains(t, ansi.Strip(m.content()), "non-numeric value: \"7xx\"")

	quit, handled = m.handleKey("esc")
	require.True(t, quit)
	assert.True(t, handled)
}

func TestExploreModelView(t *testing.T) {
	m := newExploreModel(catalog.Layouts(), "v0.10")
	typeKeys(m, "2")

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "PropertyDetails v0.10 > 2")
	assert.Contains(t, view, "Esc: quit")
}
