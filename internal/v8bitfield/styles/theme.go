package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"v8bitfield/internal/bitfield"
)

// Theme colors the decode and describe output. Layout and padding are the
// same as the plain text output; only the styling differs.
type Theme struct {
	Header  lipgloss.Style
	Field   lipgloss.Style
	Raw     lipgloss.Style
	Symbol  lipgloss.Style
	Unknown lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns the charmtone palette theme.
func DefaultTheme() Theme {
	return Theme{
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Charple.Hex())).Bold(true),
		Field:   lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Smoke.Hex())),
		Raw:     lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Coral.Hex())),
		Symbol:  lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Guac.Hex())),
		Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Cherry.Hex())).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(charmtone.Squid.Hex())),
	}
}

// RenderDecode formats a decoded word like bitfield.WriteDecode, with color.
func (t Theme) RenderDecode(r bitfield.Result) string {
	var b strings.Builder
	b.WriteString(t.Header.Render(fmt.Sprintf("value 0x%x as %s:", r.Value, r.Layout.Name)))
	b.WriteByte('\n')
	for _, f := range r.Fields {
		b.WriteString("    ")
		b.WriteString(t.Field.Render(fmt.Sprintf("%20s", f.Spec.Name)))
		b.WriteString(t.Muted.Render(":"))
		b.WriteByte(' ')
		b.WriteString(t.value(f))
		b.WriteByte('\n')
	}
	return b.String()
}

func (t Theme) value(f bitfield.FieldValue) string {
	switch {
	case !f.Known:
		return t.Unknown.Render(f.Text)
	case f.Spec.Mode == bitfield.Raw:
		return t.Raw.Render(f.Text)
	case len(f.Symbols) == 0:
		return ""
	}
	names := make([]string, len(f.Symbols))
	for i, sym := range f.Symbols {
		names[i] = t.Symbol.Render(sym.Name)
	}
	if f.Spec.Mode == bitfield.Flags {
		return strings.Join(names, " ") + " "
	}
	return names[0]
}

// RenderDescription formats a layout like bitfield.WriteDescription, with
// color.
func (t Theme) RenderDescription(l bitfield.Layout) string {
	var b strings.Builder
	b.WriteString(t.Header.Render(l.Name + ":"))
	b.WriteByte('\n')
	for _, f := range l.Fields {
		fmt.Fprintf(&b, "    %s%s\n",
			t.Field.Render(f.Name),
			t.Muted.Render(fmt.Sprintf(": from bit %d for %d bits (%s)", f.Offset, f.Width, f.Mode.Label())))
		for _, sym := range f.Symbols {
			fmt.Fprintf(&b, "    %s %s\n",
				t.Symbol.Render(fmt.Sprintf("%20s", sym.Name)),
				t.Raw.Render(fmt.Sprintf("= 0x%x", sym.Value)))
		}
	}
	return b.String()
}
