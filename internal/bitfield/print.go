package bitfield

import (
	"fmt"
	"io"
	"strings"
)

// WriteDecode prints a decoded word, one line per field.
//
//	value 0x2a as PropertyDetails:
//	            PropertyType: CONSTANT
func WriteDecode(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "value 0x%x as %s:\n", r.Value, r.Layout.Name); err != nil {
		return err
	}
	for _, f := range r.Fields {
		if _, err := fmt.Fprintf(w, "    %20s: %s\n", f.Spec.Name, f.Text); err != nil {
			return err
		}
	}
	return nil
}

// WriteDescription prints the layout itself: every field's bit range and
// mode followed by its symbol table.
func WriteDescription(w io.Writer, l Layout) error {
	if _, err := fmt.Fprintf(w, "%s:\n", l.Name); err != nil {
		return err
	}
	for _, f := range l.Fields {
		if _, err := fmt.Fprintf(w, "    %s: from bit %d for %d bits (%s)\n",
			f.Name, f.Offset, f.Width, f.Mode.Label()); err != nil {
			return err
		}
		for _, sym := range f.Symbols {
			if _, err := fmt.Fprintf(w, "    %20s = 0x%x\n", sym.Name, sym.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Markdown renders the layout description as a Markdown document, one
// section per field with a table of its symbols.
func Markdown(l Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s", l.Name)
	if l.Version != "" {
		fmt.Fprintf(&b, " (%s)", l.Version)
	}
	b.WriteString("\n\n")

	b.WriteString("| Field | Bits | Width | Mode |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, f := range l.Fields {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", f.Name, bitRange(f), f.Width, f.Mode.Label())
	}

	for _, f := range l.Fields {
		if len(f.Symbols) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", f.Name)
		b.WriteString("| Symbol | Value |\n")
		b.WriteString("|---|---|\n")
		for _, sym := range f.Symbols {
			fmt.Fprintf(&b, "| `%s` | `0x%x` |\n", sym.Name, sym.Value)
		}
	}
	return b.String()
}

func bitRange(f Spec) string {
	if f.Width == 1 {
		return fmt.Sprintf("%d", f.Offset)
	}
	return fmt.Sprintf("%d-%d", f.Offset, f.Offset+f.Width-1)
}
