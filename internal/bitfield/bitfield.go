// Package bitfield models packed machine words as named sub-fields and
// decodes raw values against those models.
//
// A Layout is an ordered list of Specs. Each Spec names a bit range inside
// the word and says how the extracted bits are read: as an opaque number
// (Raw), as exactly one of a set of symbolic values (Enum), or as any
// combination of independent flags (Flags). Layouts are plain values built
// once at package init and never mutated afterwards.
package bitfield

import (
	"errors"
	"fmt"
)

// Mode selects how a sub-field's extracted bits are interpreted.
type Mode int

const (
	Raw Mode = iota
	Enum
	Flags
)

// Label returns the human-readable name of the mode as shown in schema dumps.
func (m Mode) Label() string {
	switch m {
	case Raw:
		return "raw value"
	case Enum:
		return "exclusive values"
	case Flags:
		return "overlapping flags"
	default:
		return "unknown"
	}
}

// String returns a short identifier used in JSON output.
func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case Enum:
		return "enum"
	case Flags:
		return "flags"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Symbol is a named value of an Enum or Flags sub-field.
type Symbol struct {
	Name  string
	Value uint64
}

// Spec describes one sub-field of a packed word.
type Spec struct {
	Name    string
	Mode    Mode
	Offset  uint // least significant bit of the field
	Width   uint // number of bits
	Symbols []Symbol
}

// Layout is a named decomposition of a whole word. Fields are kept in
// declaration order, which is also display order.
type Layout struct {
	Name    string
	Version string
	Fields  []Spec
}

// ErrInvalidSpec is returned by Validate for malformed schema definitions.
var ErrInvalidSpec = errors.New("invalid bitfield spec")

// Validate checks the layout against a word of wordBits bits. Fields may
// overlap each other; they may not run past the end of the word.
func (l Layout) Validate(wordBits uint) error {
	if l.Name == "" {
		return fmt.Errorf("%w: layout has no name", ErrInvalidSpec)
	}
	if len(l.Fields) == 0 {
		return fmt.Errorf("%w: layout %s has no fields", ErrInvalidSpec, l.Name)
	}

	seen := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		if err := f.validate(wordBits); err != nil {
			return fmt.Errorf("layout %s: %w", l.Name, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: layout %s: duplicate field %q", ErrInvalidSpec, l.Name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

func (s Spec) validate(wordBits uint) error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: field at bit %d has no name", ErrInvalidSpec, s.Offset)
	case s.Width == 0:
		return fmt.Errorf("%w: field %s has zero width", ErrInvalidSpec, s.Name)
	case s.Offset+s.Width > wordBits:
		return fmt.Errorf("%w: field %s (bits %d-%d) exceeds %d-bit word",
			ErrInvalidSpec, s.Name, s.Offset, s.Offset+s.Width-1, wordBits)
	}

	switch s.Mode {
	case Raw:
		if len(s.Symbols) != 0 {
			return fmt.Errorf("%w: raw field %s declares symbols", ErrInvalidSpec, s.Name)
		}
	case Enum, Flags:
	default:
		return fmt.Errorf("%w: field %s has unknown mode %d", ErrInvalidSpec, s.Name, int(s.Mode))
	}
	return nil
}

// Field returns the field with the given name.
func (l Layout) Field(name string) (Spec, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Spec{}, false
}
