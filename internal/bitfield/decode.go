package bitfield

import (
	"fmt"
	"strings"
)

// UnknownValue is printed for an Enum field whose value matches no symbol.
const UnknownValue = "UNKNOWN VALUE"

// Match returns the symbols that describe v.
//
// Enum fields yield at most one symbol, the first declared one equal to v.
// Flags fields yield every symbol sharing a set bit with v, in declaration
// order. A flag declared as 0 can therefore never match.
func (s Spec) Match(v uint64) []Symbol {
	var out []Symbol
	switch s.Mode {
	case Enum:
		for _, sym := range s.Symbols {
			if sym.Value == v {
				return []Symbol{sym}
			}
		}
	case Flags:
		for _, sym := range s.Symbols {
			if v&sym.Value != 0 {
				out = append(out, sym)
			}
		}
	}
	return out
}

// Render formats an extracted value of the field for display.
func (s Spec) Render(v uint64) string {
	return s.render(v, s.Match(v))
}

func (s Spec) render(v uint64, matched []Symbol) string {
	switch s.Mode {
	case Enum:
		if len(matched) == 0 {
			return UnknownValue
		}
		return matched[0].Name
	case Flags:
		var b strings.Builder
		for _, sym := range matched {
			b.WriteString(sym.Name)
			b.WriteByte(' ')
		}
		return b.String()
	default:
		return fmt.Sprintf("0x%x", v)
	}
}

// FieldValue is one decoded sub-field.
type FieldValue struct {
	Spec    Spec
	Value   uint64
	Symbols []Symbol
	Text    string
	// Known is false only for an Enum value that matched no symbol.
	Known bool
}

// Result is a whole word decoded against a layout.
type Result struct {
	Layout Layout
	Raw    uint64 // word as supplied, before Untag
	Value  uint64 // word the fields were extracted from
	Fields []FieldValue
}

// Decode extracts and renders every field of l from word. The word is used
// as is; see DecodeWord for tagged input.
func Decode(l Layout, word uint64) Result {
	r := Result{
		Layout: l,
		Raw:    word,
		Value:  word,
		Fields: make([]FieldValue, 0, len(l.Fields)),
	}
	for _, f := range l.Fields {
		v := Extract(word, f.Offset, f.Width)
		matched := f.Match(v)
		r.Fields = append(r.Fields, FieldValue{
			Spec:    f,
			Value:   v,
			Symbols: matched,
			Text:    f.render(v, matched),
			Known:   f.Mode != Enum || len(matched) > 0,
		})
	}
	return r
}

// DecodeWord untags a raw Smi word and decodes it against l. This is the
// only place the pre-decode shift is applied.
func DecodeWord(l Layout, raw uint64) Result {
	r := Decode(l, Untag(raw))
	r.Raw = raw
	return r
}
