package cmd

import (
	"fmt"

	"v8bitfield/internal/bitfield"
)

// DecodeReport is the JSON form of a decoded word.
type DecodeReport struct {
	Layout  string        `json:"layout" jsonschema:"title=Layout,description=Name of the layout the word was decoded against"`
	Version string        `json:"version" jsonschema:"title=Version,description=Catalog version of the layout,example=v0.12"`
	Raw     string        `json:"raw" jsonschema:"title=Raw,description=Word as supplied (hex),pattern=^0x[0-9a-f]+$"`
	Value   string        `json:"value" jsonschema:"title=Value,description=Word after dropping the Smi tag bit (hex),pattern=^0x[0-9a-f]+$"`
	Fields  []FieldReport `json:"fields" jsonschema:"title=Fields,description=Decoded sub-fields in declaration order"`
}

// FieldReport is one decoded sub-field.
type FieldReport struct {
	Name    string   `json:"name"`
	Offset  uint     `json:"offset" jsonschema:"description=Least significant bit of the field"`
	Width   uint     `json:"width" jsonschema:"minimum=1"`
	Mode    string   `json:"mode" jsonschema:"enum=raw,enum=enum,enum=flags"`
	Value   string   `json:"value" jsonschema:"description=Extracted bits (hex)"`
	Symbols []string `json:"symbols,omitempty" jsonschema:"description=Matched symbol names"`
	Text    string   `json:"text" jsonschema:"description=Rendered value as printed by the text output"`
	Known   bool     `json:"known" jsonschema:"description=False when an enum value matched no symbol"`
}

// LayoutReport is the JSON form of a layout description.
type LayoutReport struct {
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Fields  []SpecReport `json:"fields"`
}

// SpecReport describes one field of a layout.
type SpecReport struct {
	Name    string         `json:"name"`
	Offset  uint           `json:"offset"`
	Width   uint           `json:"width"`
	Mode    string         `json:"mode"`
	Label   string         `json:"label"`
	Symbols []SymbolReport `json:"symbols,omitempty"`
}

// SymbolReport is a named value of an enum or flags field.
type SymbolReport struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

func hex(v uint64) string {
	return fmt.Sprintf("0x%x", v)
}

func newDecodeReport(r bitfield.Result) DecodeReport {
	rep := DecodeReport{
		Layout:  r.Layout.Name,
		Version: r.Layout.Version,
		Raw:     hex(r.Raw),
		Value:   hex(r.Value),
		Fields:  make([]FieldReport, 0, len(r.Fields)),
	}
	for _, f := range r.Fields {
		fr := FieldReport{
			Name:   f.Spec.Name,
			Offset: f.Spec.Offset,
			Width:  f.Spec.Width,
			Mode:   f.Spec.Mode.String(),
			Value:  hex(f.Value),
			Text:   f.Text,
			Known:  f.Known,
		}
		for _, sym := range f.Symbols {
			fr.Symbols = append(fr.Symbols, sym.Name)
		}
		rep.Fields = append(rep.Fields, fr)
	}
	return rep
}

func newLayoutReport(l bitfield.Layout) LayoutReport {
	rep := LayoutReport{
		Name:    l.Name,
		Version: l.Version,
		Fields:  make([]SpecReport, 0, len(l.Fields)),
	}
	for _, f := range l.Fields {
		sr := SpecReport{
			Name:   f.Name,
			Offset: f.Offset,
			Width:  f.Width,
			Mode:   f.Mode.String(),
			Label:  f.Mode.Label(),
		}
		for _, sym := range f.Symbols {
			sr.Symbols = append(sr.Symbols, SymbolReport{Name: sym.Name, Value: sym.Value})
		}
		rep.Fields = append(rep.Fields, sr)
	}
	return rep
}
