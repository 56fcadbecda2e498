package catalog

import "v8bitfield/internal/bitfield"

// V010PropertyDetails is PropertyDetails from the V8 bundled with Node
// v0.10.24 (src/property-details.h).
var V010PropertyDetails = bitfield.Layout{
	Name:    "PropertyDetails",
	Version: "v0.10",
	Fields: []bitfield.Spec{
		{
			Name: "PropertyType", Mode: bitfield.Enum, Offset: 0, Width: 3,
			Symbols: []bitfield.Symbol{
				{"NORMAL", 0},
				{"FIELD", 1},
				{"CONSTANT", 2},
				{"CALLBACKS", 3},
				{"HANDLER", 4},
				{"INTERCEPTOR", 5},
				{"TRANSITION", 6},
				{"NONEXISTENT", 7},
			},
		},
		{
			Name: "PropertyAttributes", Mode: bitfield.Flags, Offset: 3, Width: 3,
			Symbols: []bitfield.Symbol{
				{"NONE", 0},
				{"READ_ONLY", 1 << 0},
				{"DONT_ENUM", 1 << 1},
				{"DONT_DELETE", 1 << 2},
				{"ABSENT", 16},
			},
		},
		{
			Name: "DeletedField", Mode: bitfield.Flags, Offset: 6, Width: 1,
			Symbols: []bitfield.Symbol{
				{"DELETED", 1},
			},
		},
		{Name: "DictionaryStorage", Mode: bitfield.Raw, Offset: 7, Width: 24},
		{Name: "DescriptorStorage", Mode: bitfield.Raw, Offset: 7, Width: 11},
		{Name: "DescriptorPointer", Mode: bitfield.Raw, Offset: 18, Width: 11},
	},
}

// V012PropertyDetails is PropertyDetails from the V8 bundled with Node
// v0.12. Representation deliberately shares bit 6 with DeletedField.
var V012PropertyDetails = bitfield.Layout{
	Name:    "PropertyDetails",
	Version: "v0.12",
	Fields: []bitfield.Spec{
		{
			Name: "PropertyType", Mode: bitfield.Enum, Offset: 0, Width: 3,
			Symbols: []bitfield.Symbol{
				{"NORMAL", 0},
				{"FIELD", 1},
				{"CONSTANT", 2},
				{"CALLBACKS", 3},
				{"HANDLER", 4},
				{"INTERCEPTOR", 5},
				{"NONEXISTENT", 6},
			},
		},
		{
			Name: "PropertyAttributes", Mode: bitfield.Flags, Offset: 3, Width: 3,
			Symbols: []bitfield.Symbol{
				{"NONE", 0},
				{"READ_ONLY", 1 << 0},
				{"DONT_ENUM", 1 << 1},
				{"DONT_DELETE", 1 << 2},
				{"STRING", 8},
				{"SYMBOLIC", 16},
				{"PRIVATE_SYMBOL", 32},
				{"ABSENT", 64},
			},
		},
		{
			Name: "DeletedField", Mode: bitfield.Flags, Offset: 6, Width: 1,
			Symbols: []bitfield.Symbol{
				{"DELETED", 1},
			},
		},
		{Name: "DictionaryStorage", Mode: bitfield.Raw, Offset: 7, Width: 24},
		{
			Name: "Representation", Mode: bitfield.Enum, Offset: 6, Width: 4,
			Symbols: []bitfield.Symbol{
				{"None", 0},
				{"Integer8", 1},
				{"UInteger8", 2},
				{"Integer16", 3},
				{"UInteger16", 4},
				{"Smi", 5},
				{"Integer32", 6},
				{"Double", 7},
				{"HeapObject", 8},
				{"Tagged", 9},
				{"External", 10},
			},
		},
		{Name: "DescriptorPointer", Mode: bitfield.Raw, Offset: 10, Width: 10},
		{Name: "FieldIndex", Mode: bitfield.Raw, Offset: 20, Width: 10},
	},
}
