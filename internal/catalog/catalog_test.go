package catalog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"v8bitfield/internal/bitfield"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "", want: "v0.12"},
		{version: "v0.12", want: "v0.12"},
		{version: "0.12", want: "v0.12"},
		{version: "V0.10", want: "v0.10"},
		{version: " 0.10 ", want: "v0.10"},
	}
	for _, tt := range tests {
		l, err := Lookup(tt.version)
		require.NoError(t, err, tt.version)
		assert.Equal(t, tt.want, l.Version)
		assert.Equal(t, "PropertyDetails", l.Name)
	}

	_, err := Lookup("v4.2")
	require.ErrorIs(t, err, ErrUnknownLayout)
	assert.Contains(t, err.Error(), "v0.10, v0.12")
}

func TestCatalogLayoutsValid(t *testing.T) {
	assert.Equal(t, []string{"v0.10", "v0.12"}, Versions())
	for _, l := range Layouts() {
		assert.NoError(t, l.Validate(SmiBits), l.Version)
	}
	assert.Len(t, V012PropertyDetails.Fields, 7)
	assert.Len(t, V010PropertyDetails.Fields, 6)
}

func TestDecodeZero(t *testing.T) {
	r := bitfield.DecodeWord(Default, 0)

	got := map[string]string{}
	for _, f := range r.Fields {
		got[f.Spec.Name] = f.Text
	}
	assert.Equal(t, map[string]string{
		"PropertyType":       "NORMAL",
		"PropertyAttributes": "",
		"DeletedField":       "",
		"DictionaryStorage":  "0x0",
		"Representation":     "None",
		"DescriptorPointer":  "0x0",
		"FieldIndex":         "0x0",
	}, got)
}

func TestDecodeV012(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bitfield.WriteDecode(&buf, bitfield.DecodeWord(V012PropertyDetails, 0x401c52)))

	want := "value 0x200e29 as PropertyDetails:\n" +
		"            PropertyType: FIELD\n" +
		"      PropertyAttributes: READ_ONLY DONT_DELETE \n" +
		"            DeletedField: \n" +
		"       DictionaryStorage: 0x401c\n" +
		"          Representation: HeapObject\n" +
		"       DescriptorPointer: 0x3\n" +
		"              FieldIndex: 0x2\n"
	assert.Equal(t, want, buf.String())
}

func TestDecodeAllOnes(t *testing.T) {
	r012 := bitfield.DecodeWord(V012PropertyDetails, 0x7fffffff)
	text := func(r bitfield.Result, name string) string {
		for _, f := range r.Fields {
			if f.Spec.Name == name {
				return f.Text
			}
		}
		t.Fatalf("no field %s", name)
		return ""
	}

	assert.Equal(t, bitfield.UnknownValue, text(r012, "PropertyType"))
	assert.Equal(t, "READ_ONLY DONT_ENUM DONT_DELETE ", text(r012, "PropertyAttributes"))
	assert.Equal(t, "DELETED ", text(r012, "DeletedField"))
	assert.Equal(t, bitfield.UnknownValue, text(r012, "Representation"))
	assert.Equal(t, "0x7fffff", text(r012, "DictionaryStorage"))
	assert.Equal(t, "0x3ff", text(r012, "FieldIndex"))

	r010 := bitfield.DecodeWord(V010PropertyDetails, 0x7fffffff)
	assert.Equal(t, "NONEXISTENT", text(r010, "PropertyType"))
	assert.Equal(t, "0x7ff", text(r010, "DescriptorStorage"))
	assert.Equal(t, "0x7ff", text(r010, "DescriptorPointer"))
}

func TestDescriptionV012(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bitfield.WriteDescription(&buf, V012PropertyDetails))

	out := buf.String()
	for _, line := range []string{
		"PropertyDetails:\n",
		"    PropertyType: from bit 0 for 3 bits (exclusive values)\n",
		"                  NORMAL = 0x0\n",
		"    PropertyAttributes: from bit 3 for 3 bits (overlapping flags)\n",
		"          PRIVATE_SYMBOL = 0x20\n",
		"    DeletedField: from bit 6 for 1 bits (overlapping flags)\n",
		"    DictionaryStorage: from bit 7 for 24 bits (raw value)\n",
		"    Representation: from bit 6 for 4 bits (exclusive values)\n",
		"                External = 0xa\n",
		"    DescriptorPointer: from bit 10 for 10 bits (raw value)\n",
		"    FieldIndex: from bit 20 for 10 bits (raw value)\n",
	} {
		assert.Contains(t, out, line)
	}
}
