package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{in: "0", want: 0},
		{in: "", want: 0},
		{in: "42", want: 42},
		{in: "0x2a", want: 42},
		{in: "0X2A", want: 42},
		{in: "052", want: 42},
		{in: "00", want: 0},
		{in: "  42", want: 42},
		{in: "\t0x10", want: 16},
		{in: "+7", want: 7},
		{in: "-1", want: math.MaxUint64},
		{in: "-0x2", want: math.MaxUint64 - 1},
		{in: "18446744073709551615", want: math.MaxUint64},
		{in: "18446744073709551616", want: math.MaxUint64},
		{in: "0xffffffffffffffffff", want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValueRejects(t *testing.T) {
	for _, in := range []string{
		"abc",
		"12abc",
		"0x",
		"0xg",
		"08",
		"1.5",
		" ",
		"-",
		"+",
		"42 ",
		"1_000",
		"0b101",
	} {
		_, err := ParseValue(in)
		assert.ErrorIs(t, err, ErrNonNumeric, "%q", in)
	}
}
