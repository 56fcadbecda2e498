package cmd

import (
	"errors"
	"math"
)

// ErrNonNumeric is returned by ParseValue when the argument is not an
// integer literal in its entirety.
var ErrNonNumeric = errors.New("non-numeric value")

// ParseValue parses an unsigned integer the way C's strtoul does with base
// 0: optional leading whitespace and sign, then 0x/0X for hex, a leading 0
// for octal, decimal otherwise. A minus sign negates modulo 2^64 and values
// that do not fit saturate at math.MaxUint64. The whole string must be
// consumed. An empty string is 0.
func ParseValue(s string) (uint64, error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	switch {
	case i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') &&
		i+2 < len(s) && digitVal(s[i+2]) < 16:
		base = 16
		i += 2
	case i < len(s) && s[i] == '0':
		base = 8
	}

	start := i
	var v uint64
	overflow := false
	for ; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			break
		}
		if v > (math.MaxUint64-d)/base {
			overflow = true
		}
		v = v*base + d
	}

	if i == start {
		// Nothing converted: strtoul leaves the end pointer at the start
		// of the input, so only the empty string is accepted.
		if len(s) == 0 {
			return 0, nil
		}
		return 0, ErrNonNumeric
	}
	if i != len(s) {
		return 0, ErrNonNumeric
	}
	if overflow {
		return math.MaxUint64, nil
	}
	if neg {
		v = -v
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digitVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return math.MaxUint64
}
