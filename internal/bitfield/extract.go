package bitfield

// WordBits is the width of the integer type used for decoding.
const WordBits = 64

// Extract returns bits [offset, offset+width) of word shifted down to bit 0.
//
// The schema is trusted: no range checking is done. An offset past the end
// of the word yields 0, a width covering the rest of the word yields the
// shifted word unmasked.
func Extract(word uint64, offset, width uint) uint64 {
	if offset >= WordBits {
		return 0
	}
	v := word >> offset
	if width >= WordBits {
		return v
	}
	return v & (1<<width - 1)
}

// Untag drops the low tag bit from a V8 small integer (Smi). The runtime
// stores PropertyDetails as a Smi, so the payload starts at bit 1 of the raw
// word. Decoding always applies this exactly once, before extraction.
func Untag(word uint64) uint64 {
	return word >> 1
}
