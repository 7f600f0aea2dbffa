package biclique

import "math/bits"

// bitset is a fixed-width set of local DMR indices.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)>>6) }

func (b bitset) set(i int) { b[i>>6] |= 1 << uint(i&63) }

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}

	return n
}

// and returns b ∩ o as a new bitset.
func (b bitset) and(o bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] & o[i]
	}

	return out
}

// andNot returns b \ o as a new bitset.
func (b bitset) andNot(o bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] &^ o[i]
	}

	return out
}

// andCount returns |b ∩ o| without allocating.
func (b bitset) andCount(o bitset) int {
	n := 0
	for i := range b {
		n += bits.OnesCount64(b[i] & o[i])
	}

	return n
}

// indices appends the members of b in ascending order.
func (b bitset) indices(dst []int) []int {
	for wi, w := range b {
		for w != 0 {
			t := bits.TrailingZeros64(w)
			dst = append(dst, wi<<6+t)
			w &= w - 1
		}
	}

	return dst
}
