package bitmask

import "math/bits"

// Width is the number of basis indices a mask can address.
const Width = 64

// Bit returns the mask with only bit i set.
// ok is false if i cannot be represented in a mask.
func Bit(i int) (mask uint64, ok bool) {
	if i < 0 || i >= Width {
		return 0, false
	}
	return 1 << uint(i), true
}

// Grade returns the number of basis vectors in mask.
func Grade(mask uint64) int {
	return bits.OnesCount64(mask)
}

// Highest returns the largest index set in mask, or -1 for the empty mask.
func Highest(mask uint64) int {
	return bits.Len64(mask) - 1
}

// ReorderParity returns the parity (0 or 1) of the number of transpositions
// needed to bring the concatenated factors of a followed by b into increasing
// index order.
//
// For every index j in b, each factor of a above j must move past e_j.
func ReorderParity(a, b uint64) uint64 {
	var parity uint64
	for b != 0 {
		j := bits.TrailingZeros64(b)
		// Shifting by 64 yields zero, which covers j == 63.
		parity ^= uint64(bits.OnesCount64(a>>uint(j+1))) & 1
		b &= b - 1
	}
	return parity
}

// ReverseParity returns the parity (0 or 1) of the number of transpositions
// needed to reverse the order of grade factors.
func ReverseParity(grade int) uint64 {
	return uint64(grade*(grade-1)/2) & 1
}

// ForEach calls fn for every index set in mask, from lowest to highest.
func ForEach(mask uint64, fn func(i int)) {
	for mask != 0 {
		fn(bits.TrailingZeros64(mask))
		mask &= mask - 1
	}
}

// Indices returns the indices set in mask in increasing order.
func Indices(mask uint64) []int {
	out := make([]int, 0, Grade(mask))
	ForEach(mask, func(i int) {
		out = append(out, i)
	})
	return out
}
