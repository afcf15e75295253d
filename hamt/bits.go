package hamt

import "math/bits"

// Bitmaps are uint32 values in which bit p records the occupancy of
// bucket p. All positions must be in [0, 31].

func setBit(mask uint32, p int) uint32 {
	return mask | 1<<p
}

func clearBit(mask uint32, p int) uint32 {
	return mask &^ (1 << p)
}

func bitSet(mask uint32, p int) bool {
	return (mask>>p)&1 == 1
}

// popcountBelow returns the number of bits set in mask below
// position p, which is the dense slot index of bucket p.
func popcountBelow(mask uint32, p int) int {
	return bits.OnesCount32(mask & (1<<p - 1))
}
