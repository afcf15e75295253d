package hamt

import (
	"fmt"
	"strconv"
)

const (
	// bitsPerLevel is the width of the hash field consumed by
	// each of the levels 0 to 5.
	bitsPerLevel = 5

	// fanout is the number of buckets in a node above the last level.
	fanout = 1 << bitsPerLevel

	levelMask = fanout - 1

	// maxLevel is the deepest level of the trie. It consumes the
	// 2 bits left over after six 5-bit fields.
	maxLevel = 6

	tailMask = 1<<(32-maxLevel*bitsPerLevel) - 1
)

// subhash returns the bucket that hash selects at the given level.
// Levels 0 to 5 take successive 5-bit fields starting from the most
// significant bit; level 6 takes the two least significant bits.
func subhash(hash uint32, level int) int {
	switch {
	case level >= 0 && level < maxLevel:
		shift := 32 - (bitsPerLevel + level*bitsPerLevel)
		return int(hash>>shift) & levelMask
	case level == maxLevel:
		return int(hash & tailMask)
	}
	panic(fmt.Errorf("hamt: level %d out of range", level))
}

// dottedHash renders the per-level decomposition of hash,
// for example "5.3.0.0.0.0.0".
func dottedHash(hash uint32) string {
	var buf [maxLevel*3 + 2]byte
	b := buf[:0]
	for level := 0; level <= maxLevel; level++ {
		if level > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendInt(b, int64(subhash(hash, level)), 10)
	}
	return string(b)
}
