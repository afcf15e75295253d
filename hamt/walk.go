package hamt

import "math/bits"

// visitor holds the callbacks invoked by walk. Any of them may be
// nil. A callback returning false stops the walk.
type visitor[K, V any] struct {
	// entry is called with the head of each key-entry chain.
	entry func(level, bucket int, e *entry[K, V]) bool

	// child is called for each child node, before the
	// walk descends into it.
	child func(level, bucket int, n *node[K, V]) bool

	// vacant is called for an occupied bucket holding a vacant
	// slot, which a well-formed node never has.
	vacant func(level, bucket int) bool
}

// walk visits the slots of n in ascending bucket order, descending
// into each child node as soon as it is encountered. It reports
// whether the walk ran to completion. Buckets without a matching
// slot in a malformed node are skipped.
func (n *node[K, V]) walk(level int, v *visitor[K, V]) bool {
	i := 0
	for mask := n.mask; mask != 0 && i < len(n.slots); mask &= mask - 1 {
		bucket := bits.TrailingZeros32(mask)
		s := n.slots[i]
		i++
		switch s.kind {
		case kindEntry:
			if v.entry != nil && !v.entry(level, bucket, s.entry) {
				return false
			}
		case kindChild:
			if v.child != nil && !v.child(level, bucket, s.child) {
				return false
			}
			if !s.child.walk(level+1, v) {
				return false
			}
		default:
			if v.vacant != nil && !v.vacant(level, bucket) {
				return false
			}
		}
	}
	return true
}

func (m Map[K, V, H]) walk(v *visitor[K, V]) bool {
	if m.root == nil {
		return true
	}
	return m.root.walk(0, v)
}
