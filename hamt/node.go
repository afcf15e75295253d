package hamt

import (
	"fmt"
	"sync"
)

// slotKind discriminates the contents of a slot.
type slotKind uint8

const (
	kindVacant slotKind = iota
	kindEntry
	kindChild
)

// slot holds either a key-entry (possibly the head of a collision
// chain) or a child node, as indicated by kind. The zero slot is
// vacant. Vacant slots are never stored in a node; they are only
// returned to report that a bucket is clear.
type slot[K, V any] struct {
	kind  slotKind
	entry *entry[K, V]
	child *node[K, V]
}

func entrySlot[K, V any](e *entry[K, V]) slot[K, V] {
	return slot[K, V]{kind: kindEntry, entry: e}
}

func childSlot[K, V any](n *node[K, V]) slot[K, V] {
	return slot[K, V]{kind: kindChild, child: n}
}

func (s slot[K, V]) isVacant() bool {
	return s.kind == kindVacant
}

// node is an immutable bitmap-compressed array of up to 32 slots.
// Bit b of mask is set iff bucket b is occupied, and slots holds the
// occupied buckets in ascending bucket order, so
// len(slots) == bits.OnesCount32(mask).
//
// Every operation that changes a node returns a new node with its
// own slot storage.
type node[K, V any] struct {
	mask  uint32
	slots []slot[K, V]
}

// emptyNodeKey identifies the canonical empty node of one (K, V)
// instantiation in emptyNodes.
type emptyNodeKey[K, V any] struct{}

// (K, V) -> *node[K, V]
var emptyNodes sync.Map

// emptyNode returns the canonical empty node for K and V.
func emptyNode[K, V any]() *node[K, V] {
	key := emptyNodeKey[K, V]{}
	if n, ok := emptyNodes.Load(key); ok {
		return n.(*node[K, V])
	}
	n, _ := emptyNodes.LoadOrStore(key, &node[K, V]{})
	return n.(*node[K, V])
}

// newNode1 returns a node holding s at bucket.
func newNode1[K, V any](bucket int, s slot[K, V]) *node[K, V] {
	return &node[K, V]{
		mask:  setBit(0, bucket),
		slots: []slot[K, V]{s},
	}
}

// newNode2 returns a node holding s1 at bucket b1 and s2 at bucket b2.
// The buckets must differ.
func newNode2[K, V any](b1 int, s1 slot[K, V], b2 int, s2 slot[K, V]) *node[K, V] {
	if b1 == b2 {
		panic(fmt.Errorf("hamt: newNode2 called with duplicate bucket %d", b1))
	}
	if b2 < b1 {
		b1, s1, b2, s2 = b2, s2, b1, s1
	}
	return &node[K, V]{
		mask:  setBit(setBit(0, b1), b2),
		slots: []slot[K, V]{s1, s2},
	}
}

// get returns the slot at bucket, or a vacant slot if the bucket is clear.
func (n *node[K, V]) get(bucket int) slot[K, V] {
	if !bitSet(n.mask, bucket) {
		return slot[K, V]{}
	}
	return n.slots[popcountBelow(n.mask, bucket)]
}

// set returns a copy of n with s stored at bucket,
// which must be clear in n.
func (n *node[K, V]) set(bucket int, s slot[K, V]) *node[K, V] {
	if bitSet(n.mask, bucket) {
		panic(fmt.Errorf("hamt: set called on occupied bucket %d", bucket))
	}
	if s.isVacant() {
		panic("hamt: set called with vacant slot")
	}
	mask := setBit(n.mask, bucket)
	i := popcountBelow(mask, bucket)
	slots := make([]slot[K, V], len(n.slots)+1)
	copy(slots, n.slots[:i])
	slots[i] = s
	copy(slots[i+1:], n.slots[i:])
	return &node[K, V]{mask: mask, slots: slots}
}

// replace returns a copy of n with the slot at bucket,
// which must be occupied in n, replaced by s.
func (n *node[K, V]) replace(bucket int, s slot[K, V]) *node[K, V] {
	if !bitSet(n.mask, bucket) {
		panic(fmt.Errorf("hamt: replace called on clear bucket %d", bucket))
	}
	if s.isVacant() {
		panic("hamt: replace called with vacant slot")
	}
	slots := make([]slot[K, V], len(n.slots))
	copy(slots, n.slots)
	slots[popcountBelow(n.mask, bucket)] = s
	return &node[K, V]{mask: n.mask, slots: slots}
}

// remove returns a copy of n without the slot at bucket, which must
// be occupied in n. Removing the last slot yields the canonical
// empty node.
func (n *node[K, V]) remove(bucket int) *node[K, V] {
	if !bitSet(n.mask, bucket) {
		panic(fmt.Errorf("hamt: remove called on clear bucket %d", bucket))
	}
	if len(n.slots) == 1 {
		return emptyNode[K, V]()
	}
	mask := clearBit(n.mask, bucket)
	i := popcountBelow(mask, bucket)
	slots := make([]slot[K, V], len(n.slots)-1)
	copy(slots, n.slots[:i])
	copy(slots[i:], n.slots[i+1:])
	return &node[K, V]{mask: mask, slots: slots}
}

func (n *node[K, V]) isPresent(bucket int) bool {
	return bitSet(n.mask, bucket)
}

func (n *node[K, V]) isEmpty() bool {
	return n.mask == 0
}

// capacity returns the number of occupied slots.
func (n *node[K, V]) capacity() int {
	return len(n.slots)
}
