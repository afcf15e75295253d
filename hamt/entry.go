package hamt

import (
	"bytes"
	"fmt"
)

// entry is a key/value association. Entries whose keys share the
// full 32-bit hash are linked through next into a collision chain,
// which only ever appears at maxLevel.
//
// Entries are immutable once reachable from a Map; the chain
// operations below copy the prefix they change and share the rest.
type entry[K, V any] struct {
	key   K
	value V
	hash  uint32
	next  *entry[K, V]
}

// find returns the first entry of the chain starting at e
// whose key is equal to key, or nil.
func (e *entry[K, V]) find(key K, eq func(K, K) bool) *entry[K, V] {
	for ; e != nil; e = e.next {
		if eq(e.key, key) {
			return e
		}
	}
	return nil
}

// without returns the chain starting at e with the entry for key
// removed, and reports whether such an entry was found.
// The result is nil when the only entry was removed.
func (e *entry[K, V]) without(key K, eq func(K, K) bool) (*entry[K, V], bool) {
	if e == nil {
		return nil, false
	}
	if eq(e.key, key) {
		return e.next, true
	}
	rest, ok := e.next.without(key, eq)
	if !ok {
		return e, false
	}
	return &entry[K, V]{key: e.key, value: e.value, hash: e.hash, next: rest}, true
}

// with returns the chain starting at e with the entry whose key is
// equal to x.key replaced by x, and reports whether such an entry
// was found.
func (e *entry[K, V]) with(x *entry[K, V], eq func(K, K) bool) (*entry[K, V], bool) {
	if e == nil {
		return nil, false
	}
	if eq(e.key, x.key) {
		return &entry[K, V]{key: x.key, value: x.value, hash: x.hash, next: e.next}, true
	}
	rest, ok := e.next.with(x, eq)
	if !ok {
		return e, false
	}
	return &entry[K, V]{key: e.key, value: e.value, hash: e.hash, next: rest}, true
}

// len returns the length of the chain starting at e.
func (e *entry[K, V]) len() int {
	n := 0
	for ; e != nil; e = e.next {
		n++
	}
	return n
}

// String describes e and the rest of its chain, for example
//
//	KeyValue(683671552 [5.3.0.0.0.0.0], a) -> KeyValue(683671552 [5.3.0.0.0.0.0], b)
func (e *entry[K, V]) String() string {
	var buf bytes.Buffer
	for x := e; x != nil; x = x.next {
		if x != e {
			buf.WriteString(" -> ")
		}
		fmt.Fprintf(&buf, "KeyValue(%d [%s], %v)", x.hash, dottedHash(x.hash), x.value)
	}
	return buf.String()
}
