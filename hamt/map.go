/*
Package hamt implements a persistent hash map: an immutable
associative container based on a Hash Array Mapped Trie.

Every operation that changes a [Map] returns a new Map and leaves the
original untouched. The two share all the parts of the trie that the
change did not touch, so keeping many nearly identical versions of a
map around is cheap.

The trie consumes 32-bit hashes as six 5-bit fields, one per level
from the most significant bit down, followed by a 2-bit field at the
seventh and last level. Keys whose full hashes are equal are kept in
a collision chain at the last level, so the depth of the trie never
exceeds seven.

Keys are hashed and compared by a stateless [anyhash.Hasher]
selected with the H type parameter, for example:

	var m hamt.Map[string, int, anyhash.StringHasher]
	m = m.Put("one", 1)

Because a Map is immutable, any number of goroutines may read the
same Map concurrently without synchronization.
*/
package hamt

import (
	"iter"

	"github.com/mikkokar/persistent-map/anyhash"
)

// Map is a persistent mapping from keys K to values V, with keys
// hashed and compared by H. H must be a concrete type whose zero value
// is a usable hasher, such as [anyhash.StringHasher] or
// [anyhash.ComparableHasher].
//
// The zero Map is empty and ready to use. Map values are small and
// are passed by value; all empty maps compare equal with ==.
type Map[K, V any, H anyhash.Hasher[K]] struct {
	// root is nil for an empty map.
	root  *node[K, V]
	count int
}

// Entry is a key/value pair held in a [Map].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New returns an empty Map. It is equivalent to the zero Map.
func New[K, V any, H anyhash.Hasher[K]]() Map[K, V, H] {
	return Map[K, V, H]{}
}

// FromEntries returns a Map holding the given entries. When several
// entries have equal keys, the last one wins.
func FromEntries[K, V any, H anyhash.Hasher[K]](entries ...Entry[K, V]) Map[K, V, H] {
	var m Map[K, V, H]
	for _, e := range entries {
		m = m.Put(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries in the map.
func (m Map[K, V, H]) Len() int {
	return m.count
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V, H]) IsEmpty() bool {
	return m.count == 0
}

// Get returns the value associated with key and
// reports whether the key exists in the map.
func (m Map[K, V, H]) Get(key K) (V, bool) {
	if m.root == nil {
		return *new(V), false
	}
	var h H
	e, ok := m.lookup(m.root, key, h.Hash(key))
	if !ok {
		return *new(V), false
	}
	return e.value, true
}

// At returns the value for key, or the zero value of V if not present.
func (m Map[K, V, H]) At(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key exists in the map.
func (m Map[K, V, H]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put returns a map in which key is associated with value.
// If key is already present, its key and value are replaced and
// the length is unchanged. The receiver is not modified.
func (m Map[K, V, H]) Put(key K, value V) Map[K, V, H] {
	var h H
	root := m.root
	if root == nil {
		root = emptyNode[K, V]()
	}
	root, added := m.insert(root, 0, &entry[K, V]{
		key:   key,
		value: value,
		hash:  h.Hash(key),
	})
	count := m.count
	if added {
		count++
	}
	return Map[K, V, H]{root: root, count: count}
}

// Remove returns a map without key. If key is not present, it
// returns m itself. The receiver is not modified.
func (m Map[K, V, H]) Remove(key K) Map[K, V, H] {
	if m.root == nil {
		return m
	}
	var h H
	root, ok := m.remove(m.root, 0, key, h.Hash(key))
	if !ok {
		return m
	}
	if root.isEmpty() {
		return Map[K, V, H]{}
	}
	return Map[K, V, H]{root: root, count: m.count - 1}
}

// All returns an iterator over (key, value) pairs in unspecified
// order. Every entry is yielded exactly once.
func (m Map[K, V, H]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.walk(&visitor[K, V]{
			entry: func(_, _ int, e *entry[K, V]) bool {
				for ; e != nil; e = e.next {
					if !yield(e.key, e.value) {
						return false
					}
				}
				return true
			},
		})
	}
}

// Keys returns all the keys in the map in unspecified order.
func (m Map[K, V, H]) Keys() []K {
	keys := make([]K, 0, m.count)
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all the values in the map in unspecified order.
// A value is included once for every key that holds it.
func (m Map[K, V, H]) Values() []V {
	values := make([]V, 0, m.count)
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns all the key/value pairs in the map
// in unspecified order.
func (m Map[K, V, H]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.count)
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}
