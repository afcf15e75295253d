package hamt

import "fmt"

// The engine below works on nodes and the hasher H of the Map it is
// called from. Mutations return a replacement node which the caller
// installs in its own copy, so only the nodes on the path from the
// root to the touched bucket are ever allocated.

func (m Map[K, V, H]) lookup(n *node[K, V], key K, hash uint32) (*entry[K, V], bool) {
	var h H
	for level := 0; ; level++ {
		s := n.get(subhash(hash, level))
		switch s.kind {
		case kindVacant:
			return nil, false
		case kindChild:
			n = s.child
			continue
		}
		if level < maxLevel {
			if s.entry.hash == hash && h.Equal(s.entry.key, key) {
				return s.entry, true
			}
			return nil, false
		}
		e := s.entry.find(key, h.Equal)
		return e, e != nil
	}
}

// insert returns n with e inserted at the given level, and reports
// whether the key was added (rather than its value replaced).
func (m Map[K, V, H]) insert(n *node[K, V], level int, e *entry[K, V]) (*node[K, V], bool) {
	var h H
	bucket := subhash(e.hash, level)
	s := n.get(bucket)
	switch s.kind {
	case kindVacant:
		return n.set(bucket, entrySlot(e)), true
	case kindChild:
		child, added := m.insert(s.child, level+1, e)
		return n.replace(bucket, childSlot(child)), added
	}
	old := s.entry
	if level == maxLevel {
		if chain, ok := old.with(e, h.Equal); ok {
			return n.replace(bucket, entrySlot(chain)), false
		}
		head := &entry[K, V]{key: e.key, value: e.value, hash: e.hash, next: old}
		return n.replace(bucket, entrySlot(head)), true
	}
	if old.hash == e.hash && h.Equal(old.key, e.key) {
		return n.replace(bucket, entrySlot(e)), false
	}
	return n.replace(bucket, childSlot(insertCollidingKeys(level, old, e))), true
}

// insertCollidingKeys builds the subtree that replaces old at
// levelFrom, where old and e select the same bucket. The subtree
// root is a node at levelFrom+1.
//
// Below the first level at which the two hashes differ, old and e
// sit side by side; when the full hashes are equal they form a
// chain, e first, at maxLevel. Each level in between holds a
// single-slot node along e's hash path.
func insertCollidingKeys[K, V any](levelFrom int, old, e *entry[K, V]) *node[K, V] {
	if levelFrom < 0 || levelFrom >= maxLevel {
		panic(fmt.Errorf("hamt: cannot split colliding keys at level %d", levelFrom))
	}
	levelTo := levelFrom + 1
	for levelTo <= maxLevel && subhash(old.hash, levelTo) == subhash(e.hash, levelTo) {
		levelTo++
	}
	var sub *node[K, V]
	if levelTo > maxLevel {
		// Full hash collision.
		levelTo = maxLevel
		head := &entry[K, V]{key: e.key, value: e.value, hash: e.hash, next: old}
		sub = newNode1(subhash(old.hash, maxLevel), entrySlot(head))
	} else {
		sub = newNode2(
			subhash(old.hash, levelTo), entrySlot(old),
			subhash(e.hash, levelTo), entrySlot(e),
		)
	}
	for level := levelTo - 1; level > levelFrom; level-- {
		sub = newNode1(subhash(e.hash, level), childSlot(sub))
	}
	return sub
}

// remove returns n with the entry for key removed, and reports
// whether there was one. When nothing was removed, n itself is
// returned. The result may be the canonical empty node.
func (m Map[K, V, H]) remove(n *node[K, V], level int, key K, hash uint32) (*node[K, V], bool) {
	var h H
	bucket := subhash(hash, level)
	s := n.get(bucket)
	switch s.kind {
	case kindVacant:
		return n, false
	case kindChild:
		child, ok := m.remove(s.child, level+1, key, hash)
		if !ok {
			return n, false
		}
		if child.isEmpty() {
			return n.remove(bucket), true
		}
		return n.replace(bucket, childSlot(child)), true
	}
	if level < maxLevel {
		if s.entry.hash != hash || !h.Equal(s.entry.key, key) {
			return n, false
		}
		return n.remove(bucket), true
	}
	chain, ok := s.entry.without(key, h.Equal)
	switch {
	case !ok:
		return n, false
	case chain == nil:
		return n.remove(bucket), true
	}
	return n.replace(bucket, entrySlot(chain)), true
}

// nodeAt descends level steps from the root along the buckets
// selected by hash and returns the slot reached. Level 0 yields the
// root itself, which is the canonical empty node for an empty map.
// It panics if the descent runs into an entry or a vacant bucket
// before reaching level.
func (m Map[K, V, H]) nodeAt(level int, hash uint32) slot[K, V] {
	root := m.root
	if root == nil {
		root = emptyNode[K, V]()
	}
	s := childSlot(root)
	for i := 0; i < level; i++ {
		if s.kind != kindChild {
			panic(fmt.Errorf("hamt: nodeAt(%d, %#x) reached a leaf at level %d", level, hash, i))
		}
		s = s.child.get(subhash(hash, i))
	}
	return s
}
