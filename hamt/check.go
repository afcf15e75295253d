package hamt

import (
	"fmt"
	"math/bits"
	"strings"

	"go.uber.org/multierr"
)

// Check verifies the structural invariants of the trie behind m and
// returns an error describing every violation found, or nil. Maps
// produced by this package always pass; Check exists to catch bugs
// in the package itself.
//
// The invariants are:
//   - every node holds exactly one slot per bit set in its mask;
//   - no node other than the root of a non-empty map is empty;
//   - child nodes appear only above the last level;
//   - chains of more than one entry appear only at the last level,
//     and hold distinct keys that share one full hash;
//   - every entry lies on the path selected by its hash, and its
//     cached hash is the hash of its key;
//   - the number of entries equals Len.
func (m Map[K, V, H]) Check() error {
	if m.root == nil {
		if m.count != 0 {
			return fmt.Errorf("hamt: map without root has length %d", m.count)
		}
		return nil
	}
	var h H
	var (
		err     error
		path    [maxLevel + 1]int
		entries int
	)
	report := func(depth int, format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("hamt: at %s: %s", pathString(path[:depth]), fmt.Sprintf(format, args...)))
	}
	checkNode := func(level int, n *node[K, V]) {
		if got, want := len(n.slots), bits.OnesCount32(n.mask); got != want {
			report(level, "node has %d slots for %d buckets", got, want)
		}
		if n.isEmpty() {
			report(level, "empty node")
		}
		if level == maxLevel && n.mask>>(tailMask+1) != 0 {
			report(level, "bucket mask %#x out of range for the last level", n.mask)
		}
	}
	checkNode(0, m.root)
	m.root.walk(0, &visitor[K, V]{
		child: func(level, bucket int, n *node[K, V]) bool {
			path[level] = bucket
			if level >= maxLevel {
				report(level+1, "child node at the last level")
				return false
			}
			checkNode(level+1, n)
			return true
		},
		entry: func(level, bucket int, e *entry[K, V]) bool {
			path[level] = bucket
			entries += e.len()
			if level < maxLevel && e.next != nil {
				report(level+1, "collision chain of length %d above the last level", e.len())
			}
			for x := e; x != nil; x = x.next {
				if hash := h.Hash(x.key); x.hash != hash {
					report(level+1, "entry %v has stale hash (key hashes to %d)", x, hash)
				}
				if x.hash != e.hash {
					report(level+1, "chain mixes hashes %d and %d", e.hash, x.hash)
				}
				for l := 0; l <= level; l++ {
					if subhash(x.hash, l) != path[l] {
						report(level+1, "entry %v is off its hash path at level %d", x, l)
						break
					}
				}
				for y := x.next; y != nil; y = y.next {
					if h.Equal(x.key, y.key) {
						report(level+1, "chain holds equal keys twice")
					}
				}
			}
			return true
		},
		vacant: func(level, bucket int) bool {
			path[level] = bucket
			report(level+1, "vacant slot stored in node")
			return true
		},
	})
	if entries != m.count {
		report(0, "found %d entries, map length is %d", entries, m.count)
	}
	return err
}

// pathString renders a sequence of buckets from the root,
// for example "/05/03". The root itself is "/".
func pathString(path []int) string {
	if len(path) == 0 {
		return "/"
	}
	var buf strings.Builder
	for _, b := range path {
		fmt.Fprintf(&buf, "/%02d", b)
	}
	return buf.String()
}
