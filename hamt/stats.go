package hamt

// Stats describes the shape of the trie behind a [Map].
type Stats struct {
	// Entries holds the number of key-entries, including
	// those in collision chains. It always equals Len.
	Entries int

	// Nodes holds the number of nodes, including the root.
	Nodes int

	// NodesPerLevel holds the number of nodes at each level.
	NodesPerLevel [maxLevel + 1]int

	// Depth holds the deepest level at which a node exists.
	Depth int

	// Chains holds the number of collision chains
	// with more than one entry.
	Chains int

	// LongestChain holds the length of the longest
	// key-entry chain.
	LongestChain int
}

// Stats walks the map and returns statistics about its trie.
// An empty map has no nodes.
func (m Map[K, V, H]) Stats() Stats {
	var st Stats
	if m.root == nil {
		return st
	}
	st.Nodes = 1
	st.NodesPerLevel[0] = 1
	m.walk(&visitor[K, V]{
		entry: func(_, _ int, e *entry[K, V]) bool {
			n := e.len()
			st.Entries += n
			if n > 1 {
				st.Chains++
			}
			st.LongestChain = max(st.LongestChain, n)
			return true
		},
		child: func(level, _ int, _ *node[K, V]) bool {
			st.Nodes++
			if level+1 < len(st.NodesPerLevel) {
				st.NodesPerLevel[level+1]++
			}
			st.Depth = max(st.Depth, level+1)
			return true
		},
	})
	return st
}
