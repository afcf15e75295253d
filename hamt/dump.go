package hamt

import (
	"bytes"
	"fmt"
	"strings"
)

// Dump returns a multi-line description of the trie for debugging.
// Each occupied bucket is shown on its own line, indented by level,
// with its two-digit bucket number followed either by "SubMap" for a
// child node or by the key-entry chain stored there:
//
//	Root:
//	 |- 05: SubMap
//	 |       |- 02: KeyValue(679477248 [5.2.0.0.0.0.0], b)
//	 |       |- 03: KeyValue(683671552 [5.3.0.0.0.0.0], a)
//
// The format is not stable.
func (m Map[K, V, H]) Dump() string {
	if m.root == nil {
		return "Root:\n<empty>"
	}
	var buf bytes.Buffer
	buf.WriteString("Root:\n")
	line := func(level, bucket int, desc any) bool {
		fmt.Fprintf(&buf, "%s- %02d: %v\n", dumpPrefix(level), bucket, desc)
		return true
	}
	m.root.walk(0, &visitor[K, V]{
		entry: func(level, bucket int, e *entry[K, V]) bool {
			return line(level, bucket, e)
		},
		child: func(level, bucket int, _ *node[K, V]) bool {
			return line(level, bucket, "SubMap")
		},
		vacant: func(level, bucket int) bool {
			return line(level, bucket, "ERROR - vacant entry")
		},
	})
	return buf.String()
}

func dumpPrefix(level int) string {
	return " |" + strings.Repeat("       |", level)
}
