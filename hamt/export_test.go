package hamt

import "fmt"

// MakeHash returns the hash whose subhashes at levels 0 to 6
// are l0 to l6.
func MakeHash(l0, l1, l2, l3, l4, l5, l6 int) uint32 {
	var h uint32
	for level, b := range [...]int{l0, l1, l2, l3, l4, l5, l6} {
		limit := fanout
		if level == maxLevel {
			limit = tailMask + 1
		}
		if b < 0 || b >= limit {
			panic(fmt.Errorf("bucket %d out of range at level %d", b, level))
		}
		if level < maxLevel {
			h |= uint32(b) << (32 - bitsPerLevel*(level+1))
		} else {
			h |= uint32(b)
		}
	}
	return h
}

// Key is a map key that carries its own hash. Keys are equal when
// their Content is equal, so tests must not give two keys with the
// same Content different hashes.
type Key struct {
	Hash    uint32
	Content string
}

func (k Key) String() string {
	return fmt.Sprintf("Key{%#x, %s}", k.Hash, k.Content)
}

// NewKey returns a key with the given content whose hash has the
// subhashes l0 to l6.
func NewKey(content string, l0, l1, l2, l3, l4, l5, l6 int) Key {
	return Key{
		Hash:    MakeHash(l0, l1, l2, l3, l4, l5, l6),
		Content: content,
	}
}

// KeyHasher hashes a Key to its Hash field.
type KeyHasher struct{}

func (KeyHasher) Hash(k Key) uint32  { return k.Hash }
func (KeyHasher) Equal(x, y Key) bool { return x.Content == y.Content }

type KeyMap = Map[Key, string, KeyHasher]
