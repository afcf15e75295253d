package anyhash_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mikkokar/persistent-map/anyhash"
)

func TestFold(t *testing.T) {
	c := qt.New(t)
	c.Assert(anyhash.Fold(0), qt.Equals, uint32(0))
	c.Assert(anyhash.Fold(0x00000001_00000000), qt.Equals, uint32(1))
	c.Assert(anyhash.Fold(0xFFFFFFFF_FFFFFFFF), qt.Equals, uint32(0))
	c.Assert(anyhash.Fold(0x12345678_00000000), qt.Equals, uint32(0x12345678))
	c.Assert(anyhash.Fold(0x0000FFFF_FFFF0000), qt.Equals, uint32(0xFFFFFFFF))
}

func TestComparableHasher(t *testing.T) {
	c := qt.New(t)
	type point struct{ x, y int }
	var h anyhash.ComparableHasher[point]

	c.Run("equal values hash equally", func(c *qt.C) {
		c.Assert(h.Hash(point{1, 2}), qt.Equals, h.Hash(point{1, 2}))
		c.Assert(h.Equal(point{1, 2}, point{1, 2}), qt.IsTrue)
	})
	c.Run("distinct values are unequal", func(c *qt.C) {
		c.Assert(h.Equal(point{1, 2}, point{2, 1}), qt.IsFalse)
	})
}

func TestStringHasher(t *testing.T) {
	c := qt.New(t)
	var h anyhash.StringHasher
	c.Assert(h.Hash("foo"), qt.Equals, h.Hash("f"+"oo"))
	c.Assert(h.Equal("foo", "foo"), qt.IsTrue)
	c.Assert(h.Equal("foo", "bar"), qt.IsFalse)
	c.Assert(h.Equal("", ""), qt.IsTrue)
}

func TestBytesHasher(t *testing.T) {
	c := qt.New(t)
	var h anyhash.BytesHasher
	key1 := []byte("hello")
	key2 := []byte("hello") // same content, different backing array
	c.Assert(h.Hash(key1), qt.Equals, h.Hash(key2))
	c.Assert(h.Equal(key1, key2), qt.IsTrue)
	c.Assert(h.Equal(key1, []byte("world")), qt.IsFalse)
	c.Assert(h.Equal(nil, []byte{}), qt.IsTrue)
}

func TestHashersSpreadBits(t *testing.T) {
	c := qt.New(t)
	var h anyhash.StringHasher
	var or, and uint32 = 0, 0xFFFFFFFF
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p"} {
		or |= h.Hash(s)
		and &= h.Hash(s)
	}
	// With sixteen inputs it is vanishingly unlikely that some bit
	// never varies.
	c.Assert(or, qt.Not(qt.Equals), and)
}

var _ anyhash.Hasher[string] = anyhash.StringHasher{}
var _ anyhash.Hasher[[]byte] = anyhash.BytesHasher{}
var _ anyhash.Hasher[int] = anyhash.ComparableHasher[int]{}
