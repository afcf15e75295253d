// Package anyhash defines the key contract used by the persistent
// map: a 32-bit hash function paired with an equivalence relation,
// so that keys need not be comparable with ==.
package anyhash

import "hash/maphash"

// A Hasher defines a 32-bit hash function and an equivalence relation
// over values of type T.
//
// Hash and Equal must be consistent: if Equal(x, y) is true then
// Hash(x) == Hash(y). Hash must be stable for the lifetime of any
// container holding the value.
//
// Hashers are expected to be stateless: containers obtain one as the
// zero value of their hasher type parameter.
type Hasher[T any] interface {
	Hash(T) uint32
	Equal(x, y T) bool
}

var seed = maphash.MakeSeed()

// Fold xor-folds a 64-bit hash into 32 bits so that every bit of the
// original contributes to the result.
func Fold(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}

// ComparableHasher is an implementation of [Hasher] for comparable types.
// Its Equal(x, y) method is consistent with x == y.
type ComparableHasher[T comparable] struct {
	_ [0]func(T) // disallow conversion between ComparableHasher[X] and ComparableHasher[Y]
}

func (ComparableHasher[T]) Hash(v T) uint32   { return Fold(maphash.Comparable(seed, v)) }
func (ComparableHasher[T]) Equal(x, y T) bool { return x == y }

// StringHasher hashes strings with [maphash.String].
// It is cheaper than ComparableHasher[string].
type StringHasher struct{}

func (StringHasher) Hash(s string) uint32   { return Fold(maphash.String(seed, s)) }
func (StringHasher) Equal(x, y string) bool { return x == y }

// BytesHasher hashes byte slices by content.
// Byte slices are not comparable, so they cannot use ComparableHasher.
type BytesHasher struct{}

func (BytesHasher) Hash(b []byte) uint32 { return Fold(maphash.Bytes(seed, b)) }

func (BytesHasher) Equal(x, y []byte) bool {
	return string(x) == string(y)
}
