// Package set provides a persistent set built on [hamt.Map].
package set

import (
	"iter"

	"github.com/mikkokar/persistent-map/anyhash"
	"github.com/mikkokar/persistent-map/hamt"
)

// Set is an immutable set of elements of type T, hashed and
// compared by H. The zero Set is empty and ready to use.
type Set[T any, H anyhash.Hasher[T]] struct {
	m hamt.Map[T, struct{}, H]
}

// Of returns a set holding the given elements.
func Of[T any, H anyhash.Hasher[T]](elems ...T) Set[T, H] {
	var s Set[T, H]
	for _, x := range elems {
		s = s.Add(x)
	}
	return s
}

// Len returns the number of elements in s.
func (s Set[T, H]) Len() int {
	return s.m.Len()
}

func (s Set[T, H]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Has reports whether x is a member of s.
func (s Set[T, H]) Has(x T) bool {
	return s.m.Has(x)
}

// Add returns s with x added. If an equal element is already
// present, it is replaced by x.
func (s Set[T, H]) Add(x T) Set[T, H] {
	return Set[T, H]{s.m.Put(x, struct{}{})}
}

// Remove returns s without x. It returns s itself if x is not a member.
func (s Set[T, H]) Remove(x T) Set[T, H] {
	return Set[T, H]{s.m.Remove(x)}
}

// All returns an iterator over the elements of s in unspecified order.
func (s Set[T, H]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s.m.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Elems returns the elements of s in unspecified order.
func (s Set[T, H]) Elems() []T {
	return s.m.Keys()
}

// Union returns the set of elements that are in s or t.
func Union[T any, H anyhash.Hasher[T]](s, t Set[T, H]) Set[T, H] {
	if s.Len() < t.Len() {
		s, t = t, s
	}
	for x := range t.All() {
		if !s.Has(x) {
			s = s.Add(x)
		}
	}
	return s
}

// Intersect returns the set of elements that are in both s and t.
func Intersect[T any, H anyhash.Hasher[T]](s, t Set[T, H]) Set[T, H] {
	if s.Len() > t.Len() {
		s, t = t, s
	}
	var r Set[T, H]
	for x := range s.All() {
		if t.Has(x) {
			r = r.Add(x)
		}
	}
	return r
}

// Difference returns the set of elements of s that are not in t.
func Difference[T any, H anyhash.Hasher[T]](s, t Set[T, H]) Set[T, H] {
	for x := range t.All() {
		s = s.Remove(x)
	}
	return s
}

// Equal reports whether s and t hold the same elements.
func Equal[T any, H anyhash.Hasher[T]](s, t Set[T, H]) bool {
	if s.Len() != t.Len() {
		return false
	}
	for x := range s.All() {
		if !t.Has(x) {
			return false
		}
	}
	return true
}
