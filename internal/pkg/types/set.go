package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set implementation for comparable types.
//
// It provides membership tests, insertion, and deletion using a
// map[T]struct{} internally. This type is mutable: methods like Add
// and Delete modify the set in place. Use Clone before mutating a set
// that is shared with another owner.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether val is a member of the set. A nil set has no members.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set. Cloning a nil set
// returns an empty, non-nil set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for val := range s {
		out[val] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the elements present in both s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	out := make(Set[T])
	for val := range s {
		if other.Has(val) {
			out[val] = struct{}{}
		}
	}
	return out
}

// ToIter returns an iterator over all elements in the set.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns a slice containing all elements in the set.
//
// The order of elements is not guaranteed.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the elements of an ordered set as an ascending slice.
//
// It is the deterministic counterpart of ToSlice and is what persistence
// and presentation layers should use.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
