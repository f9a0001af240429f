// Package ds provides small generic data structures shared by the cache core.
package ds

type StringSet = Set[string]

// Set is an ordered set with O(1) membership testing that remembers the
// order in which elements were (re-)added. The front is the oldest element,
// the back the most recently added or touched one.
//
// # Mutation Semantics
//
// The following methods mutate the receiver:
//   - Add, Touch, Remove
//
// Values returns a copy and never aliases the internal order.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

// Add appends v to the back of the set. No-op if already present. (mutates)
func (s *Set[T]) Add(v T) {
	if s.contains(v) {
		return
	}
	s.items[v] = struct{}{}
	s.order = append(s.order, v)
}

// Touch moves v to the back of the set, adding it when absent. An element
// is never duplicated. (mutates)
func (s *Set[T]) Touch(v T) {
	if s.contains(v) {
		s.removeFromOrder(v)
		s.order = append(s.order, v)
		return
	}
	s.Add(v)
}

// Remove removes the given values from the set. (mutates)
// This operation is O(n) where n is the set size.
func (s *Set[T]) Remove(vs ...T) {
	for _, v := range vs {
		if !s.contains(v) {
			continue
		}
		delete(s.items, v)
		s.removeFromOrder(v)
	}
}

func (s *Set[T]) removeFromOrder(v T) {
	for i, o := range s.order {
		if o == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Front returns the oldest element.
func (s *Set[T]) Front() (v T, ok bool) {
	if len(s.order) == 0 {
		return v, false
	}
	return s.order[0], true
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return len(s.items) }

// Contains returns true if v is present in the set.
func (s *Set[T]) Contains(v T) bool {
	return s.contains(v)
}

func (s *Set[T]) contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Values returns a copy of the elements, oldest first.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// NewSet creates a new set with the given items in order.
func NewSet[T comparable](items ...T) *Set[T] {
	set := &Set[T]{items: map[T]struct{}{}, order: make([]T, 0, len(items))}
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// NewStringSet creates a new string set with the given items.
func NewStringSet(items ...string) *StringSet {
	return NewSet(items...)
}
