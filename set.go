package chainmap

import "hash/maphash"

// Set is a key set on top of the same chained table as HashMap. It is
// just a map that doesn't store values. The concurrency and iteration
// contracts of HashMap apply unchanged.
type Set[K any] struct {
	table[K, struct{}]
}

// NewSet returns a set with the given hash function, equality function
// and initial capacity.
func NewSet[K any](hash HashFunc[K], equal EqualFunc[K], capacity int, opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(hash, equal, capacity, opts...)

	return &s
}

// NewComparableSet returns a set for comparable keys, hashed with
// hash/maphash and compared with ==.
func NewComparableSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	return NewSet(MakeDefaultHashFunc[K](maphash.MakeSeed()), ComparableEqual[K](), capacity, opts...)
}

// Number of keys in the set.
func (s *Set[K]) Len() int {
	return s.count
}

// Size of the slot array.
func (s *Set[K]) Capacity() int {
	return len(s.slots)
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.get(key)
	return ok
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Put(key K) bool {
	_, replaced := s.put(key, struct{}{})
	return !replaced
}

// Deletes a key from the set.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.remove(key)
	return ok
}

// Drops every key. Capacity is retained.
func (s *Set[K]) Clear() {
	s.clear()
}

// Grow rehashes the set into an array factor times its current
// capacity.
func (s *Set[K]) Grow(factor int) error {
	if factor < 2 {
		return ErrGrowthFactor
	}

	s.grow(factor)

	return nil
}

func (s *Set[K]) Stats() Stats {
	return s.stats()
}

// Iterator returns a cursor positioned before the first key.
func (s *Set[K]) Iterator() *Iterator[K, struct{}] {
	return newIterator(&s.table)
}
