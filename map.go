package chainmap

import (
	"errors"
	"hash/maphash"
	"iter"
)

var ErrGrowthFactor = errors.New("chainmap: growth factor must be at least 2")

// HashMap is a hash map with separate chaining. Hash and equality are
// supplied by the caller, so any key type works; the map grows itself
// when the load factor crosses its threshold (0.5 by default, doubling
// capacity). All operations are synchronous and unsynchronized:
// concurrent accessors need an external lock.
type HashMap[K, V any] struct {
	table[K, V]
}

// New returns a map with the given hash function, equality function
// and initial capacity. Panics if capacity is not positive, either
// function is nil, or an option carries an invalid value.
func New[K, V any](hash HashFunc[K], equal EqualFunc[K], capacity int, opts ...Option[K, V]) *HashMap[K, V] {
	var m HashMap[K, V]
	m.init(hash, equal, capacity, opts...)

	return &m
}

// NewComparable returns a map for comparable keys, hashed with
// hash/maphash and compared with ==.
func NewComparable[K comparable, V any](capacity int, opts ...Option[K, V]) *HashMap[K, V] {
	return New(MakeDefaultHashFunc[K](maphash.MakeSeed()), ComparableEqual[K](), capacity, opts...)
}

// Number of live entries.
func (m *HashMap[K, V]) Len() int {
	return m.count
}

// Size of the slot array.
func (m *HashMap[K, V]) Capacity() int {
	return len(m.slots)
}

// Returns the value mapped to the key, if any.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Checks whether the key is in the map.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.get(key)
	return ok
}

// Put associates key with value. An equal key already in the map has
// its value overwritten in place, and the previous value is returned
// with replaced == true. Growth runs before the insertion when the
// load factor has been reached.
func (m *HashMap[K, V]) Put(key K, value V) (prev V, replaced bool) {
	return m.put(key, value)
}

// Puts a pre-built entry in the map.
func (m *HashMap[K, V]) PutEntry(e Entry[K, V]) (prev V, replaced bool) {
	return m.put(e.Key, e.Value)
}

// Removes the key from the map, returning the value it mapped to.
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	e, ok := m.remove(key)
	return e.Value, ok
}

// RemoveEntry removes the key and returns a copy of the full removed
// pair. The copy is owned by the caller; it never aliases the map's
// internal storage.
func (m *HashMap[K, V]) RemoveEntry(key K) (Entry[K, V], bool) {
	return m.remove(key)
}

// Drops every entry. Capacity is retained.
func (m *HashMap[K, V]) Clear() {
	m.clear()
}

// Grow rehashes the map into an array factor times its current
// capacity. Put does this on its own; Grow is for callers that want
// to pay the rehash cost up front.
func (m *HashMap[K, V]) Grow(factor int) error {
	if factor < 2 {
		return ErrGrowthFactor
	}

	m.grow(factor)

	return nil
}

func (m *HashMap[K, V]) Stats() Stats {
	return m.stats()
}

// Iterator returns a cursor positioned before the first entry. See
// the Iterator type for what may and may not be mutated while it is
// live.
func (m *HashMap[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(&m.table)
}

// All yields every entry, driven by the same cursor as Iterator: the
// entry most recently yielded may be removed inside the loop body,
// anything else is off limits.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for {
			k, ok := it.Next()
			if !ok {
				return
			}

			v, _ := m.get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}
