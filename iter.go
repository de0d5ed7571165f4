package chainmap

// Iterator is a resumable cursor over a map's entries. It visits every
// entry present at construction time exactly once, in an unspecified
// order, provided the map is not mutated underneath it.
//
// One mutation is supported: removing the entry most recently returned
// by Next before calling Next again. The traversal still terminates
// and still visits every other entry exactly once. Any other mutation
// during a live traversal, insertion in particular (it can trigger a
// rehash), is unsupported.
//
// The cursor never holds a pointer into a chain: removal splices nodes
// out and can promote a chain head into its slot's root, so any cached
// node address could dangle. Position is kept as (slot index, logical
// offset within the slot) plus a copy of the key last yielded, and is
// re-derived from the slot's current state on every step.
type Iterator[K, V any] struct {
	t *table[K, V]

	// pos is the logical position last yielded in slot: 0 the root,
	// n the (n-1)'th chain node, -1 nothing yielded here yet.
	slot int
	pos  int
	last K
}

func newIterator[K, V any](t *table[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{t: t, pos: -1}
}

// findNext re-derives the next entry from the table's current state
// without moving the cursor.
func (it *Iterator[K, V]) findNext() (slot, pos int, e Entry[K, V], ok bool) {
	s, p := it.slot, it.pos

	for s < len(it.t.slots) {
		sl := &it.t.slots[s]

		if p < 0 {
			if sl.used {
				return s, 0, sl.entry, true
			}
		} else {
			next := p + 1

			// If position p no longer holds the key yielded there, the
			// caller removed that entry and compaction shifted every
			// later entry of this slot down one position. The next
			// unvisited entry now sits at p itself. This is also how
			// a promoted chain head gets visited: it reappears at the
			// root position, which is re-checked rather than skipped.
			if cur, held := sl.entryAt(p); !held || !it.t.equalFunc(it.last, cur.Key) {
				next = p
			}

			if e, held := sl.entryAt(next); held {
				return s, next, e, true
			}
		}

		s++
		p = -1
	}

	return 0, 0, Entry[K, V]{}, false
}

// Next returns the next key and advances the cursor past it.
func (it *Iterator[K, V]) Next() (K, bool) {
	s, p, e, ok := it.findNext()
	if !ok {
		it.slot = len(it.t.slots)
		var zero K
		return zero, false
	}

	it.slot, it.pos, it.last = s, p, e.Key

	return e.Key, true
}

// NextValue advances like Next but returns the entry's value.
func (it *Iterator[K, V]) NextValue() (V, bool) {
	s, p, e, ok := it.findNext()
	if !ok {
		it.slot = len(it.t.slots)
		var zero V
		return zero, false
	}

	it.slot, it.pos, it.last = s, p, e.Key

	return e.Value, true
}

// Peek returns the next key without advancing.
func (it *Iterator[K, V]) Peek() (K, bool) {
	_, _, e, ok := it.findNext()
	if !ok {
		var zero K
		return zero, false
	}

	return e.Key, true
}

// PeekValue returns the next entry's value without advancing.
func (it *Iterator[K, V]) PeekValue() (V, bool) {
	_, _, e, ok := it.findNext()
	if !ok {
		var zero V
		return zero, false
	}

	return e.Value, true
}

// HasNext reports whether another entry remains.
func (it *Iterator[K, V]) HasNext() bool {
	_, _, _, ok := it.findNext()
	return ok
}
