package chainmap

const (
	defaultLoadFactor   = 0.5
	defaultGrowthFactor = 2
)

// Entry is one key/value pair held by the table. The table stores
// copies of the caller's key and value; it never inspects them beyond
// the hash and equality functions.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// node is one overflow entry hanging off a slot. A node is reachable
// only through its predecessor, or through the slot head for the first
// one, so splicing it out of the chain releases it.
type node[K, V any] struct {
	entry Entry[K, V]
	next  *node[K, V]
}

// slot is one position of the table array: a root entry plus the head
// of the collision chain for keys probing to the same index.
//
// Invariant: a slot with used == false has a nil chain. Removal keeps
// the root occupied by promoting the chain head whenever the root
// entry goes away, so the root is always the first live entry of the
// slot if any exist. The iterator depends on this.
type slot[K, V any] struct {
	entry Entry[K, V]
	used  bool
	head  *node[K, V]
}

// entryAt returns the entry at a logical position of the slot:
// position 0 is the root, position n is the (n-1)'th chain node.
func (s *slot[K, V]) entryAt(pos int) (Entry[K, V], bool) {
	if pos == 0 {
		if !s.used {
			return Entry[K, V]{}, false
		}
		return s.entry, true
	}

	n := s.head
	for i := 1; i < pos && n != nil; i++ {
		n = n.next
	}

	if n == nil {
		return Entry[K, V]{}, false
	}

	return n.entry, true
}

type table[K, V any] struct {
	slots []slot[K, V]
	count int

	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]

	loadFactor   float64
	growthFactor int

	emptyV V
	emptyE Entry[K, V]
}

type Option[K, V any] func(t *table[K, V])

// Override the default 0.5 load-factor threshold. Must be in (0, 1].
func WithLoadFactor[K, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.loadFactor = f
	}
}

// Override the default x2 growth factor. Must be at least 2.
func WithGrowthFactor[K, V any](f int) Option[K, V] {
	return func(t *table[K, V]) {
		t.growthFactor = f
	}
}

func (t *table[K, V]) init(hash HashFunc[K], equal EqualFunc[K], capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		panic("chainmap: capacity must be positive")
	}
	if hash == nil {
		panic("chainmap: nil hash function")
	}
	if equal == nil {
		panic("chainmap: nil equality function")
	}

	t.slots = make([]slot[K, V], capacity)
	t.hashFunc = hash
	t.equalFunc = equal
	t.loadFactor = defaultLoadFactor
	t.growthFactor = defaultGrowthFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.loadFactor <= 0 || t.loadFactor > 1 {
		panic("chainmap: load factor must be in (0, 1]")
	}
	if t.growthFactor < 2 {
		panic("chainmap: growth factor must be at least 2")
	}
}

func (t *table[K, V]) probe(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.slots)))
}

func (t *table[K, V]) get(key K) (V, bool) {
	if t.count == 0 {
		return t.emptyV, false
	}

	s := &t.slots[t.probe(key)]
	if !s.used {
		return t.emptyV, false
	}

	if t.equalFunc(key, s.entry.Key) {
		return s.entry.Value, true
	}

	for n := s.head; n != nil; n = n.next {
		if t.equalFunc(key, n.entry.Key) {
			return n.entry.Value, true
		}
	}

	return t.emptyV, false
}

func (t *table[K, V]) put(key K, value V) (V, bool) {
	t.ensureCapacity()
	return t.insert(key, value)
}

// insert is the put path without the growth pre-check. Rehashing uses
// it directly so draining the old array cannot re-trigger growth.
func (t *table[K, V]) insert(key K, value V) (V, bool) {
	s := &t.slots[t.probe(key)]

	if !s.used {
		s.entry = Entry[K, V]{Key: key, Value: value}
		s.used = true
		t.count++

		return t.emptyV, false
	}

	if t.equalFunc(key, s.entry.Key) {
		prev := s.entry.Value
		s.entry.Value = value

		return prev, true
	}

	var tail *node[K, V]
	for n := s.head; n != nil; n = n.next {
		if t.equalFunc(key, n.entry.Key) {
			prev := n.entry.Value
			n.entry.Value = value

			return prev, true
		}

		tail = n
	}

	// No match anywhere in the slot, append at the chain tail.
	nn := &node[K, V]{entry: Entry[K, V]{Key: key, Value: value}}
	if tail == nil {
		s.head = nn
	} else {
		tail.next = nn
	}
	t.count++

	return t.emptyV, false
}

func (t *table[K, V]) remove(key K) (Entry[K, V], bool) {
	if t.count == 0 {
		return t.emptyE, false
	}

	s := &t.slots[t.probe(key)]
	if !s.used {
		return t.emptyE, false
	}

	if t.equalFunc(key, s.entry.Key) {
		removed := s.entry

		if head := s.head; head != nil {
			// Promote the chain head into the root so the root stays
			// the first live entry of the slot.
			s.entry = head.entry
			s.head = head.next
		} else {
			s.entry = t.emptyE
			s.used = false
		}
		t.count--

		return removed, true
	}

	var parent *node[K, V]
	for n := s.head; n != nil; n = n.next {
		if t.equalFunc(key, n.entry.Key) {
			removed := n.entry

			if parent == nil {
				s.head = n.next
			} else {
				parent.next = n.next
			}
			t.count--

			return removed, true
		}

		parent = n
	}

	return t.emptyE, false
}

func (t *table[K, V]) clear() {
	for i := range t.slots {
		t.slots[i] = slot[K, V]{}
	}

	t.count = 0
}

func (t *table[K, V]) ensureCapacity() {
	if float64(t.count)/float64(len(t.slots)) >= t.loadFactor {
		t.grow(t.growthFactor)
	}
}

// grow rehashes every entry into a fresh array of factor times the
// current capacity. Each old slot is drained root first, then its
// chain head-to-tail; order across slots follows the old array.
func (t *table[K, V]) grow(factor int) {
	old := t.slots

	t.slots = make([]slot[K, V], len(old)*factor)
	t.count = 0

	for i := range old {
		s := &old[i]
		if !s.used {
			continue
		}

		t.insert(s.entry.Key, s.entry.Value)

		for n := s.head; n != nil; n = n.next {
			t.insert(n.entry.Key, n.entry.Value)
		}
	}
}
