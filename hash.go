package chainmap

import "hash/maphash"

// HashFunc maps a key to an unsigned hash. The table reduces the hash
// modulo its capacity to pick a slot.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(K, K) bool

// MakeDefaultHashFunc builds a maphash-backed hash function for
// comparable key types.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// ComparableEqual builds an equality function from == for comparable
// key types.
func ComparableEqual[K comparable]() EqualFunc[K] {
	return func(a, b K) bool {
		return a == b
	}
}
