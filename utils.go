package chainmap

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in
// bytes. Overflow chain nodes are allocated separately and are not
// accounted for.
func CapacityFromSize[K, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[K, V]{}))
}
