package slot

import "errors"

// Sentinel values carried by panics. Get, Ptr and IsHole never fail;
// absence is reported through their return values instead.
var (
	// ErrNotOccupied reports caller misuse: Remove, At or Set targeting
	// an index that is out of range or currently a hole (double remove,
	// never-inserted index, stale index).
	ErrNotOccupied = errors.New("slot: index not occupied")

	// ErrCorruptFreeList reports a bug in the store itself: the free
	// list pointed at an occupied cell. It cannot fire while the slab
	// invariants hold.
	ErrCorruptFreeList = errors.New("slot: free list points at occupied cell")

	// ErrMutatedDuringIter reports a structural mutation (Insert or
	// Remove) while an iterator produced by All, Values or Ptrs was
	// still running.
	ErrMutatedDuringIter = errors.New("slot: store mutated during iteration")
)
