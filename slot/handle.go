package slot

// Handle encodes both the slot generation (upper 32 bits) and the slot
// index (lower 32 bits). Generations start at 1, so the zero Handle
// never refers to a live value.
type Handle uint64

// NewHandle creates a Handle from a generation and a slot index
func NewHandle(generation uint32, index uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the generation from the handle
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Index extracts the slot index from the handle
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Ref is a stable reference to an arena value. It is invalidated in
// place when the value it points at is removed.
type Ref struct {
	Handle Handle
}
