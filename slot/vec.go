// Package slot implements slab containers: growable sequences that give
// every inserted value a stable integer index and recycle freed indices
// through an intrusive free list.
package slot

import "fmt"

// cell is the backing record for one slot. When occupied is false the
// cell is a hole and next links to the next hole in the free list; a
// next value >= the current cell count terminates the list.
type cell[T any] struct {
	value    T
	next     int
	occupied bool
}

// Vec is a slab of values of type T. Insert returns the index the value
// was placed at; Remove turns the slot into a hole without shifting or
// renumbering any other slot. Holes are reused by later inserts in
// last-freed-first-reused order, so the free list behaves as a stack.
//
// Vec does no internal locking. Any number of readers may overlap, but a
// structural mutation (Insert, Remove) must have the store to itself and
// must not overlap a live iterator; see All.
type Vec[T any] struct {
	cells    []cell[T]
	freeHead int
	length   int
	version  uint64
}

// New creates a new, empty Vec.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// NextIndex returns the index the next Insert will claim. It is a pure
// observation and does not reserve anything.
func (v *Vec[T]) NextIndex() int {
	return v.freeHead
}

// Bound returns the exclusive upper bound on indices ever assigned,
// counting both occupied slots and holes. Bound only grows; Remove never
// shrinks it.
func (v *Vec[T]) Bound() int {
	return len(v.cells)
}

// Len returns the number of occupied slots.
func (v *Vec[T]) Len() int {
	return v.length
}

// Cap returns the reserved backing capacity. It is advisory only and
// says nothing about which indices are valid.
func (v *Vec[T]) Cap() int {
	return cap(v.cells)
}

// IsHole reports whether index is an assigned slot that currently holds
// no value. Out-of-range indices are not holes.
func (v *Vec[T]) IsHole(index int) bool {
	return index >= 0 && index < len(v.cells) && !v.cells[index].occupied
}

// Get returns the value at index, or false if index is out of range or a
// hole.
func (v *Vec[T]) Get(index int) (T, bool) {
	if p := v.Ptr(index); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the value at index, or nil if index is out of
// range or a hole. The pointer stays valid until the next structural
// mutation of the store.
func (v *Vec[T]) Ptr(index int) *T {
	if index < 0 || index >= len(v.cells) || !v.cells[index].occupied {
		return nil
	}
	return &v.cells[index].value
}

// Insert stores value and returns its assigned index. The head hole is
// reused if one exists; otherwise the value is appended at Bound() and
// the backing storage grows amortized O(1).
func (v *Vec[T]) Insert(value T) int {
	v.version++

	if v.freeHead >= len(v.cells) {
		index := len(v.cells)
		v.cells = append(v.cells, cell[T]{value: value, occupied: true})
		v.freeHead = index + 1
		v.length++
		return index
	}

	index := v.freeHead
	c := &v.cells[index]
	if c.occupied {
		panic(fmt.Errorf("%w: free head %d", ErrCorruptFreeList, index))
	}
	v.freeHead = c.next
	c.value = value
	c.occupied = true
	v.length++
	return index
}

// Remove deletes the value at index and returns it. The slot becomes a
// hole and index becomes the new free list head. Remove panics with an
// error wrapping ErrNotOccupied if index is out of range or already a
// hole; the store is unchanged in that case.
func (v *Vec[T]) Remove(index int) T {
	if index < 0 || index >= len(v.cells) || !v.cells[index].occupied {
		panic(fmt.Errorf("%w: index %d", ErrNotOccupied, index))
	}
	v.version++

	c := &v.cells[index]
	value := c.value
	var zero T
	c.value = zero // release for GC
	c.next = v.freeHead
	c.occupied = false
	v.freeHead = index
	v.length--
	return value
}

// At returns the value at index, panicking with an error wrapping
// ErrNotOccupied if index is out of range or a hole. It is indexing
// sugar over Get for callers that treat a bad index as a defect.
func (v *Vec[T]) At(index int) T {
	p := v.Ptr(index)
	if p == nil {
		panic(fmt.Errorf("%w: index %d", ErrNotOccupied, index))
	}
	return *p
}

// Set overwrites the value at an occupied index, panicking with an error
// wrapping ErrNotOccupied if index is out of range or a hole. It never
// fills holes; use Insert for that.
func (v *Vec[T]) Set(index int, value T) {
	p := v.Ptr(index)
	if p == nil {
		panic(fmt.Errorf("%w: index %d", ErrNotOccupied, index))
	}
	*p = value
}
