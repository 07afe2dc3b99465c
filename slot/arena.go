package slot

import (
	"iter"
	"weak"

	"github.com/kamstrup/intmap"
)

// Arena layers per-slot generation counters over a Vec so that a reused
// index cannot be confused with its previous occupant. Where Vec hands
// out bare indices and treats stale access as a panic-worthy defect,
// Arena hands out Handles and turns stale access into a detectable miss:
// removing a value bumps the slot's generation, so handles to the old
// value simply stop resolving.
type Arena[T any] struct {
	vec  Vec[T]
	gens []uint32
	refs *intmap.Map[Handle, weak.Pointer[Ref]]
}

// NewArena creates a new, empty Arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		refs: intmap.New[Handle, weak.Pointer[Ref]](256),
	}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.vec.Len()
}

// Insert stores value and returns a Handle for it.
func (a *Arena[T]) Insert(value T) Handle {
	index := a.vec.Insert(value)
	for index >= len(a.gens) {
		a.gens = append(a.gens, 1)
	}
	return NewHandle(a.gens[index], uint32(index))
}

// live reports whether h refers to the current occupant of its slot.
// Remove bumps the generation, so handles issued before the removal
// mismatch. The occupancy check rejects handles that were never issued.
func (a *Arena[T]) live(h Handle) bool {
	index := int(h.Index())
	return h != 0 && index < len(a.gens) && a.gens[index] == h.Generation() && !a.vec.IsHole(index)
}

// Alive reports whether h still refers to a live value.
func (a *Arena[T]) Alive(h Handle) bool {
	return a.live(h)
}

// Get returns the value for h, or false if h is stale or was never
// issued by this arena.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	if !a.live(h) {
		var zero T
		return zero, false
	}
	return a.vec.Get(int(h.Index()))
}

// Ptr returns a pointer to the value for h, or nil if h is stale. The
// pointer stays valid until the next structural mutation of the arena.
func (a *Arena[T]) Ptr(h Handle) *T {
	if !a.live(h) {
		return nil
	}
	return a.vec.Ptr(int(h.Index()))
}

// Remove deletes the value for h and returns it. Stale handles are a
// miss, not an error: Remove returns false and leaves the arena
// unchanged. Any Ref created for h is invalidated.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	if !a.live(h) {
		var zero T
		return zero, false
	}

	if weakPtr, ok := a.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Handle = 0
		}
		a.refs.Del(h)
	}

	index := int(h.Index())
	a.gens[index]++
	return a.vec.Remove(index), true
}

// CreateRef returns a stable Ref for h, or nil if h is stale. Repeated
// calls for the same handle return the same Ref while it is still
// referenced anywhere.
func (a *Arena[T]) CreateRef(h Handle) *Ref {
	if !a.live(h) {
		return nil
	}

	if weakPtr, ok := a.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		// Weak pointer is dead, remove it
		a.refs.Del(h)
	}

	ref := &Ref{Handle: h}
	a.refs.Put(h, weak.Make(ref))
	return ref
}

// Resolve returns the handle a Ref currently points at. It returns false
// if the ref is nil or the value it referred to has been removed.
func (a *Arena[T]) Resolve(ref *Ref) (Handle, bool) {
	if ref == nil || ref.Handle == 0 {
		return 0, false
	}
	return ref.Handle, true
}

// InvalidateRef detaches a Ref without removing the value it points at.
// It reports whether the ref was still valid.
func (a *Arena[T]) InvalidateRef(ref *Ref) bool {
	if ref == nil || ref.Handle == 0 {
		return false
	}
	a.refs.Del(ref.Handle)
	ref.Handle = 0
	return true
}

// All returns an iterator over (handle, value) pairs of live values in
// ascending index order. The mutation guard of Vec.All applies.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for index, value := range a.vec.All() {
			if !yield(NewHandle(a.gens[index], uint32(index)), value) {
				return
			}
		}
	}
}
