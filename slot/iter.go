package slot

import "iter"

// All returns an iterator over (index, value) pairs of occupied slots in
// ascending index order. Holes are skipped. Each call starts a fresh
// traversal bounded by Bound() at the time of the call.
//
// Structural mutation while the iterator is running is a contract
// violation: the next iteration step panics with ErrMutatedDuringIter.
// Abandoning the iterator (break) and then mutating is fine. To queue
// mutations during a traversal, see Pending.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		version := v.version
		for i := range v.cells {
			if v.version != version {
				panic(ErrMutatedDuringIter)
			}
			if !v.cells[i].occupied {
				continue
			}
			if !yield(i, v.cells[i].value) {
				return
			}
		}
	}
}

// Values returns an iterator over just the occupied values, in ascending
// index order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over (index, pointer) pairs of occupied
// slots, in ascending index order. The yielded pointers allow in-place
// mutation and stay valid until the next structural mutation of the
// store. The same mutation guard as All applies.
func (v *Vec[T]) Ptrs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		version := v.version
		for i := range v.cells {
			if v.version != version {
				panic(ErrMutatedDuringIter)
			}
			if !v.cells[i].occupied {
				continue
			}
			if !yield(i, &v.cells[i].value) {
				return
			}
		}
	}
}
