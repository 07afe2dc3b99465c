package slot

// Pending buffers structural mutations while a traversal is in progress.
// Insert and Remove invalidate live iterators, so callers that decide on
// mutations mid-iteration queue them here and Flush once the traversal
// is done.
//
// The zero value is ready to use.
type Pending[T any] struct {
	inserts []insertOp[T]
	removes []Handle
	defers  []func()
}

type insertOp[T any] struct {
	value T
	done  func(Handle)
}

// Insert queues an insert operation.
func (p *Pending[T]) Insert(value T) {
	p.InsertFunc(value, nil)
}

// InsertFunc queues an insert operation and calls done with the assigned
// handle when the buffer is flushed.
func (p *Pending[T]) InsertFunc(value T, done func(Handle)) {
	p.inserts = append(p.inserts, insertOp[T]{value: value, done: done})
}

// Remove queues a remove operation.
func (p *Pending[T]) Remove(h Handle) {
	p.removes = append(p.removes, h)
}

// Defer queues a function to run after all buffered mutations have been
// applied.
func (p *Pending[T]) Defer(fn func()) {
	p.defers = append(p.defers, fn)
}

// Flush applies the buffered operations to arena and resets the buffer.
// Removes run first; duplicate and stale handles are skipped. Inserts
// run next, then deferred functions.
func (p *Pending[T]) Flush(arena *Arena[T]) {
	removed := make(map[Handle]bool)
	for _, h := range p.removes {
		if removed[h] {
			continue
		}
		arena.Remove(h)
		removed[h] = true
	}

	for _, op := range p.inserts {
		h := arena.Insert(op.value)
		if op.done != nil {
			op.done(h)
		}
	}

	for _, fn := range p.defers {
		fn()
	}

	p.inserts = p.inserts[:0]
	p.removes = p.removes[:0]
	p.defers = p.defers[:0]
}
