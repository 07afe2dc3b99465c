package slot_test

import (
	"testing"

	"github.com/plus3/slotvec/slot"
	"github.com/stretchr/testify/assert"
)

func TestArenaBasicLifecycle(t *testing.T) {
	arena := slot.NewArena[reading]()

	h := arena.Insert(reading{Sensor: "temp", Value: 21.5})
	assert.NotEqual(t, slot.Handle(0), h)
	assert.True(t, arena.Alive(h))
	assert.Equal(t, 1, arena.Len())

	got, ok := arena.Get(h)
	assert.True(t, ok)
	assert.Equal(t, "temp", got.Sensor)

	removed, ok := arena.Remove(h)
	assert.True(t, ok)
	assert.Equal(t, 21.5, removed.Value)
	assert.False(t, arena.Alive(h))
	assert.Equal(t, 0, arena.Len())
}

func TestArenaStaleHandleAfterReuse(t *testing.T) {
	arena := slot.NewArena[string]()

	old := arena.Insert("first")
	arena.Remove(old)

	// The slot index is reused, but under a new generation
	replacement := arena.Insert("second")
	assert.Equal(t, old.Index(), replacement.Index())
	assert.NotEqual(t, old.Generation(), replacement.Generation())

	_, ok := arena.Get(old)
	assert.False(t, ok)
	assert.Nil(t, arena.Ptr(old))

	got, ok := arena.Get(replacement)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestArenaRemoveStaleHandle(t *testing.T) {
	arena := slot.NewArena[int]()

	h := arena.Insert(7)
	arena.Insert(8)

	_, ok := arena.Remove(h)
	assert.True(t, ok)

	// Second remove is a miss, not a panic, and changes nothing
	_, ok = arena.Remove(h)
	assert.False(t, ok)
	assert.Equal(t, 1, arena.Len())

	_, ok = arena.Remove(slot.Handle(0))
	assert.False(t, ok)

	_, ok = arena.Remove(slot.NewHandle(1, 9999))
	assert.False(t, ok)
}

func TestArenaPtrMutation(t *testing.T) {
	arena := slot.NewArena[reading]()

	h := arena.Insert(reading{Sensor: "pressure", Value: 1.0})

	p := arena.Ptr(h)
	assert.NotNil(t, p)
	p.Value = 2.5

	got, _ := arena.Get(h)
	assert.Equal(t, 2.5, got.Value)
}

func TestArenaIteration(t *testing.T) {
	arena := slot.NewArena[int]()

	h1 := arena.Insert(10)
	h2 := arena.Insert(20)
	h3 := arena.Insert(30)
	arena.Remove(h2)

	var handles []slot.Handle
	var values []int
	for h, v := range arena.All() {
		handles = append(handles, h)
		values = append(values, v)
	}

	assert.Equal(t, []slot.Handle{h1, h3}, handles)
	assert.Equal(t, []int{10, 30}, values)
}

func TestRefBasicLifecycle(t *testing.T) {
	arena := slot.NewArena[string]()

	h := arena.Insert("value")
	ref := arena.CreateRef(h)

	assert.NotNil(t, ref)
	assert.Equal(t, h, ref.Handle)

	resolved, ok := arena.Resolve(ref)
	assert.True(t, ok)
	assert.Equal(t, h, resolved)

	ok = arena.InvalidateRef(ref)
	assert.True(t, ok)

	_, ok = arena.Resolve(ref)
	assert.False(t, ok)

	// The value itself is untouched
	assert.True(t, arena.Alive(h))
}

func TestRefInvalidatedByRemove(t *testing.T) {
	arena := slot.NewArena[string]()

	h := arena.Insert("value")
	ref := arena.CreateRef(h)

	arena.Remove(h)

	_, ok := arena.Resolve(ref)
	assert.False(t, ok)

	// Invalidating an already-dead ref reports false
	assert.False(t, arena.InvalidateRef(ref))
	assert.False(t, arena.InvalidateRef(nil))
}

func TestRefStability(t *testing.T) {
	arena := slot.NewArena[int]()

	h1 := arena.Insert(1)
	h2 := arena.Insert(2)
	h3 := arena.Insert(3)

	ref1 := arena.CreateRef(h1)
	ref2 := arena.CreateRef(h2)
	ref3 := arena.CreateRef(h3)

	arena.Remove(h2)

	_, ok1 := arena.Resolve(ref1)
	_, ok2 := arena.Resolve(ref2)
	_, ok3 := arena.Resolve(ref3)

	assert.True(t, ok1)
	assert.False(t, ok2)
	assert.True(t, ok3)
}

func TestCreateRefReturnsSameRef(t *testing.T) {
	arena := slot.NewArena[int]()

	h := arena.Insert(42)

	ref1 := arena.CreateRef(h)
	ref2 := arena.CreateRef(h)
	assert.Same(t, ref1, ref2)
}

func TestCreateRefForStaleHandle(t *testing.T) {
	arena := slot.NewArena[int]()

	h := arena.Insert(42)
	arena.Remove(h)

	assert.Nil(t, arena.CreateRef(h))
	assert.Nil(t, arena.CreateRef(slot.Handle(0)))
}

func TestHandleEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{1, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 1},
		{7, 0},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		h := slot.NewHandle(tt.generation, tt.index)
		assert.Equal(t, tt.generation, h.Generation())
		assert.Equal(t, tt.index, h.Index())
	}
}

func TestArenaChurnKeepsHandlesUnique(t *testing.T) {
	arena := slot.NewArena[int]()

	seen := make(map[slot.Handle]bool)
	live := make([]slot.Handle, 0)

	for round := 0; round < 100; round++ {
		for i := 0; i < 10; i++ {
			h := arena.Insert(round*100 + i)
			assert.False(t, seen[h], "handle reissued: %v", h)
			seen[h] = true
			live = append(live, h)
		}
		for i := 0; i < 5; i++ {
			h := live[len(live)-1]
			live = live[:len(live)-1]
			_, ok := arena.Remove(h)
			assert.True(t, ok)
		}
	}

	assert.Equal(t, len(live), arena.Len())
	for _, h := range live {
		assert.True(t, arena.Alive(h))
	}
}
