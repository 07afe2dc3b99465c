package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Common test value types
type track struct {
	Title string
	Plays int
}

type reading struct {
	Sensor string
	Value  float64
}

// assertPanicsWith runs fn and asserts it panics with an error matching
// want via errors.Is.
func assertPanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if !assert.NotNil(t, r, "expected a panic") {
			return
		}
		err, ok := r.(error)
		if assert.True(t, ok, "panic value should be an error, got %v", r) {
			assert.ErrorIs(t, err, want)
		}
	}()
	fn()
}
