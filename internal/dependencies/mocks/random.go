package mocks

import (
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
)

// MockRandom replays queued values instead of generating them
type MockRandom struct {
	ints    []int
	strings []string
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn pops the next queued int, reduced into [0, n). Returns 0 when the queue is empty.
func (r *MockRandom) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// String pops the next queued string, or "" when the queue is empty
func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.strings) == 0 {
		return ""
	}
	v := r.strings[0]
	r.strings = r.strings[1:]
	return v
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.ints = append(r.ints, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.strings = append(r.strings, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.ints = nil
	r.strings = nil
}
