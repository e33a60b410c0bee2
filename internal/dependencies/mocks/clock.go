package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	mu          sync.Mutex
	CurrentTime time.Time
	// Waits records every duration passed to After
	Waits  []time.Duration
	paused bool
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CurrentTime
}

// After advances the clock by d and returns a channel that has already fired.
// While paused the wait is recorded but the channel never fires.
func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Waits = append(c.Waits, d)
	ch := make(chan time.Time, 1)
	if c.paused {
		return ch
	}
	c.CurrentTime = c.CurrentTime.Add(d)
	ch <- c.CurrentTime
	return ch
}

// Pause stops channels returned by later After calls from firing
func (c *MockClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = t
}

// WaitCount returns how many times After was called
func (c *MockClock) WaitCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Waits)
}
