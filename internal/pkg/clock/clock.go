package clock

import (
	"sync"
	"time"
)

// Clock stamps ledger entries, redemptions and tier changes.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewRealClock returns UTC wall time truncated to microseconds so values
// survive a round trip through timestamptz unchanged.
func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// MockClock is a settable clock for tests. With a non-zero step every Now call
// advances it, which keeps entry timestamps strictly ordered.
type MockClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t.UTC()}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *MockClock) Tick(step time.Duration) *MockClock {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = step
	return c
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
