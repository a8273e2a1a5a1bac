//go:build unit

package clock_test

import (
	"testing"
	"time"

	"pos-loyalty/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	now := clock.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	c := clock.NewMockClock(start)
	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())

	c.Add(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())

	c.Set(start)
	c.Tick(time.Second)
	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Second), c.Now())
}
