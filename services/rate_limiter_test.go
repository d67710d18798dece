package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)

	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))

	// other users have their own window
	assert.True(t, l.Allow(2))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow(7))
	assert.False(t, l.Allow(7))

	current = current.Add(time.Minute)
	assert.True(t, l.Allow(7), "window should restart after expiry")
}

func TestRateLimiterReset(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)

	assert.True(t, l.Allow(5))
	assert.False(t, l.Allow(5))

	l.Reset(5)
	assert.True(t, l.Allow(5))
}

func TestRateLimiterPrunesStaleWindows(t *testing.T) {
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return current }

	l.Allow(1)
	l.Allow(2)

	current = current.Add(3 * time.Minute)
	l.Allow(3) // triggers pruning

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.users, uint(1))
	assert.NotContains(t, l.users, uint(2))
	assert.Contains(t, l.users, uint(3))
}
