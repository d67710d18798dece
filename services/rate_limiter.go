package services

import (
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-user limiter for assistant calls. It is
// constructed in main and injected into ChatService rather than living as
// package state, so its contents and reset policy are visible to the caller.
type RateLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	users  map[uint]*requestWindow
	now    func() time.Time
}

type requestWindow struct {
	start time.Time
	count int
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:    max,
		window: window,
		users:  make(map[uint]*requestWindow),
		now:    time.Now,
	}
}

// Allow records a request for the user and reports whether it fits in the
// current window. Expired windows restart on the spot.
func (l *RateLimiter) Allow(userID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.users[userID]
	if !ok || now.Sub(w.start) >= l.window {
		l.users[userID] = &requestWindow{start: now, count: 1}
		l.pruneLocked(now)
		return true
	}

	if w.count >= l.max {
		return false
	}
	w.count++
	return true
}

// Reset drops the user's window entirely.
func (l *RateLimiter) Reset(userID uint) {
	l.mu.Lock()
	delete(l.users, userID)
	l.mu.Unlock()
}

// pruneLocked evicts windows stale for more than two window lengths.
func (l *RateLimiter) pruneLocked(now time.Time) {
	for id, w := range l.users {
		if now.Sub(w.start) >= 2*l.window {
			delete(l.users, id)
		}
	}
}
