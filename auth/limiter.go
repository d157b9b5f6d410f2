package auth

import (
	"sync"
	"time"
)

// limiter locks an email out after max consecutive password failures.
type limiter struct {
	mu       sync.Mutex
	max      int
	lockout  time.Duration
	failures map[string]int
	until    map[string]time.Time
}

func newLimiter(max int, lockout time.Duration) *limiter {
	return &limiter{
		max:      max,
		lockout:  lockout,
		failures: make(map[string]int),
		until:    make(map[string]time.Time),
	}
}

func (l *limiter) locked(email string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	u, ok := l.until[email]
	if !ok {
		return false
	}
	if now.Before(u) {
		return true
	}
	delete(l.until, email)
	return false
}

func (l *limiter) fail(email string, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[email]++
	if l.failures[email] >= l.max {
		l.until[email] = now.Add(l.lockout)
		delete(l.failures, email)
	}
}

func (l *limiter) reset(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, email)
	delete(l.until, email)
}
