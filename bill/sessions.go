package bill

import (
	"sync"
	"time"
)

// sweepEvery bounds how often idle bills are searched for.
const sweepEvery = time.Minute

type entry struct {
	bill    Bill
	touched time.Time
}

// Sessions holds the single active bill of each user. Bills untouched for
// longer than the idle limit are forgotten, so abandoned guest sessions do
// not accumulate.
type Sessions struct {
	mu    sync.Mutex
	bills map[string]entry
	idle  time.Duration
	swept time.Time
	now   func() time.Time
}

// NewSessions returns an empty holder. now dates freshly started bills and
// drives expiry; idle <= 0 keeps bills until they are dropped.
func NewSessions(now func() time.Time, idle time.Duration) *Sessions {
	if now == nil {
		now = time.Now
	}
	return &Sessions{bills: make(map[string]entry), idle: idle, now: now}
}

// Get returns the user's active bill, starting one if needed.
func (s *Sessions) Get(userID string) Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	b := s.getLocked(userID, now)
	s.bills[userID] = entry{bill: b, touched: now}
	return b
}

func (s *Sessions) getLocked(userID string, now time.Time) Bill {
	e, ok := s.bills[userID]
	if !ok || s.expired(e, now) {
		return New(now)
	}
	return e.bill
}

func (s *Sessions) expired(e entry, now time.Time) bool {
	return s.idle > 0 && now.Sub(e.touched) > s.idle
}

func (s *Sessions) sweepLocked(now time.Time) {
	if s.idle <= 0 || now.Sub(s.swept) < sweepEvery {
		return
	}
	s.swept = now
	for id, e := range s.bills {
		if s.expired(e, now) {
			delete(s.bills, id)
		}
	}
}

// Update applies fn to the user's active bill and stores the result. When fn
// fails the stored bill is unchanged.
func (s *Sessions) Update(userID string, fn func(Bill) (Bill, error)) (Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	cur := s.getLocked(userID, now)
	next, err := fn(cur)
	if err != nil {
		s.bills[userID] = entry{bill: cur, touched: now}
		return cur, err
	}
	s.bills[userID] = entry{bill: next, touched: now}
	return next, nil
}

// Reset discards the user's active bill and starts a new one.
func (s *Sessions) Reset(userID string) Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	b := New(now)
	s.bills[userID] = entry{bill: b, touched: now}
	return b
}

// Drop forgets the user's bill, e.g. on sign-out.
func (s *Sessions) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bills, userID)
}

// Len reports how many bills are held.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bills)
}
