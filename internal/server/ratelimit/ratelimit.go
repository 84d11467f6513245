// Package ratelimit throttles requests per client with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket holds the tokens left for one client. Tokens refill continuously up
// to capacity.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Info describes the outcome of one Allow call.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter allows Limit requests per Window for each client, with bursts up
// to Limit. It is safe for concurrent use.
type Limiter struct {
	limit      int
	window     time.Duration
	refillRate float64 // tokens per second

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// New returns a limiter for limit requests per window. A non-positive limit
// or window yields a limiter that allows everything.
func New(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
	if limit > 0 && window > 0 {
		l.refillRate = float64(limit) / window.Seconds()
	}
	return l
}

// Allow consumes a token for clientID if one is available.
func (l *Limiter) Allow(clientID string) Info {
	if l.refillRate == 0 {
		return Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.limit), lastRefill: now}
		l.buckets[clientID] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(l.limit), b.tokens+elapsed*l.refillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return Info{Allowed: true, Limit: l.limit, Remaining: int(b.tokens)}
	}

	wait := (1 - b.tokens) / l.refillRate
	return Info{
		Allowed:    false,
		Limit:      l.limit,
		RetryAfter: time.Duration(wait * float64(time.Second)),
	}
}

// sweep drops buckets that have refilled completely, at most once per window.
// Must be called with mu held.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for id, b := range l.buckets {
		if now.Sub(b.lastRefill) >= l.window {
			delete(l.buckets, id)
		}
	}
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
