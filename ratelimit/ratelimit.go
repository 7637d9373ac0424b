// Package ratelimit implements the fixed-window counter that protects the
// public submission endpoint. It is advisory and single-process: a
// multi-instance deployment needs a shared counter instead.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultMax    = 5
	DefaultWindow = time.Minute
)

type entry struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	now     func() time.Time
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		entries: map[string]*entry{},
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether a request under key fits in the current window.
// The first request of a fresh or expired window resets the counter. Once the
// counter reaches the max, requests are denied without further increments.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e := l.entries[key]
	if e == nil || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if e.count >= l.max {
		return false
	}
	e.count++
	return true
}

// Sweep drops expired entries, bounding map growth over distinct addresses.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
		}
	}
}

// StartSweep runs Sweep once per window until ctx is cancelled.
func (l *Limiter) StartSweep(ctx context.Context) {
	go func() {
		t := time.NewTicker(l.window)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Sweep()
			}
		}
	}()
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
