// Package ratelimit guards the checkout endpoint with a fixed-window request
// limit per client. The limiter fails open: a broken or unconfigured backend
// never blocks checkouts.
package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of one limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key within a window. Implementations: in-memory
// (tests, single instance) and Redis (shared across instances).
type Store interface {
	// Incr adds one hit for key in the current window and returns the running
	// count. The first hit of a window starts its expiry clock.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Service applies one fixed-window policy over a Store.
type Service struct {
	store  Store
	limit  int
	window time.Duration
}

// NewService creates a limiter allowing limit requests per window.
func NewService(store Store, limit int, window time.Duration) *Service {
	return &Service{store: store, limit: limit, window: window}
}

// Allow records a hit for key and reports whether it is within the limit.
func (s *Service) Allow(ctx context.Context, key string) (*Result, error) {
	count, err := s.store.Incr(ctx, key, s.window)
	if err != nil {
		return nil, err
	}

	remaining := s.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   count <= int64(s.limit),
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(s.window),
	}, nil
}
