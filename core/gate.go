package core

import (
	"context"
	"math"

	"golang.org/x/sync/semaphore"
)

// Gate is the counting signal that parks idle workers. Every Submit adds
// one count, and Destroy adds one per worker so that every parked worker
// is guaranteed exactly one wake-up to observe the shutdown flag. Using
// the same signal for "a job is available" and "check for shutdown" keeps
// the worker loop to a single wait call.
//
// It is a weighted semaphore turned inside out: the semaphore is created
// at full capacity and immediately drained to zero, so Signal releases
// one unit and Wait blocks acquiring one.
type Gate struct {
	sem *semaphore.Weighted
}

// NewGate creates a gate with a count of zero.
func NewGate() *Gate {
	sem := semaphore.NewWeighted(math.MaxInt64)
	// Take every unit up front; Wait now blocks until the first Signal.
	sem.TryAcquire(math.MaxInt64)
	return &Gate{sem: sem}
}

// Signal increments the count, waking at most one blocked waiter.
// It never blocks.
func (g *Gate) Signal() {
	g.sem.Release(1)
}

// Wait blocks until the count is positive, then decrements it. It returns
// a non-nil error only when ctx is cancelled before a count arrives; the
// worker loop treats that as fatal and exits.
func (g *Gate) Wait(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}
