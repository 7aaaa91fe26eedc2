package asyncx

import (
	"context"
	"time"
)

// WithTimeout runs fn with a deadline of d and returns whichever comes
// first: fn's own result (value or error, passed through untouched) or a
// timeout error matching [ErrTimeout].
//
// On timeout the context handed to fn is cancelled with the timeout error
// as its cause. Cancellation is cooperative: fn keeps running until it
// notices, but its result is discarded. If ctx ends before either side,
// an [ErrCanceled] error wrapping context.Cause(ctx) is returned.
//
// A non-positive d expires immediately and fn is never started. When fn's
// result is already available at the instant the timer fires, the result
// wins.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if d <= 0 {
		return zero, newTimeoutError(d)
	}
	if ctx.Err() != nil {
		return zero, newCanceledError(ctx)
	}

	taskCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	timer := time.NewTimer(d)
	defer timer.Stop()

	r, how := settle(ctx, start(taskCtx, fn), timer.C)
	switch how {
	case expired:
		err := newTimeoutError(d)
		cancel(err)
		return zero, err
	case abandoned:
		return zero, newCanceledError(ctx)
	}
	return r.value, r.err
}

type outcome int

const (
	finished outcome = iota
	expired
	abandoned
)

// settle waits for the first of done, deadline and ctx. A result already
// sitting in done when the deadline fires counts as finished.
func settle[T any](ctx context.Context, done <-chan result[T], deadline <-chan time.Time) (result[T], outcome) {
	select {
	case r := <-done:
		return r, finished
	case <-deadline:
		select {
		case r := <-done:
			return r, finished
		default:
			return result[T]{}, expired
		}
	case <-ctx.Done():
		return result[T]{}, abandoned
	}
}
