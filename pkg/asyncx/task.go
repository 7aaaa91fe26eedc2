package asyncx

import (
	"context"
	"time"
)

// result holds the outcome of one task invocation.
type result[T any] struct {
	value T
	err   error
}

// start runs fn in its own goroutine and delivers exactly one result.
// The channel is buffered so an abandoned task never blocks on send.
func start[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		var r result[T]
		defer func() {
			if p := recover(); p != nil {
				r = result[T]{err: newPanicError(p)}
			}
			ch <- r
		}()
		r.value, r.err = fn(ctx)
	}()
	return ch
}

// await waits for fn or for ctx to end. ok is false when ctx ended first;
// the task is then abandoned and its result is never read.
func await[T any](ctx context.Context, fn func(context.Context) (T, error)) (r result[T], ok bool) {
	done := start(ctx, fn)
	select {
	case r = <-done:
		return r, true
	case <-ctx.Done():
		select {
		case r = <-done:
			return r, true
		default:
			return r, false
		}
	}
}

// sleep blocks for d or until ctx ends, reporting false in the latter case.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
