// Package asyncx provides two composable primitives for bounding work in
// time: a deadline-bounded executor and a bounded retry loop with
// exponential backoff.
//
// Both operate on a task, a function of the form
//
//	func(ctx context.Context) (T, error)
//
// The context is the task's only cancellation signal. Go cannot stop a
// goroutine from outside, so a task that ignores ctx keeps running after
// asyncx has stopped waiting for it; its result is simply never observed.
//
// # Timeout
//
// [WithTimeout] races a task against a timer. The task's own outcome is
// returned untouched when it finishes first; otherwise the task's context
// is cancelled and an error matching [ErrTimeout] is returned.
//
//	user, err := asyncx.WithTimeout(ctx, 2*time.Second, func(ctx context.Context) (*User, error) {
//	    return repo.GetByID(ctx, id)
//	})
//	if asyncx.IsTimeout(err) {
//	    // the repository did not answer in time
//	}
//
// # Retry
//
// [RetryWithBackoff] re-invokes a task until it succeeds or the attempt
// budget is spent, sleeping between attempts for a delay that starts at
// the initial delay and doubles after every failure. When every attempt
// fails the error from the last attempt is returned as is, so errors.Is
// and errors.As keep working on it.
//
//	data, err := asyncx.RetryWithBackoff(ctx, 5, 100*time.Millisecond, func(ctx context.Context) (*Data, error) {
//	    return client.Fetch(ctx)
//	})
//
// [RetryWithPolicy] takes the same parameters as a [Policy] value, which
// is what pkg/config builds from the environment. [Retry] is the variant
// with no wait between attempts.
//
// # Composition
//
// Bound each attempt:
//
//	data, err := asyncx.RetryWithBackoff(ctx, 3, time.Second, func(ctx context.Context) (*Data, error) {
//	    return asyncx.WithTimeout(ctx, 500*time.Millisecond, client.Fetch)
//	})
//
// Or bound the whole loop, sleeps included:
//
//	data, err := asyncx.WithTimeout(ctx, 10*time.Second, func(ctx context.Context) (*Data, error) {
//	    return asyncx.RetryWithBackoff(ctx, 5, time.Second, client.Fetch)
//	})
//
// # Errors
//
// Errors produced by the package itself are [errx.Error] values created
// from the codes [ErrTimeout], [ErrCanceled], [ErrInvalidPolicy] and
// [ErrPanic]; match them with the code's Is method. Timeout errors also
// match context.DeadlineExceeded, and cancellation errors wrap the cause of
// the caller's context. A panic inside a task is recovered and returned as
// an [ErrPanic] error instead of crashing the process.
package asyncx
