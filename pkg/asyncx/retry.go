package asyncx

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/delamain/pkg/logx"
)

// Policy bounds a retry loop. The wait after the n-th failed attempt is
// InitialDelay * 2^(n-1); there is no cap and no jitter, so pick values
// whose worst case total wait is acceptable. Delay and TotalDelay report
// that schedule and saturate at the largest time.Duration instead of
// wrapping.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// Validate rejects policies that cannot run a single attempt.
func (p Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return asyncxErrors.NewWithMessage(ErrInvalidPolicy, "max attempts must be at least 1").
			WithDetail("max_attempts", p.MaxAttempts)
	}
	if p.InitialDelay < 0 {
		return asyncxErrors.NewWithMessage(ErrInvalidPolicy, "initial delay must not be negative").
			WithDetail("initial_delay", p.InitialDelay.String())
	}
	return nil
}

// Delay returns the wait that follows failed attempt n (1-based).
func (p Policy) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	return shift(p.InitialDelay, n-1)
}

// TotalDelay is the sum of every wait a fully exhausted loop sleeps through,
// InitialDelay * (2^(MaxAttempts-1) - 1).
func (p Policy) TotalDelay() time.Duration {
	if p.MaxAttempts <= 1 || p.InitialDelay <= 0 {
		return 0
	}
	k := p.MaxAttempts - 1
	if k >= 63 {
		return maxDuration
	}
	factor := time.Duration(1)<<k - 1
	if p.InitialDelay > maxDuration/factor {
		return maxDuration
	}
	return p.InitialDelay * factor
}

const maxDuration = time.Duration(math.MaxInt64)

// shift returns d * 2^k, saturating at maxDuration.
func shift(d time.Duration, k int) time.Duration {
	if d <= 0 || k <= 0 {
		return d
	}
	if k >= 63 || d > maxDuration>>k {
		return maxDuration
	}
	return d << k
}

// Retry calls fn up to attempts times with no wait between attempts.
func Retry[T any](ctx context.Context, attempts int, fn func(context.Context) (T, error)) (T, error) {
	return RetryWithPolicy(ctx, Policy{MaxAttempts: attempts}, fn)
}

// RetryWithBackoff calls fn up to attempts times with exponential backoff
// starting at initialDelay. The delay doubles after each failed attempt.
func RetryWithBackoff[T any](
	ctx context.Context,
	attempts int,
	initialDelay time.Duration,
	fn func(context.Context) (T, error),
) (T, error) {
	return RetryWithPolicy(ctx, Policy{MaxAttempts: attempts, InitialDelay: initialDelay}, fn)
}

// RetryWithPolicy calls fn until it succeeds or p.MaxAttempts attempts have
// failed, sleeping p.Delay(n) after the n-th failure.
//
// Exhaustion returns the last error from fn exactly as fn returned it, so
// callers can still match on it. Attempts never overlap. If ctx ends while
// an attempt is running or while sleeping, the loop stops with an
// [ErrCanceled] error wrapping context.Cause(ctx); the running attempt is
// abandoned.
func RetryWithPolicy[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := p.Validate(); err != nil {
		return zero, err
	}

	retryID := uuid.NewString()
	delay := p.InitialDelay
	var lastErr error

	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return zero, canceledDuringRetry(ctx, attempt, lastErr)
		}

		r, ok := await(ctx, fn)
		if !ok {
			return zero, canceledDuringRetry(ctx, attempt, lastErr)
		}
		if r.err == nil {
			return r.value, nil
		}
		lastErr = r.err

		if attempt >= p.MaxAttempts {
			logx.WithFields(logx.Fields{
				"retry_id":     retryID,
				"attempt":      attempt,
				"max_attempts": p.MaxAttempts,
			}).WithError(lastErr).Debug("asyncx: retry attempts exhausted")
			return zero, lastErr
		}

		logx.WithFields(logx.Fields{
			"retry_id":     retryID,
			"attempt":      attempt,
			"max_attempts": p.MaxAttempts,
			"delay":        delay,
		}).WithError(lastErr).Debugf("asyncx: attempt %d failed, retrying in %s", attempt, delay)

		if !sleep(ctx, delay) {
			return zero, canceledDuringRetry(ctx, attempt, lastErr)
		}
		delay = shift(delay, 1)
	}
}

func canceledDuringRetry(ctx context.Context, attempt int, lastErr error) error {
	err := newCanceledError(ctx).WithDetail("attempt", attempt)
	if lastErr != nil {
		err.WithDetail("last_error", lastErr.Error())
	}
	return err
}
