package asyncx_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/delamain/pkg/asyncx"
	"github.com/Abraxas-365/delamain/pkg/errx"
)

type attemptError struct {
	attempt int32
}

func (e *attemptError) Error() string {
	return fmt.Sprintf("attempt %d failed", e.attempt)
}

func TestRetryWithBackoff_SucceedsOnThirdAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	start := time.Now()

	got, err := asyncx.RetryWithBackoff(context.Background(), 3, 10*time.Millisecond, func(ctx context.Context) (string, error) {
		if n := calls.Add(1); n < 3 {
			return "", &attemptError{attempt: n}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond, "waits of 10ms and 20ms must both elapse")
}

func TestRetryWithBackoff_ReturnsLastErrorUnwrapped(t *testing.T) {
	t.Parallel()

	var (
		calls atomic.Int32
		last  atomic.Pointer[attemptError]
	)

	_, err := asyncx.RetryWithBackoff(context.Background(), 4, time.Millisecond, func(ctx context.Context) (int, error) {
		e := &attemptError{attempt: calls.Add(1)}
		last.Store(e)
		return 0, e
	})

	assert.Equal(t, int32(4), calls.Load())
	assert.Same(t, last.Load(), err, "exhaustion must surface the final task error itself")

	var ae *attemptError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, int32(4), ae.attempt)
}

func TestRetryWithBackoff_SingleAttemptNeverSleeps(t *testing.T) {
	t.Parallel()

	for _, fail := range []bool{true, false} {
		var calls atomic.Int32
		start := time.Now()

		_, err := asyncx.RetryWithBackoff(context.Background(), 1, time.Hour, func(ctx context.Context) (int, error) {
			calls.Add(1)
			if fail {
				return 0, errUpstream
			}
			return 1, nil
		})

		if fail {
			assert.Same(t, errUpstream, err)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, int32(1), calls.Load())
		assert.Less(t, time.Since(start), time.Second)
	}
}

func TestRetryWithBackoff_FirstSuccessIncursNoDelay(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	start := time.Now()

	got, err := asyncx.RetryWithBackoff(context.Background(), 5, time.Hour, func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, int32(1), calls.Load())
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetry_NoDelayBetweenAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	_, err := asyncx.Retry(context.Background(), 3, func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 0, errUpstream
	})

	assert.Same(t, errUpstream, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryWithPolicy_RejectsInvalidPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy asyncx.Policy
	}{
		{"zero attempts", asyncx.Policy{MaxAttempts: 0}},
		{"negative attempts", asyncx.Policy{MaxAttempts: -2}},
		{"negative delay", asyncx.Policy{MaxAttempts: 3, InitialDelay: -time.Millisecond}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			_, err := asyncx.RetryWithPolicy(context.Background(), tt.policy, func(ctx context.Context) (int, error) {
				calls.Add(1)
				return 1, nil
			})

			assert.True(t, asyncx.ErrInvalidPolicy.Is(err))
			assert.Equal(t, errx.TypeValidation, errx.TypeOf(err))
			assert.Zero(t, calls.Load())
		})
	}
}

func TestRetryWithBackoff_CancelledWhileSleeping(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	var calls atomic.Int32
	start := time.Now()

	_, err := asyncx.RetryWithBackoff(ctx, 5, time.Hour, func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 0, errUpstream
	})

	require.Error(t, err)
	assert.True(t, asyncx.IsCanceled(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load(), "no attempt may start after cancellation")
	assert.Less(t, time.Since(start), time.Second)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errUpstream.Error(), e.Details["last_error"])
	assert.Equal(t, 1, e.Details["attempt"])
}

func TestRetryWithBackoff_CancelledDuringAttempt(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithCancelCause(context.Background())
	stop := errors.New("shutting down")
	time.AfterFunc(50*time.Millisecond, func() { cancel(stop) })

	var calls atomic.Int32
	_, err := asyncx.RetryWithBackoff(ctx, 3, time.Millisecond, func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-block
		return 1, nil
	})

	assert.True(t, asyncx.IsCanceled(err))
	assert.ErrorIs(t, err, stop, "the context cause should be reachable")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryWithBackoff_AlreadyCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := asyncx.RetryWithBackoff(ctx, 3, time.Millisecond, func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 1, nil
	})

	assert.True(t, asyncx.IsCanceled(err))
	assert.Zero(t, calls.Load())
}

func TestRetryWithBackoff_AttemptsNeverOverlap(t *testing.T) {
	t.Parallel()

	var (
		running atomic.Int32
		maxSeen atomic.Int32
		calls   atomic.Int32
	)

	_, err := asyncx.RetryWithBackoff(context.Background(), 4, time.Millisecond, func(ctx context.Context) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)
		if n > maxSeen.Load() {
			maxSeen.Store(n)
		}
		time.Sleep(5 * time.Millisecond)
		calls.Add(1)
		return 0, errUpstream
	})

	assert.Same(t, errUpstream, err)
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestRetryWithBackoff_PerAttemptTimeout(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	got, err := asyncx.RetryWithBackoff(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
		return asyncx.WithTimeout(ctx, 30*time.Millisecond, func(ctx context.Context) (string, error) {
			if calls.Add(1) == 1 {
				<-ctx.Done()
				return "", ctx.Err()
			}
			return "second try", nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, "second try", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWithTimeout_BoundsWholeRetryLoop(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	start := time.Now()

	_, err := asyncx.WithTimeout(context.Background(), 80*time.Millisecond, func(ctx context.Context) (int, error) {
		return asyncx.RetryWithBackoff(ctx, 10, 20*time.Millisecond, func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 0, errUpstream
		})
	})

	assert.True(t, asyncx.IsTimeout(err))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Less(t, calls.Load(), int32(10))
}

func TestPolicy_Delays(t *testing.T) {
	t.Parallel()

	p := asyncx.Policy{MaxAttempts: 4, InitialDelay: 10 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, p.Delay(1))
	assert.Equal(t, 20*time.Millisecond, p.Delay(2))
	assert.Equal(t, 40*time.Millisecond, p.Delay(3))
	assert.Equal(t, 70*time.Millisecond, p.TotalDelay())

	assert.Zero(t, asyncx.Policy{MaxAttempts: 1, InitialDelay: time.Hour}.TotalDelay())
	assert.NoError(t, p.Validate())
}

func TestPolicy_DelaysSaturateInsteadOfWrapping(t *testing.T) {
	t.Parallel()

	const longest = time.Duration(math.MaxInt64)
	p := asyncx.Policy{MaxAttempts: 40, InitialDelay: time.Second}

	assert.Equal(t, time.Duration(1<<29)*time.Second, p.Delay(30))
	assert.Equal(t, longest, p.Delay(35))
	assert.Equal(t, longest, p.Delay(1000))
	assert.Equal(t, longest, p.TotalDelay())

	for n := 1; n <= 100; n++ {
		assert.Positive(t, p.Delay(n), "delay after attempt %d", n)
	}

	tests := []struct {
		name   string
		policy asyncx.Policy
		want   time.Duration
	}{
		{"largest representable sum", asyncx.Policy{MaxAttempts: 63, InitialDelay: 1}, time.Duration(1<<62 - 1)},
		{"one doubling too many", asyncx.Policy{MaxAttempts: 64, InitialDelay: 1}, longest},
		{"zero delay never grows", asyncx.Policy{MaxAttempts: 1 << 20}, 0},
		{"huge attempt count", asyncx.Policy{MaxAttempts: math.MaxInt32, InitialDelay: time.Millisecond}, longest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.policy.TotalDelay())
		})
	}
}
