package asyncx

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/Abraxas-365/delamain/pkg/errx"
)

var asyncxErrors = errx.NewRegistry("ASYNCX")

var (
	ErrTimeout       = asyncxErrors.Register("TIMEOUT", errx.TypeTimeout, 504, "Operation timed out")
	ErrCanceled      = asyncxErrors.Register("CANCELED", errx.TypeCanceled, 499, "Operation canceled")
	ErrInvalidPolicy = asyncxErrors.Register("INVALID_POLICY", errx.TypeValidation, 400, "Invalid retry policy")
	ErrPanic         = asyncxErrors.Register("PANIC", errx.TypeInternal, 500, "Task panicked")
)

// IsTimeout reports whether err was produced by a deadline elapsing in WithTimeout.
func IsTimeout(err error) bool {
	return ErrTimeout.Is(err)
}

// IsCanceled reports whether err was produced because the caller's context ended.
func IsCanceled(err error) bool {
	return ErrCanceled.Is(err)
}

// The timeout error wraps context.DeadlineExceeded so callers that only
// know the context package still recognise it.
func newTimeoutError(d time.Duration) *errx.Error {
	return asyncxErrors.NewWithCause(ErrTimeout, context.DeadlineExceeded).
		WithDetail("timeout", d.String())
}

func newCanceledError(ctx context.Context) *errx.Error {
	return asyncxErrors.NewWithCause(ErrCanceled, context.Cause(ctx))
}

func newPanicError(p any) *errx.Error {
	cause, _ := p.(error)

	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)

	return asyncxErrors.NewWithCause(ErrPanic, cause).
		WithDetail("panic", fmt.Sprint(p)).
		WithDetail("stack", string(buf[:n]))
}
