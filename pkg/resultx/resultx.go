// Package resultx holds the outcome of an operation that produced either a
// value or an error, for code that needs to pass that outcome around
// instead of returning it immediately.
package resultx

// Result holds the outcome of a single operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Of packs a (value, error) return pair.
func Of[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// Ok returns a successful result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail returns a failed result.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// OK reports whether the result carries no error.
func (r Result[T]) OK() bool { return r.Err == nil }

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool { return r.Err != nil }

// Get unpacks the result into the usual (value, error) pair.
func (r Result[T]) Get() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}

// ValuePtr returns a pointer to the value, or nil when the result failed.
func (r Result[T]) ValuePtr() *T {
	if r.Err != nil {
		return nil
	}
	v := r.Value
	return &v
}

// OnSuccess calls fn with the value when the result succeeded and returns r unchanged.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.Err == nil {
		fn(r.Value)
	}
	return r
}

// OnFailure calls fn with the error when the result failed and returns r unchanged.
func (r Result[T]) OnFailure(fn func(error)) Result[T] {
	if r.Err != nil {
		fn(r.Err)
	}
	return r
}

// MapError replaces the error of a failed result with fn(err).
func (r Result[T]) MapError(fn func(error) error) Result[T] {
	if r.Err == nil {
		return r
	}
	return Result[T]{Err: fn(r.Err)}
}

// Recover returns the value, or fn(err) when the result failed.
func (r Result[T]) Recover(fn func(error) T) T {
	if r.Err != nil {
		return fn(r.Err)
	}
	return r.Value
}

// Map transforms the value of a successful result; failures pass through.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.Err != nil {
		return Result[R]{Err: r.Err}
	}
	return Result[R]{Value: fn(r.Value)}
}

// FlatMap chains an operation that can itself fail.
func FlatMap[T, R any](r Result[T], fn func(T) (R, error)) Result[R] {
	if r.Err != nil {
		return Result[R]{Err: r.Err}
	}
	return Of(fn(r.Value))
}
