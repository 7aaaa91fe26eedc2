// Package ptrx treats pointers as optional values: nil is "absent", anything
// else is "present".
package ptrx

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// ToSlice returns a slice of pointers to copies of the values passed in.
func ToSlice[T any](vs []T) []*T {
	ps := make([]*T, len(vs))
	for i, v := range vs {
		vv := v
		ps[i] = &vv
	}
	return ps
}

// Value returns the value of the pointer passed in or the zero value if the pointer is nil.
func Value[T any](v *T) T {
	if v != nil {
		return *v
	}
	var zero T
	return zero
}

// ValueOr returns the value of the pointer passed in or def if the pointer is nil.
func ValueOr[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// ValueOrElse is ValueOr with a lazily computed default; fn only runs when v is nil.
func ValueOrElse[T any](v *T, fn func() T) T {
	if v != nil {
		return *v
	}
	return fn()
}

// OrError returns the value, or the zero value and err when v is nil.
func OrError[T any](v *T, err error) (T, error) {
	if v != nil {
		return *v, nil
	}
	var zero T
	return zero, err
}

// OrErrorFunc is OrError with a lazily built error.
func OrErrorFunc[T any](v *T, fn func() error) (T, error) {
	if v != nil {
		return *v, nil
	}
	var zero T
	return zero, fn()
}

// Apply calls fn with the value when v is not nil.
func Apply[T any](v *T, fn func(T)) {
	if v != nil {
		fn(*v)
	}
}

// Map transforms the value when present and keeps nil otherwise.
func Map[T, R any](v *T, fn func(T) R) *R {
	if v == nil {
		return nil
	}
	r := fn(*v)
	return &r
}

// IsNil checks if a pointer is nil.
func IsNil[T any](v *T) bool {
	return v == nil
}

// IsNotNil checks if a pointer is not nil.
func IsNotNil[T any](v *T) bool {
	return v != nil
}
