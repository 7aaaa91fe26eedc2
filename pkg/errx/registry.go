package errx

import (
	"errors"
	"fmt"
	"sync"
)

// ErrorCode represents a registered error code
type ErrorCode struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Is reports whether any error in err's chain was created from this code.
func (c *ErrorCode) Is(err error) bool {
	if c == nil || err == nil {
		return false
	}
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == c.Code {
			return true
		}
		err = e.Err
	}
	return false
}

// Registry hands out the error codes of one package under a common prefix.
type Registry struct {
	prefix string
	mu     sync.Mutex
	codes  map[string]struct{}
}

// NewRegistry creates a new error registry with a prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]struct{}),
	}
}

// Register registers a new error code. Codes are registered from package
// level vars, so a duplicate is a programming error and panics.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) *ErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[code]; exists {
		panic(fmt.Sprintf("errx: code %s_%s registered twice", r.prefix, code))
	}
	r.codes[code] = struct{}{}

	return &ErrorCode{
		Code:       fmt.Sprintf("%s_%s", r.prefix, code),
		Type:       errType,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// NewWithMessage creates an error from a registered code with a custom message
func (r *Registry) NewWithMessage(code *ErrorCode, message string) *Error {
	e := r.NewWithCause(code, nil)
	e.Message = message
	return e
}

// NewWithCause creates a new error from a registered code wrapping cause
func (r *Registry) NewWithCause(code *ErrorCode, cause error) *Error {
	return &Error{
		Code:       code.Code,
		Message:    code.Message,
		Type:       code.Type,
		HTTPStatus: code.HTTPStatus,
		Details:    make(map[string]any),
		Err:        cause,
	}
}
