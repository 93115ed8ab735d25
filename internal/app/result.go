// Package app carries the request pipeline every feature funnels through:
// the result envelope, the validation gate, the mediator that routes each
// request to its single handler, and the persistence ports the handlers
// call.
package app

// FieldError is a single field-level failure message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the three-state outcome envelope every handler returns. Exactly
// one state holds: success with a payload, not-found, or failure with one or
// more field errors. Expected business failures travel in a Result, never as
// a Go error; errors are reserved for infrastructure faults.
type Result[T any] struct {
	value    T
	success  bool
	notFound bool
	errors   []FieldError
}

// Ok creates a successful result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Fail creates a failed result with a single field error.
func Fail[T any](field, message string) Result[T] {
	return Result[T]{errors: []FieldError{{Field: field, Message: message}}}
}

// FailAll creates a failed result carrying every given field error.
func FailAll[T any](errs []FieldError) Result[T] {
	return Result[T]{errors: errs}
}

// FailDomain creates a failed result from a domain guard error. The message
// is not tied to a single input field.
func FailDomain[T any](err error) Result[T] {
	return Result[T]{errors: []FieldError{{Message: err.Error()}}}
}

// NotFound creates a not-found result with an optional field error naming
// what was missing.
func NotFound[T any](field, message string) Result[T] {
	r := Result[T]{notFound: true}
	if message != "" {
		r.errors = []FieldError{{Field: field, Message: message}}
	}
	return r
}

// IsSuccess reports whether the result is successful.
func (r Result[T]) IsSuccess() bool { return r.success }

// IsNotFound reports whether the result signals a missing entity. Mutually
// exclusive with IsSuccess.
func (r Result[T]) IsNotFound() bool { return r.notFound }

// Value returns the success payload. Meaningful only when IsSuccess is true.
func (r Result[T]) Value() T { return r.value }

// Errors returns the field errors of a failed or not-found result.
func (r Result[T]) Errors() []FieldError { return r.errors }
