package form

import "errors"

// ValidationError carries the user-facing message of a failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// invalid builds a *ValidationError.
func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Result is the outcome of one validation pass: Ok with parsed values or
// Invalid with a reason. Results are values and never mutated after creation.
type Result[T any] struct {
	value  T
	reason string
	ok     bool
}

// Ok wraps successfully parsed values.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Invalid builds a failed result with the given message.
func Invalid[T any](reason string) Result[T] {
	return Result[T]{reason: reason}
}

// Fail converts a validation error into a failed result.
func Fail[T any](err error) Result[T] {
	return Invalid[T](err.Error())
}

func (r Result[T]) IsOk() bool { return r.ok }

// Value returns the parsed values and whether the result is Ok.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Reason returns the Invalid message, or "" for Ok results.
func (r Result[T]) Reason() string { return r.reason }

// Err returns nil for Ok results and a *ValidationError otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return invalid(r.reason)
}

// Map applies f to the parsed values of an Ok result. f never runs on an
// Invalid result.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Invalid[U](r.reason)
	}
	return Ok(f(r.value))
}
