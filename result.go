package opt

import "fmt"

// Fault is the failure payload of a Result built from a diagnostic message
// and an optional numeric code.
type Fault struct {
	Message string
	Code    int
}

// NewFault builds a Fault from a message and an optional code.
// The code defaults to zero when omitted.
func NewFault(message string, code ...int) *Fault {
	fault := &Fault{Message: message}
	if len(code) > 0 {
		fault.Code = code[0]
	}

	return fault
}

func (f *Fault) Error() string {
	return f.Message
}

// Result holds either one success value of type T or an error, never both.
// The zero value of a Result is Ok of T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err builds a failed Result carrying a Fault with the given message and
// optional code.
func Err[T any](message string, code ...int) Result[T] {
	return Result[T]{err: NewFault(message, code...)}
}

// ErrFrom builds a failed Result carrying err as is.
// A nil err yields Ok of T's zero value.
func ErrFrom[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk returns true if the Result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true if the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the success value and the error, exactly one of which is
// meaningful.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success value. It panics with the carried error if the
// Result holds one.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(r.err)
	}

	return r.value
}

// UnwrapErr returns the carried error. It panics with an AbsentError if the
// Result holds a success value.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic(&AbsentError{Message: "unwrapErr: Expected Err(), was Ok()"})
	}

	return r.err
}

// UnwrapOr returns the success value if present, fallback otherwise.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}

	return r.value
}

// OkValue converts the Result into an Option, discarding the error:
// Ok(v) becomes Some(v), a failure becomes None.
func (r Result[T]) OkValue() Option[T] {
	if r.err != nil {
		return None[T]()
	}

	return Some(r.value)
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}
