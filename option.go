// Package opt provides a two-variant optional value container Option and a
// matching success/failure container Result, so that "this value may be
// absent" and "this operation may fail" become explicit, inspectable types
// instead of nil pointers and sentinel values.
package opt

import "fmt"

// unwrapMessage is the fixed diagnostic carried by Unwrap on an absent value.
const unwrapMessage = "unwrap: Expected Some(), was None()"

// AbsentError is the panic payload of Expect and Unwrap when they are called
// on an Option holding no value.
type AbsentError struct {
	Message string
}

func (e *AbsentError) Error() string {
	return e.Message
}

// Option holds either exactly one value of type T or no value at all.
// The zero value of an Option is None.
//
// Every operation returns a new Option, except Take, Replace, GetOrInsert
// and GetOrInsertWith, which update the receiver in place. An Option shared
// between goroutines must be synchronized externally if those are used.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a value. The value is always considered present, even if it is
// the zero value of T.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an Option holding no value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of wraps a value, collapsing the zero value of T to None.
// Use Some to keep a zero value present.
func Of[T comparable](value T) Option[T] {
	var zero T
	if value == zero {
		return None[T]()
	}

	return Some(value)
}

// OfPtr dereferences p into an Option. A nil pointer becomes None.
func OfPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and a flag indicating its presence.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Expect returns the value. It panics with an AbsentError carrying msg
// verbatim if no value is present.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(&AbsentError{Message: msg})
	}

	return o.value
}

// Unwrap returns the value. It panics with an AbsentError carrying a fixed
// diagnostic if no value is present.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&AbsentError{Message: unwrapMessage})
	}

	return o.value
}

// UnwrapOr returns the value if present, fallback otherwise.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// UnwrapOrElse returns the value if present. Otherwise it invokes fn and
// returns its result. fn is not invoked when a value is present.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}

	return fn()
}

// UnwrapOrZero returns the value if present, the zero value of T otherwise.
func (o Option[T]) UnwrapOrZero() T {
	var zero T
	return o.UnwrapOr(zero)
}

// Map applies fn to the value if one is present. A type changing version
// exists as the package level Map function.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.present {
		return None[T]()
	}

	return Some(fn(o.value))
}

// MapOr returns fn applied to the value if one is present, fallback
// otherwise. The fallback is evaluated eagerly by the caller.
func (o Option[T]) MapOr(fallback T, fn func(T) T) T {
	if !o.present {
		return fallback
	}

	return fn(o.value)
}

// MapOrElse returns fn applied to the value if one is present, the result of
// fallbackFn otherwise. Exactly one of the two functions is invoked.
func (o Option[T]) MapOrElse(fallbackFn func() T, fn func(T) T) T {
	if !o.present {
		return fallbackFn()
	}

	return fn(o.value)
}

// OkOr converts the Option into a Result. A present value becomes Ok, an
// absent one becomes Err built from message and the optional code.
func (o Option[T]) OkOr(message string, code ...int) Result[T] {
	if !o.present {
		return Err[T](message, code...)
	}

	return Ok(o.value)
}

// OkOrElse converts the Option into a Result. A present value becomes Ok
// without invoking fn, an absent one becomes a failure carrying fn's error.
// Callers wanting a message and code return NewFault from fn.
func (o Option[T]) OkOrElse(fn func() error) Result[T] {
	if !o.present {
		return ErrFrom[T](fn())
	}

	return Ok(o.value)
}

// And returns None if either operand holds no value, b otherwise.
// Note the asymmetry: the receiver's value is discarded.
func (o Option[T]) And(b Option[T]) Option[T] {
	if !o.present {
		return None[T]()
	}

	return b
}

// AndThen returns fn applied to the value, or None without invoking fn if no
// value is present. The result is not re-wrapped, so chains of Option
// returning functions short-circuit at the first None. A type changing
// version exists as the package level AndThen function.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if !o.present {
		return None[T]()
	}

	return fn(o.value)
}

// Filter keeps the value only if pred accepts it. pred is not invoked when
// no value is present.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}

	return None[T]()
}

// Or returns the receiver if it holds a value, b otherwise.
func (o Option[T]) Or(b Option[T]) Option[T] {
	if o.present {
		return o
	}

	return b
}

// OrElse returns the receiver if it holds a value. Otherwise it invokes fn
// and returns its result. fn is not invoked when a value is present.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}

	return fn()
}

// Xor returns whichever of the two operands holds a value, or None if both
// or neither do.
func (o Option[T]) Xor(b Option[T]) Option[T] {
	switch {
	case o.present && !b.present:
		return o
	case !o.present && b.present:
		return b
	default:
		return None[T]()
	}
}

// GetOrInsert sets the receiver to value if it holds none, then returns the
// now present payload. An already present value is kept and value discarded.
func (o *Option[T]) GetOrInsert(value T) T {
	if !o.present {
		o.value = value
		o.present = true
	}

	return o.value
}

// GetOrInsertWith sets the receiver to fn's result if it holds no value,
// then returns the now present payload. fn is only invoked when the receiver
// holds no value.
func (o *Option[T]) GetOrInsertWith(fn func() T) T {
	if !o.present {
		o.value = fn()
		o.present = true
	}

	return o.value
}

// Take moves the value out of the receiver. The receiver is None afterwards
// and the previous state is returned, which is None if there was no value.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = None[T]()
	return prev
}

// Replace sets the receiver to value and returns the previous state, which
// is None if there was no value. The receiver always holds value afterwards.
func (o *Option[T]) Replace(value T) Option[T] {
	prev := *o
	*o = Some(value)
	return prev
}

// Ptr returns a pointer to a copy of the value, or nil if none is present.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	value := o.value
	return &value
}

func (o Option[T]) String() string {
	if !o.present {
		return "None()"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Equal compares two Options. Two None values are equal, two present values
// compare by ==.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}

	return !a.present || a.value == b.value
}
