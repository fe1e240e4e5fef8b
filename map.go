package opt

// Go methods cannot introduce new type parameters, so the type changing
// combinators live here as package functions. The T to T variants exist as
// methods on Option for fluent chaining.

// Map applies fn to the value of o if one is present, None otherwise.
// fn is not invoked when no value is present.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if value, ok := o.Get(); ok {
		return Some(fn(value))
	}

	return None[U]()
}

// MapOf is Map with the zero value collapse of Of applied to fn's result:
// mapping to the zero value of U yields None.
func MapOf[T any, U comparable](o Option[T], fn func(T) U) Option[U] {
	if value, ok := o.Get(); ok {
		return Of(fn(value))
	}

	return None[U]()
}

// MapOr returns fn applied to the value of o if one is present, fallback
// otherwise.
func MapOr[T, U any](o Option[T], fallback U, fn func(T) U) U {
	if value, ok := o.Get(); ok {
		return fn(value)
	}

	return fallback
}

// MapOrElse returns fn applied to the value of o if one is present, the
// result of fallbackFn otherwise. Exactly one of the two functions is
// invoked.
func MapOrElse[T, U any](o Option[T], fallbackFn func() U, fn func(T) U) U {
	if value, ok := o.Get(); ok {
		return fn(value)
	}

	return fallbackFn()
}

// AndThen returns fn applied to the value of o, or None without invoking fn
// if no value is present. The result is returned as is, so chains of Option
// returning functions short-circuit at the first None.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if value, ok := o.Get(); ok {
		return fn(value)
	}

	return None[U]()
}
