package opt

// Transpose commutes an Option of a Result into a Result of an Option.
//
//	None           -> Ok(None)
//	Some(Ok(v))    -> Ok(Some(v))
//	Some(Err(e))   -> the failure carrying e
func Transpose[T any](o Option[Result[T]]) Result[Option[T]] {
	result, ok := o.Get()
	if !ok {
		return Ok(None[T]())
	}

	value, err := result.Get()
	if err != nil {
		return ErrFrom[Option[T]](err)
	}

	return Ok(Some(value))
}
