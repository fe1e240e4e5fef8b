package opt

import "encoding/json"

// MarshalJSON encodes None as null and a present value as the value itself.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if value, ok := o.Get(); ok {
		return json.Marshal(value)
	}

	return []byte("null"), nil
}

// UnmarshalJSON decodes null into None and any other value into Some.
// A field that is absent from the input leaves the Option untouched.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*o = Some(value)
	return nil
}
