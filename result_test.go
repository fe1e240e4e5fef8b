package opt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("IsOk and IsErr are complements", func(t *testing.T) {
		require.True(t, Ok(1).IsOk())
		require.False(t, Ok(1).IsErr())

		require.True(t, Err[int]("boom").IsErr())
		require.False(t, Err[int]("boom").IsOk())
	})

	t.Run("Unwrap", func(t *testing.T) {
		require.Equal(t, 1, Ok(1).Unwrap())

		require.PanicsWithError(t, "boom", func() {
			Err[int]("boom").Unwrap()
		})
	})

	t.Run("UnwrapErr", func(t *testing.T) {
		require.EqualError(t, Err[int]("boom").UnwrapErr(), "boom")

		require.PanicsWithError(t, "unwrapErr: Expected Err(), was Ok()", func() {
			Ok(1).UnwrapErr()
		})
	})

	t.Run("UnwrapOr", func(t *testing.T) {
		require.Equal(t, 1, Ok(1).UnwrapOr(9))
		require.Equal(t, 9, Err[int]("boom").UnwrapOr(9))
	})

	t.Run("Get", func(t *testing.T) {
		value, err := Ok("a").Get()
		require.NoError(t, err)
		require.Equal(t, "a", value)

		_, err = Err[string]("boom").Get()
		require.Error(t, err)
	})

	t.Run("OkValue", func(t *testing.T) {
		require.Equal(t, Some(1), Ok(1).OkValue())
		require.Equal(t, None[int](), Err[int]("boom").OkValue())
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "Ok(1)", Ok(1).String())
		require.Equal(t, "Err(boom)", Err[int]("boom").String())
	})
}

func TestFault(t *testing.T) {
	t.Run("carries message and code", func(t *testing.T) {
		err := Err[int]("not found", 404).UnwrapErr()

		var fault *Fault
		require.ErrorAs(t, err, &fault)
		require.Equal(t, "not found", fault.Message)
		require.Equal(t, 404, fault.Code)
	})

	t.Run("code defaults to zero", func(t *testing.T) {
		require.Equal(t, 0, NewFault("boom").Code)
		require.Equal(t, 7, NewFault("boom", 7).Code)
	})

	t.Run("ErrFrom keeps the error as is", func(t *testing.T) {
		cause := fmt.Errorf("lookup: %w", errors.New("boom"))
		err := ErrFrom[int](cause).UnwrapErr()
		require.Same(t, cause, err)
		require.EqualError(t, err, "lookup: boom")
	})
}

func TestOkOr(t *testing.T) {
	t.Run("Some becomes Ok", func(t *testing.T) {
		require.Equal(t, Ok(1), Some(1).OkOr("msg"))
	})

	t.Run("None becomes a failure", func(t *testing.T) {
		r := None[int]().OkOr("msg", 404)
		require.True(t, r.IsErr())
		require.EqualError(t, r.UnwrapErr(), "msg")

		var fault *Fault
		require.ErrorAs(t, r.UnwrapErr(), &fault)
		require.Equal(t, 404, fault.Code)
	})
}

func TestOkOrElse(t *testing.T) {
	t.Run("Some leaves fn uninvoked", func(t *testing.T) {
		var calls int
		r := Some(1).OkOrElse(func() error {
			calls++
			return NewFault("unused")
		})

		require.Equal(t, Ok(1), r)
		require.Equal(t, 0, calls)
	})

	t.Run("None carries fn's error", func(t *testing.T) {
		r := None[int]().OkOrElse(func() error {
			return NewFault("gone", 410)
		})

		require.True(t, r.IsErr())

		var fault *Fault
		require.ErrorAs(t, r.UnwrapErr(), &fault)
		require.Equal(t, "gone", fault.Message)
		require.Equal(t, 410, fault.Code)
	})
}
