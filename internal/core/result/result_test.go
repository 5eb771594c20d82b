package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("should carry the value on success", func(t *testing.T) {
		req := require.New(t)
		r := Ok(42)
		req.True(r.IsOk())
		req.False(r.IsErr())
		req.Equal(42, r.Value())
		req.NoError(r.Err())
	})

	t.Run("should carry the error on failure", func(t *testing.T) {
		req := require.New(t)
		boom := errors.New("boom")
		r := Err[string](boom)
		req.True(r.IsErr())
		req.False(r.IsOk())
		req.Equal("", r.Value())
		req.ErrorIs(r.Err(), boom)
	})

	t.Run("should build a void success", func(t *testing.T) {
		require.True(t, OkVoid().IsOk())
	})

	t.Run("should panic on a nil failure", func(t *testing.T) {
		require.Panics(t, func() { Err[Void](nil) })
	})
}
