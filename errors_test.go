package cryptoprim

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckLength(t *testing.T) {
	require.NoError(t, CheckLength("key", make([]byte, 32), 32))

	for _, n := range []int{0, 31, 33} {
		err := CheckLength("key", make([]byte, n), 32)
		require.Error(t, err)
		require.True(t, IsErrInvalidInputLength(err))
		require.Contains(t, err.Error(), "key")
	}
}

func TestBackendError(t *testing.T) {
	require.NoError(t, NewBackendError("test", nil))

	err := NewBackendError("test", io.ErrUnexpectedEOF)
	require.True(t, IsErrBackendFailure(err))
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.False(t, IsErrInvalidInputLength(err))

	var be *BackendError
	require.True(t, errors.As(err, &be))
	require.Equal(t, "test", be.Backend)
}

func TestZero(t *testing.T) {
	x := []byte{1, 2, 3, 4}
	Zero(x)
	require.Equal(t, []byte{0, 0, 0, 0}, x)
	Zero(nil)
}
