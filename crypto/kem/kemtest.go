package kem

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheme(t *testing.T, scheme Scheme) {
	generate := func(i int) (pub, priv []byte) {
		rng := mrand.New(mrand.NewSource(int64(i)))
		pub, priv, err := scheme.Generate(rng)
		require.NoError(t, err)
		return pub, priv
	}
	t.Run("Generate", func(t *testing.T) {
		pub, priv := generate(0)
		require.Len(t, pub, scheme.PublicKeySize())
		require.NotEmpty(t, priv)
	})
	t.Run("EncapDecap", func(t *testing.T) {
		pub, priv := generate(0)
		rng := mrand.New(mrand.NewSource(100))
		var shared1, shared2 SharedSecret
		ct, err := scheme.Encapsulate(&shared1, rng, pub)
		require.NoError(t, err)
		require.Len(t, ct, scheme.CiphertextSize())

		err = scheme.Decapsulate(&shared2, priv, ct)
		require.NoError(t, err)

		require.NotZero(t, shared1)
		require.NotZero(t, shared2)
		require.Equal(t, shared1, shared2)
	})
	t.Run("WrongKey", func(t *testing.T) {
		pub, _ := generate(0)
		_, priv2 := generate(1)
		rng := mrand.New(mrand.NewSource(100))
		var shared1, shared2 SharedSecret
		ct, err := scheme.Encapsulate(&shared1, rng, pub)
		require.NoError(t, err)
		if err := scheme.Decapsulate(&shared2, priv2, ct); err == nil {
			require.NotEqual(t, shared1, shared2)
		}
	})
	t.Run("BadCiphertext", func(t *testing.T) {
		_, priv := generate(0)
		var ss SharedSecret
		require.Error(t, scheme.Decapsulate(&ss, priv, make([]byte, scheme.CiphertextSize()-1)))
	})
}
