package dhke

import (
	mrand "math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptoprim"
)

func TestScheme(t *testing.T, scheme Scheme) {
	generate := func(i int) KeyPair {
		rng := mrand.New(mrand.NewSource(int64(i)))
		kp, err := scheme.GenerateKeyPair(rng)
		require.NoError(t, err)
		return kp
	}
	t.Run("Generate", func(t *testing.T) {
		kp := generate(0)
		require.Len(t, kp.Private, scheme.KeySize())
		require.Len(t, kp.Public, scheme.KeySize())
		require.NotEqual(t, kp.Private, kp.Public)
	})
	t.Run("Deterministic", func(t *testing.T) {
		require.Equal(t, generate(1), generate(1))
		require.NotEqual(t, generate(1), generate(2))
	})
	t.Run("DeriveKeyPair", func(t *testing.T) {
		kp := generate(0)
		kp2, err := scheme.DeriveKeyPair(kp.Private)
		require.NoError(t, err)
		require.Equal(t, kp, kp2)
	})
	t.Run("Agreement", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			a, b := generate(2*i), generate(2*i+1)
			shared1, err := scheme.ComputeShared(a.Private, b.Public)
			require.NoError(t, err)
			shared2, err := scheme.ComputeShared(b.Private, a.Public)
			require.NoError(t, err)
			require.Len(t, shared1, scheme.KeySize())
			require.Equal(t, shared1, shared2)
		}
	})
	t.Run("DistinctPeers", func(t *testing.T) {
		a, b, c := generate(0), generate(1), generate(2)
		ab, err := scheme.ComputeShared(a.Private, b.Public)
		require.NoError(t, err)
		ac, err := scheme.ComputeShared(a.Private, c.Public)
		require.NoError(t, err)
		require.NotEqual(t, ab, ac)
	})
	t.Run("InvalidLength", func(t *testing.T) {
		kp := generate(0)
		for _, n := range []int{0, scheme.KeySize() - 1, scheme.KeySize() + 1} {
			bad := make([]byte, n)
			_, err := scheme.DeriveKeyPair(bad)
			require.True(t, cryptoprim.IsErrInvalidInputLength(err), "DeriveKeyPair len=%d", n)
			_, err = scheme.ComputeShared(bad, kp.Public)
			require.True(t, cryptoprim.IsErrInvalidInputLength(err), "ComputeShared priv len=%d", n)
			_, err = scheme.ComputeShared(kp.Private, bad)
			require.True(t, cryptoprim.IsErrInvalidInputLength(err), "ComputeShared pub len=%d", n)
		}
	})
	t.Run("NoAliasing", func(t *testing.T) {
		kp := generate(0)
		priv := append([]byte{}, kp.Private...)
		kp2, err := scheme.DeriveKeyPair(priv)
		require.NoError(t, err)
		priv[0] ^= 0xff
		require.Equal(t, kp.Private, kp2.Private)
	})
	t.Run("Concurrent", func(t *testing.T) {
		a, b := generate(0), generate(1)
		expected, err := scheme.ComputeShared(a.Private, b.Public)
		require.NoError(t, err)
		var wg sync.WaitGroup
		results := make([][]byte, 8)
		for i := range results {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], _ = scheme.ComputeShared(a.Private, b.Public)
			}()
		}
		wg.Wait()
		for _, r := range results {
			require.Equal(t, expected, r)
		}
	})
}
