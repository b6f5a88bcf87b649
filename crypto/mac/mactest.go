package mac

import (
	mrand "math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheme checks the properties every keyed Scheme must have.
func TestScheme(t *testing.T, s Scheme) {
	rng := mrand.New(mrand.NewSource(0))
	randMsg := func() []byte {
		msg := make([]byte, rng.Intn(300))
		rng.Read(msg)
		return msg
	}
	t.Run("ComputeVerify", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			msg := randMsg()
			tag, err := s.Compute(msg)
			require.NoError(t, err)
			require.Len(t, tag, s.Size())
			require.True(t, s.Verify(tag, msg))
		}
	})
	t.Run("Deterministic", func(t *testing.T) {
		msg := randMsg()
		tag1, err := s.Compute(msg)
		require.NoError(t, err)
		tag2, err := s.Compute(msg)
		require.NoError(t, err)
		require.Equal(t, tag1, tag2)
	})
	t.Run("EmptyMessage", func(t *testing.T) {
		tag, err := s.Compute(nil)
		require.NoError(t, err)
		require.Len(t, tag, s.Size())
		require.True(t, s.Verify(tag, []byte{}))
	})
	t.Run("TamperTag", func(t *testing.T) {
		msg := []byte("test data")
		tag, err := s.Compute(msg)
		require.NoError(t, err)
		for i := 0; i < len(tag)*8; i++ {
			tag2 := append([]byte{}, tag...)
			tag2[i/8] ^= 1 << (i % 8)
			require.False(t, s.Verify(tag2, msg), "bit %d", i)
		}
	})
	t.Run("TamperMessage", func(t *testing.T) {
		msg := []byte("test data")
		tag, err := s.Compute(msg)
		require.NoError(t, err)
		for i := 0; i < len(msg)*8; i++ {
			msg2 := append([]byte{}, msg...)
			msg2[i/8] ^= 1 << (i % 8)
			require.False(t, s.Verify(tag, msg2), "bit %d", i)
		}
		require.False(t, s.Verify(tag, append(msg, 0)))
	})
	t.Run("WrongLength", func(t *testing.T) {
		msg := []byte("test data")
		tag, err := s.Compute(msg)
		require.NoError(t, err)
		require.False(t, s.Verify(nil, msg))
		require.False(t, s.Verify(tag[:len(tag)-1], msg))
		require.False(t, s.Verify(append(tag, 0), msg))
	})
	t.Run("Concurrent", func(t *testing.T) {
		msg := []byte("concurrent")
		expected, err := s.Compute(msg)
		require.NoError(t, err)
		var wg sync.WaitGroup
		results := make([][]byte, 8)
		for i := range results {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], _ = s.Compute(msg)
			}()
		}
		wg.Wait()
		for _, r := range results {
			require.Equal(t, expected, r)
		}
	})
}
