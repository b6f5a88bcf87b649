package digest_std

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
)

func TestStd(t *testing.T) {
	digest.TestProvider(t, New())
}

func TestBlockSizeMatchesStdlib(t *testing.T) {
	for _, alg := range digest.Algorithms {
		h, err := newHash(alg)
		require.NoError(t, err)
		require.Equal(t, h.BlockSize(), alg.BlockSize(), alg.String())
		require.Equal(t, h.Size(), alg.OutputSize(), alg.String())
	}
}
