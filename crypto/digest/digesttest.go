package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptoprim"
)

type knownDigest struct {
	Alg Algorithm
	In  string
	Hex string
}

var knownDigests = []knownDigest{
	{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{SHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	{SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{SHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
}

// TestProvider checks p against known digests for every Algorithm.
func TestProvider(t *testing.T, p Provider) {
	t.Run("Known", func(t *testing.T) {
		for _, kd := range knownDigests {
			out, err := p.Sum(nil, kd.Alg, []byte(kd.In))
			require.NoError(t, err)
			require.Equal(t, kd.Hex, hex.EncodeToString(out), "%v(%q)", kd.Alg, kd.In)
		}
	})
	t.Run("OutputSize", func(t *testing.T) {
		for _, alg := range Algorithms {
			out, err := p.Sum(nil, alg, []byte("input string"))
			require.NoError(t, err)
			require.Len(t, out, alg.OutputSize())
		}
	})
	t.Run("Parts", func(t *testing.T) {
		for _, alg := range Algorithms {
			whole, err := p.Sum(nil, alg, []byte("hello world"))
			require.NoError(t, err)
			split, err := p.Sum(nil, alg, []byte("hello"), nil, []byte(" "), []byte("world"))
			require.NoError(t, err)
			require.Equal(t, whole, split)
		}
	})
	t.Run("Append", func(t *testing.T) {
		prefix := []byte{1, 2, 3}
		out, err := p.Sum(prefix, SHA256, []byte("abc"))
		require.NoError(t, err)
		require.Equal(t, prefix, out[:3])
		require.Len(t, out, 3+SHA256.OutputSize())
	})
	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := p.Sum(nil, Algorithm(0), []byte("abc"))
		require.True(t, cryptoprim.IsErrUnknownAlgorithm(err))
	})
}
