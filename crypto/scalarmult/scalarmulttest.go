package scalarmult

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodePoint(t testing.TB, x string) (ret Point) {
	data, err := hex.DecodeString(x)
	require.NoError(t, err)
	require.Len(t, data, PointSize)
	copy(ret[:], data)
	return ret
}

// TestProvider runs the RFC 7748 test vectors against p.
func TestProvider(t *testing.T, p Provider) {
	// https://datatracker.ietf.org/doc/html/rfc7748#section-5.2
	t.Run("Vectors", func(t *testing.T) {
		type vector struct{ Scalar, U, Out string }
		vectors := []vector{
			{
				Scalar: "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4",
				U:      "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c",
				Out:    "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552",
			},
			{
				Scalar: "4b66e9d4d1b4673c5ad22691957d6af5c11b6421e0ea01d42ca4169e7918ba0d",
				U:      "e5210f12786811d3f4b7959d0538ae2c31dbe7106fc03c3efc4cd549c715a493",
				Out:    "95cbde9476e8907d7ade45cb4b873f88b595a68799fa152f6f8f7647aac7957c",
			},
		}
		for i, v := range vectors {
			scalar, u := decodePoint(t, v.Scalar), decodePoint(t, v.U)
			var out Point
			require.NoError(t, p.ScalarMult(&out, &scalar, &u))
			require.Equal(t, v.Out, hex.EncodeToString(out[:]), "vector %d", i)
		}
	})
	t.Run("Iterated", func(t *testing.T) {
		k, u := Basepoint, Basepoint
		iterate := func(n int) {
			for i := 0; i < n; i++ {
				var out Point
				require.NoError(t, p.ScalarMult(&out, &k, &u))
				u, k = k, out
			}
		}
		iterate(1)
		require.Equal(t, "422c8e7a6227d7bca1350b3e2bb7279f7897b87bb6854b783c60e80311ae3079", hex.EncodeToString(k[:]))
		iterate(999)
		require.Equal(t, "684cf59ba83309552800ef566f2f4d3c1c3887c49360e3875f2eb94d99532c51", hex.EncodeToString(k[:]))
	})
	// https://datatracker.ietf.org/doc/html/rfc7748#section-6.1
	t.Run("DH", func(t *testing.T) {
		alicePriv := decodePoint(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
		bobPriv := decodePoint(t, "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")

		var alicePub, bobPub, shared1, shared2 Point
		require.NoError(t, p.ScalarBaseMult(&alicePub, &alicePriv))
		require.NoError(t, p.ScalarBaseMult(&bobPub, &bobPriv))
		require.Equal(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a", hex.EncodeToString(alicePub[:]))
		require.Equal(t, "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f", hex.EncodeToString(bobPub[:]))

		require.NoError(t, p.ScalarMult(&shared1, &alicePriv, &bobPub))
		require.NoError(t, p.ScalarMult(&shared2, &bobPriv, &alicePub))
		require.Equal(t, "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742", hex.EncodeToString(shared1[:]))
		require.Equal(t, shared1, shared2)
	})
	t.Run("BaseMatchesMult", func(t *testing.T) {
		scalar := decodePoint(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
		var out1, out2 Point
		require.NoError(t, p.ScalarBaseMult(&out1, &scalar))
		base := Basepoint
		require.NoError(t, p.ScalarMult(&out2, &scalar, &base))
		require.Equal(t, out1, out2)
	})
	t.Run("LowOrder", func(t *testing.T) {
		scalar := decodePoint(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
		for _, x := range LowOrderPoints {
			point := decodePoint(t, x)
			out := Point{0xff}
			require.NoError(t, p.ScalarMult(&out, &scalar, &point))
			require.Equal(t, Point{}, out, x)
		}
	})
}

// LowOrderPoints are encodings of points of small order on Curve25519.
// Multiplying any clamped scalar by one of them gives the all zero output.
var LowOrderPoints = []string{
	// 0 (order 4)
	"0000000000000000000000000000000000000000000000000000000000000000",
	// 1 (order 1)
	"0100000000000000000000000000000000000000000000000000000000000000",
	// order 8
	"e0eb7a7c3b41b8ae1656e3faf19fc46ada098deb9c32b1fd866205165f49b800",
	// order 8
	"5f9c95bca3508c24b1d0b1559c83ef5b04445cc4581c8e86d8224eddd09f1157",
	// p-1 (order 2)
	"ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
}
