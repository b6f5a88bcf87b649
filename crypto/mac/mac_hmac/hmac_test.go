package mac_hmac

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest/digest_std"
	"github.com/brendoncarroll/go-cryptoprim/crypto/mac"
)

type vector struct {
	Alg    digest.Algorithm
	KeyLen int
	Msg    string
	Tag    string
}

// https://csrc.nist.gov/groups/ST/toolkit/examples.html
// keys are the byte sequence 0x00, 0x01, ... of length KeyLen
var nistVectors = []vector{
	{digest.SHA1, 64, "Sample message for keylen=blocklen", "5fd596ee78d5553c8ff4e72d266dfd192366da29"},
	{digest.SHA1, 20, "Sample message for keylen<blocklen", "4c99ff0cb1b31bd33f8431dbaf4d17fcd356a807"},
	{digest.SHA1, 100, "Sample message for keylen=blocklen", "2d51b2f7750e410584662e38f133435f4c4fd42a"},

	{digest.SHA256, 64, "Sample message for keylen=blocklen", "8bb9a1db9806f20df7f77b82138c7914d174d59e13dc4d0169c9057b133e1d62"},
	{digest.SHA256, 32, "Sample message for keylen<blocklen", "a28cf43130ee696a98f14a37678b56bcfcbdd9e5cf69717fecf5480f0ebdf790"},
	{digest.SHA256, 100, "Sample message for keylen=blocklen", "bdccb6c72ddeadb500ae768386cb38cc41c63dbb0878ddb9c7a38a431b78378d"},

	{digest.SHA384, 128, "Sample message for keylen=blocklen", "63c5daa5e651847ca897c95814ab830bededc7d25e83eef9195cd45857a37f448947858f5af50cc2b1b730ddf29671a9"},
	{digest.SHA384, 48, "Sample message for keylen<blocklen", "6eb242bdbb582ca17bebfa481b1e23211464d2b7f8c20b9ff2201637b93646af5ae9ac316e98db45d9cae773675eeed0"},
	{digest.SHA384, 200, "Sample message for keylen=blocklen", "5b664436df69b0ca22551231a3f0a3d5b4f97991713cfa84bff4d0792eff96c27dccbbb6f79b65d548b40e8564cef594"},

	{digest.SHA512, 128, "Sample message for keylen=blocklen", "fc25e240658ca785b7a811a8d3f7b4ca48cfa26a8a366bf2cd1f836b05fcb024bd36853081811d6cea4216ebad79da1cfcb95ea4586b8a0ce356596a55fb1347"},
	{digest.SHA512, 64, "Sample message for keylen<blocklen", "fd44c18bda0bb0a6ce0e82b031bf2818f6539bd56ec00bdc10a8a2d730b3634de2545d639b0f2cf710d0692c72a1896f1f211c2b922d1a96c392e07e7ea9fedc"},
	{digest.SHA512, 200, "Sample message for keylen=blocklen", "d93ec8d2de1ad2a9957cb9b83f14e76ad6b5e0cce285079a127d3b14bccb7aa7286d4ac0d4ce64215f2bc9e6870b33d97438be4aaa20cda5c5a912b48b8e27f3"},
}

func seqKey(n int) []byte {
	key := make([]byte, n)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestNIST(t *testing.T) {
	for i, v := range nistVectors {
		h, err := New(digest_std.New(), v.Alg, seqKey(v.KeyLen))
		require.NoError(t, err)
		expected, err := hex.DecodeString(v.Tag)
		require.NoError(t, err)

		actual, err := h.Compute([]byte(v.Msg))
		require.NoError(t, err)
		require.Equal(t, expected, actual, "vector %d", i)
		require.True(t, h.Verify(expected, []byte(v.Msg)), "vector %d", i)
	}
}

// https://datatracker.ietf.org/doc/html/rfc4231#section-4
func TestRFC4231(t *testing.T) {
	type testCase struct {
		Key    string
		Msg    string
		SHA256 string
		SHA512 string
	}
	tcs := []testCase{
		{
			Key:    "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
			Msg:    hex.EncodeToString([]byte("Hi There")),
			SHA256: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
			SHA512: "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cdedaa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
		},
		{
			Key:    hex.EncodeToString([]byte("Jefe")),
			Msg:    hex.EncodeToString([]byte("what do ya want for nothing?")),
			SHA256: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
			SHA512: "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
		},
	}
	for i, tc := range tcs {
		key, err := hex.DecodeString(tc.Key)
		require.NoError(t, err)
		msg, err := hex.DecodeString(tc.Msg)
		require.NoError(t, err)
		for alg, expected := range map[digest.Algorithm]string{digest.SHA256: tc.SHA256, digest.SHA512: tc.SHA512} {
			h, err := New(digest_std.New(), alg, key)
			require.NoError(t, err)
			actual, err := h.Compute(msg)
			require.NoError(t, err)
			require.Equal(t, expected, hex.EncodeToString(actual), "case %d %v", i+1, alg)
		}
	}
}

func TestMatchesStandard(t *testing.T) {
	stdHashes := map[digest.Algorithm]func() hash.Hash{
		digest.SHA1:   sha1.New,
		digest.SHA256: sha256.New,
		digest.SHA384: sha512.New384,
		digest.SHA512: sha512.New,
	}
	rng := mrand.New(mrand.NewSource(0))
	for alg, newHash := range stdHashes {
		for _, keyLen := range []int{0, 1, alg.BlockSize() - 1, alg.BlockSize(), alg.BlockSize() + 1, 3 * alg.BlockSize()} {
			key := make([]byte, keyLen)
			rng.Read(key)
			msg := make([]byte, rng.Intn(1000))
			rng.Read(msg)

			std := hmac.New(newHash, key)
			std.Write(msg)
			expected := std.Sum(nil)

			h, err := New(digest_std.New(), alg, key)
			require.NoError(t, err)
			actual, err := h.Compute(msg)
			require.NoError(t, err)
			require.Equal(t, expected, actual, "%v keyLen=%d", alg, keyLen)
		}
	}
}

func TestScheme(t *testing.T) {
	for _, alg := range digest.Algorithms {
		alg := alg
		t.Run(alg.String(), func(t *testing.T) {
			h, err := New(digest_std.New(), alg, []byte("secret key"))
			require.NoError(t, err)
			mac.TestScheme(t, h)
		})
	}
}

func TestKeyBoundary(t *testing.T) {
	p := digest_std.New()
	msg := []byte("boundary")
	for _, alg := range digest.Algorithms {
		// a key exactly one block long is used as is, not hashed
		key := seqKey(alg.BlockSize())
		k, err := NormalizeKey(p, alg, key)
		require.NoError(t, err)
		require.Equal(t, key, k)

		hashedKey, err := p.Sum(nil, alg, key)
		require.NoError(t, err)
		h1, err := New(p, alg, key)
		require.NoError(t, err)
		h2, err := New(p, alg, hashedKey)
		require.NoError(t, err)
		tag1, err := h1.Compute(msg)
		require.NoError(t, err)
		tag2, err := h2.Compute(msg)
		require.NoError(t, err)
		require.NotEqual(t, tag1, tag2, alg.String())

		// one byte longer is hashed, so it behaves exactly like its digest
		longKey := seqKey(alg.BlockSize() + 1)
		hashedLongKey, err := p.Sum(nil, alg, longKey)
		require.NoError(t, err)
		h3, err := New(p, alg, longKey)
		require.NoError(t, err)
		h4, err := New(p, alg, hashedLongKey)
		require.NoError(t, err)
		tag3, err := h3.Compute(msg)
		require.NoError(t, err)
		tag4, err := h4.Compute(msg)
		require.NoError(t, err)
		require.Equal(t, tag3, tag4, alg.String())
	}
}

func TestNormalizeKey(t *testing.T) {
	p := digest_std.New()
	for _, alg := range digest.Algorithms {
		for _, keyLen := range []int{0, 1, alg.BlockSize(), alg.BlockSize() + 1, 1000} {
			k, err := NormalizeKey(p, alg, seqKey(keyLen))
			require.NoError(t, err)
			require.Len(t, k, alg.BlockSize())
		}
	}
	// the empty key is the all zero block
	k, err := NormalizeKey(p, digest.SHA256, nil)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 64), k)
}

func TestEmptyKey(t *testing.T) {
	p := digest_std.New()
	h1, err := New(p, digest.SHA256, nil)
	require.NoError(t, err)
	h2, err := New(p, digest.SHA256, make([]byte, 64))
	require.NoError(t, err)
	tag1, err := h1.Compute([]byte("msg"))
	require.NoError(t, err)
	tag2, err := h2.Compute([]byte("msg"))
	require.NoError(t, err)
	require.Equal(t, tag1, tag2)
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := New(digest_std.New(), digest.Algorithm(0), []byte("key"))
	require.True(t, cryptoprim.IsErrUnknownAlgorithm(err))
}

type failingProvider struct {
	err error
	// fail after this many successful calls
	after int
}

func (p *failingProvider) Sum(out []byte, alg digest.Algorithm, parts ...[]byte) ([]byte, error) {
	if p.after <= 0 {
		return nil, cryptoprim.NewBackendError("failing", p.err)
	}
	p.after--
	return digest_std.New().Sum(out, alg, parts...)
}

func TestBackendFailure(t *testing.T) {
	cause := errors.New("device removed")

	// hashing a long key fails at construction
	_, err := New(&failingProvider{err: cause}, digest.SHA256, make([]byte, 100))
	require.True(t, cryptoprim.IsErrBackendFailure(err))
	require.ErrorIs(t, err, cause)

	// short keys need no digest until Compute
	h, err := New(&failingProvider{err: cause}, digest.SHA256, []byte("key"))
	require.NoError(t, err)
	_, err = h.Compute([]byte("msg"))
	require.True(t, cryptoprim.IsErrBackendFailure(err))
	require.ErrorIs(t, err, cause)
	require.False(t, h.Verify(make([]byte, 32), []byte("msg")))

	// the outer digest fails
	h, err = New(&failingProvider{err: cause, after: 1}, digest.SHA256, []byte("key"))
	require.NoError(t, err)
	_, err = h.Compute([]byte("msg"))
	require.True(t, cryptoprim.IsErrBackendFailure(err))
}

// plainProvider returns errors without wrapping them, and digests of any length.
type plainProvider struct {
	err error
	// length of the returned digest, when err is nil
	size int
}

func (p plainProvider) Sum(out []byte, alg digest.Algorithm, parts ...[]byte) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return append(out, make([]byte, p.size)...), nil
}

func TestUnwrappedProviderError(t *testing.T) {
	cause := errors.New("device removed")
	p := plainProvider{err: cause}

	_, err := New(p, digest.SHA256, make([]byte, 100))
	require.True(t, cryptoprim.IsErrBackendFailure(err))
	require.ErrorIs(t, err, cause)

	h, err := New(p, digest.SHA256, []byte("key"))
	require.NoError(t, err)
	_, err = h.Compute([]byte("msg"))
	require.True(t, cryptoprim.IsErrBackendFailure(err))
	require.ErrorIs(t, err, cause)
	require.False(t, h.Verify(make([]byte, 32), []byte("msg")))
}

func TestWrongDigestLength(t *testing.T) {
	for _, size := range []int{0, 31, 33, 200} {
		p := plainProvider{size: size}

		_, err := New(p, digest.SHA256, make([]byte, 100))
		require.True(t, cryptoprim.IsErrBackendFailure(err), "size %d", size)

		h, err := New(p, digest.SHA256, []byte("key"))
		require.NoError(t, err)
		tag, err := h.Compute([]byte("msg"))
		require.True(t, cryptoprim.IsErrBackendFailure(err), "size %d", size)
		require.Nil(t, tag)
		require.False(t, h.Verify(make([]byte, 32), []byte("msg")))
	}
}
