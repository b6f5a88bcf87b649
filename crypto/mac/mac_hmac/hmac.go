// package mac_hmac implements HMAC (RFC 2104) generically over a digest.Provider.
package mac_hmac

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
	"github.com/brendoncarroll/go-cryptoprim/crypto/mac"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

var log = cryptoprim.Logger

var _ mac.Scheme = &HMAC{}

// HMAC is safe for concurrent use; nothing is written after New returns.
type HMAC struct {
	p    digest.Provider
	alg  digest.Algorithm
	ipad []byte
	opad []byte
}

// New creates an HMAC with key.
// Keys longer than the block size of alg are hashed first, shorter keys are zero padded.
// Any key length is accepted, including zero.
func New(p digest.Provider, alg digest.Algorithm, key []byte) (*HMAC, error) {
	if err := alg.Check(); err != nil {
		return nil, err
	}
	k, err := NormalizeKey(p, alg, key)
	if err != nil {
		return nil, err
	}
	defer cryptoprim.Zero(k)
	h := &HMAC{
		p:    p,
		alg:  alg,
		ipad: make([]byte, len(k)),
		opad: make([]byte, len(k)),
	}
	for i := range k {
		h.ipad[i] = k[i] ^ ipadByte
		h.opad[i] = k[i] ^ opadByte
	}
	return h, nil
}

// NormalizeKey returns K', the key hashed if it is longer than alg.BlockSize(),
// then padded with zeros to exactly alg.BlockSize() bytes.
func NormalizeKey(p digest.Provider, alg digest.Algorithm, key []byte) ([]byte, error) {
	if err := alg.Check(); err != nil {
		return nil, err
	}
	k := make([]byte, 0, alg.BlockSize())
	if len(key) > alg.BlockSize() {
		var err error
		if k, err = sum(p, k, alg, key); err != nil {
			return nil, err
		}
	} else {
		k = append(k, key...)
	}
	return append(k, make([]byte, alg.BlockSize()-len(k))...), nil
}

// Compute returns H(opad || H(ipad || msg)).
func (h *HMAC) Compute(msg []byte) ([]byte, error) {
	inner, err := sum(h.p, make([]byte, 0, h.alg.OutputSize()), h.alg, h.ipad, msg)
	if err != nil {
		return nil, err
	}
	defer cryptoprim.Zero(inner)
	return sum(h.p, nil, h.alg, h.opad, inner)
}

func (h *HMAC) Verify(tag, msg []byte) bool {
	if len(tag) != h.Size() {
		return false
	}
	expected, err := h.Compute(msg)
	if err != nil {
		log.WithError(err).
			WithField("algorithm", h.alg.String()).
			WithFields(cryptoprim.SizeFields("msg", msg)).
			Warn("hmac: verify failed to compute tag")
		return false
	}
	return subtle.ConstantTimeCompare(expected, tag) == 1
}

func (h *HMAC) Size() int {
	return h.alg.OutputSize()
}

func (h *HMAC) Algorithm() digest.Algorithm {
	return h.alg
}

// sum appends the digest of parts to out.
// Provider errors are reported as backend failures, as is a digest of the wrong length.
func sum(p digest.Provider, out []byte, alg digest.Algorithm, parts ...[]byte) ([]byte, error) {
	n := len(out)
	out, err := p.Sum(out, alg, parts...)
	if err != nil {
		if cryptoprim.IsErrBackendFailure(err) {
			return nil, err
		}
		return nil, cryptoprim.NewBackendError("digest", err)
	}
	if len(out)-n != alg.OutputSize() {
		return nil, cryptoprim.NewBackendError("digest", errors.Errorf("%v digest: HAVE %d WANT %d", alg, len(out)-n, alg.OutputSize()))
	}
	return out, nil
}
