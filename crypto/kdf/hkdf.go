// package kdf implements HKDF (RFC 5869) on top of mac_hmac, so that it runs on any digest.Provider.
package kdf

import (
	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
	"github.com/brendoncarroll/go-cryptoprim/crypto/mac/mac_hmac"
)

type HKDF struct {
	Provider  digest.Provider
	Algorithm digest.Algorithm
}

func New(p digest.Provider, alg digest.Algorithm) HKDF {
	return HKDF{Provider: p, Algorithm: alg}
}

// MaxLength is the largest output Expand can produce.
func (k HKDF) MaxLength() int {
	return 255 * k.Algorithm.OutputSize()
}

// Extract returns a pseudorandom key from the input keying material ikm.
// An empty salt is replaced by OutputSize() zero bytes.
func (k HKDF) Extract(salt, ikm []byte) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, k.Algorithm.OutputSize())
	}
	h, err := mac_hmac.New(k.Provider, k.Algorithm, salt)
	if err != nil {
		return nil, err
	}
	return h.Compute(ikm)
}

// Expand fills out with output keying material derived from prk and info.
func (k HKDF) Expand(out, prk, info []byte) error {
	if len(out) > k.MaxLength() {
		return errors.Wrapf(cryptoprim.ErrInvalidInputLength, "hkdf output: HAVE %d MAX %d", len(out), k.MaxLength())
	}
	h, err := mac_hmac.New(k.Provider, k.Algorithm, prk)
	if err != nil {
		return err
	}
	var t []byte
	buf := make([]byte, 0, k.Algorithm.OutputSize()+len(info)+1)
	for i, n := 1, 0; n < len(out); i++ {
		buf = append(buf[:0], t...)
		buf = append(buf, info...)
		buf = append(buf, byte(i))
		cryptoprim.Zero(t)
		if t, err = h.Compute(buf); err != nil {
			return err
		}
		n += copy(out[n:], t)
	}
	cryptoprim.Zero(t)
	cryptoprim.Zero(buf)
	return nil
}

// Derive runs Extract then Expand.
func (k HKDF) Derive(out, salt, ikm, info []byte) error {
	prk, err := k.Extract(salt, ikm)
	if err != nil {
		return err
	}
	defer cryptoprim.Zero(prk)
	return k.Expand(out, prk, info)
}
