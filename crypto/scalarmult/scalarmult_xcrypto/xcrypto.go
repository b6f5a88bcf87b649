// package scalarmult_xcrypto implements scalarmult.Provider with golang.org/x/crypto/curve25519.
package scalarmult_xcrypto

import (
	"golang.org/x/crypto/curve25519"

	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult"
)

var _ scalarmult.Provider = Provider{}

type Provider struct{}

func New() Provider {
	return Provider{}
}

func (Provider) ScalarMult(dst *scalarmult.Point, scalar *scalarmult.Scalar, point *scalarmult.Point) error {
	out, err := curve25519.X25519(scalar[:], point[:])
	if err != nil {
		// With correctly sized inputs X25519 only fails when the output is all zeros,
		// which is the RFC 7748 result for a low order point.
		*dst = scalarmult.Point{}
		return nil
	}
	copy(dst[:], out)
	return nil
}

func (Provider) ScalarBaseMult(dst *scalarmult.Point, scalar *scalarmult.Scalar) error {
	out, err := curve25519.X25519(scalar[:], curve25519.Basepoint)
	if err != nil {
		return err
	}
	copy(dst[:], out)
	return nil
}
