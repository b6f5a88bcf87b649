// package scalarmult_circl implements scalarmult.Provider with github.com/cloudflare/circl/dh/x25519.
package scalarmult_circl

import (
	"github.com/cloudflare/circl/dh/x25519"

	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult"
)

var _ scalarmult.Provider = Provider{}

type Provider struct{}

func New() Provider {
	return Provider{}
}

func (Provider) ScalarMult(dst *scalarmult.Point, scalar *scalarmult.Scalar, point *scalarmult.Point) error {
	var out x25519.Key
	// Shared reports false for low order points; out is then all zeros, which is what we return.
	x25519.Shared(&out, (*x25519.Key)(scalar), (*x25519.Key)(point))
	*dst = out
	return nil
}

func (Provider) ScalarBaseMult(dst *scalarmult.Point, scalar *scalarmult.Scalar) error {
	var out x25519.Key
	x25519.KeyGen(&out, (*x25519.Key)(scalar))
	*dst = out
	return nil
}
