// package dhke_x25519 implements dhke.Scheme with X25519 (RFC 7748).
//
// Private keys produced by GeneratePrivateKey are clamped.
// Private keys passed to DeriveKeyPair and ComputeShared are used as given and are not re-clamped;
// use Clamp on imported key material first.
// ComputeShared rejects peer public keys of low order, which would make the shared secret all zeros.
package dhke_x25519

import (
	"crypto/subtle"
	"io"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke"
	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult"
	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult/scalarmult_xcrypto"
)

const KeySize = scalarmult.ScalarSize

var _ dhke.Scheme = Scheme{}

type Scheme struct {
	Provider scalarmult.Provider
}

// New returns a Scheme using p for scalar multiplication.
// If p is nil, golang.org/x/crypto/curve25519 is used.
func New(p scalarmult.Provider) Scheme {
	if p == nil {
		p = scalarmult_xcrypto.New()
	}
	return Scheme{Provider: p}
}

func (s Scheme) KeySize() int {
	return KeySize
}

// Clamp applies the RFC 7748 decodeScalar25519 bit fixing to priv in place.
func Clamp(priv *[KeySize]byte) {
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64
}

// IsClamped returns true if Clamp would not change priv.
func IsClamped(priv []byte) bool {
	return len(priv) == KeySize && priv[0]&7 == 0 && priv[31]&128 == 0 && priv[31]&64 == 64
}

func (s Scheme) GeneratePrivateKey(rng io.Reader) ([]byte, error) {
	var priv [KeySize]byte
	if _, err := io.ReadFull(rng, priv[:]); err != nil {
		return nil, cryptoprim.NewBackendError("rng", errors.Wrap(err, "reading private key"))
	}
	Clamp(&priv)
	return priv[:], nil
}

func (s Scheme) GenerateKeyPair(rng io.Reader) (dhke.KeyPair, error) {
	priv, err := s.GeneratePrivateKey(rng)
	if err != nil {
		return dhke.KeyPair{}, err
	}
	return s.DeriveKeyPair(priv)
}

func (s Scheme) DeriveKeyPair(priv []byte) (dhke.KeyPair, error) {
	if err := dhke.CheckPrivateKey(s, priv); err != nil {
		return dhke.KeyPair{}, err
	}
	var scalar scalarmult.Scalar
	copy(scalar[:], priv)
	defer cryptoprim.Zero(scalar[:])

	var pub scalarmult.Point
	if err := s.Provider.ScalarBaseMult(&pub, &scalar); err != nil {
		return dhke.KeyPair{}, cryptoprim.NewBackendError("scalarmult", err)
	}
	return dhke.KeyPair{
		Public:  pub[:],
		Private: append([]byte{}, priv...),
	}, nil
}

func (s Scheme) ComputeShared(priv, peerPub []byte) ([]byte, error) {
	if err := dhke.CheckPrivateKey(s, priv); err != nil {
		return nil, err
	}
	if err := dhke.CheckPublicKey(s, peerPub); err != nil {
		return nil, err
	}
	var scalar scalarmult.Scalar
	var point scalarmult.Point
	copy(scalar[:], priv)
	copy(point[:], peerPub)
	defer cryptoprim.Zero(scalar[:])

	var shared scalarmult.Point
	if err := s.Provider.ScalarMult(&shared, &scalar, &point); err != nil {
		return nil, cryptoprim.NewBackendError("scalarmult", err)
	}
	var zero scalarmult.Point
	if subtle.ConstantTimeCompare(shared[:], zero[:]) == 1 {
		return nil, cryptoprim.ErrLowOrderPoint
	}
	return shared[:], nil
}
