// package dhke provides an interface for Diffie-Hellman Key Exchanges
package dhke

import (
	"io"

	"github.com/brendoncarroll/go-cryptoprim"
)

// KeyPair is a private key and the public key derived from it.
// Both are exactly Scheme.KeySize() bytes.
type KeyPair struct {
	Public  []byte
	Private []byte
}

type Scheme interface {
	// KeySize is the size of both private and public keys.
	KeySize() int

	// GeneratePrivateKey reads a new private key from rng, and applies any transformation
	// the scheme requires before the key is used.
	GeneratePrivateKey(rng io.Reader) ([]byte, error)
	// GenerateKeyPair generates a private key and derives its public key.
	GenerateKeyPair(rng io.Reader) (KeyPair, error)
	// DeriveKeyPair derives the public key for priv.
	// priv must be KeySize() bytes.
	DeriveKeyPair(priv []byte) (KeyPair, error)

	// ComputeShared computes the shared secret between priv and the peer's public key.
	// The result is not uniformly random and should be passed through a key derivation function.
	ComputeShared(priv, peerPub []byte) ([]byte, error)
}

// CheckPrivateKey returns an error if priv is not a valid length for s.
func CheckPrivateKey(s Scheme, priv []byte) error {
	return cryptoprim.CheckLength("private key", priv, s.KeySize())
}

// CheckPublicKey returns an error if pub is not a valid length for s.
func CheckPublicKey(s Scheme, pub []byte) error {
	return cryptoprim.CheckLength("public key", pub, s.KeySize())
}

// Wipe zeros the private key in kp.
func Wipe(kp *KeyPair) {
	cryptoprim.Zero(kp.Private)
}
