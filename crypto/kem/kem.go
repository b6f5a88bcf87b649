package kem

import (
	"io"
)

const SharedSecretSize = 32

type SharedSecret = [SharedSecretSize]byte

type Scheme interface {
	// Generate creates a new public/private key pair using entropy from rng.
	Generate(rng io.Reader) (pub, priv []byte, err error)

	// Encapsulate writes a shared secret to ss, and returns a ciphertext which can
	// be decapsulated by the private key for pub.
	// The shared secret written to ss will be uniformly random.
	Encapsulate(ss *SharedSecret, rng io.Reader, pub []byte) (ct []byte, err error)
	// Decapsulate uses priv to recover the shared secret from ct, and writes it to ss.
	// If ct is not CiphertextSize() bytes, Decapsulate returns an error.
	Decapsulate(ss *SharedSecret, priv, ct []byte) error

	PublicKeySize() int
	CiphertextSize() int
}
