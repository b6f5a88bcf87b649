// package dhkem implements a Key Encapsulation Mechanism (kem.Scheme) in terms of a Diffie-Hellman Key Exchange (dhke.Scheme)
package dhkem

import (
	"io"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke"
	"github.com/brendoncarroll/go-cryptoprim/crypto/kdf"
	"github.com/brendoncarroll/go-cryptoprim/crypto/kem"
)

var _ kem.Scheme = Scheme{}

// Scheme derives the shared secret as HKDF(salt = ePub || pub, ikm = DH(e, pub), info = Info).
type Scheme struct {
	DH   dhke.Scheme
	KDF  kdf.HKDF
	Info string
}

func (s Scheme) Generate(rng io.Reader) (pub, priv []byte, _ error) {
	kp, err := s.DH.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}
	return kp.Public, kp.Private, nil
}

func (s Scheme) Encapsulate(ss *kem.SharedSecret, rng io.Reader, pub []byte) ([]byte, error) {
	if err := dhke.CheckPublicKey(s.DH, pub); err != nil {
		return nil, err
	}
	eph, err := s.DH.GenerateKeyPair(rng)
	if err != nil {
		return nil, err
	}
	defer dhke.Wipe(&eph)
	shared, err := s.DH.ComputeShared(eph.Private, pub)
	if err != nil {
		return nil, err
	}
	defer cryptoprim.Zero(shared)
	if err := s.derive(ss, shared, eph.Public, pub); err != nil {
		return nil, err
	}
	return eph.Public, nil
}

func (s Scheme) Decapsulate(ss *kem.SharedSecret, priv, ct []byte) error {
	if err := cryptoprim.CheckLength("ciphertext", ct, s.CiphertextSize()); err != nil {
		return err
	}
	kp, err := s.DH.DeriveKeyPair(priv)
	if err != nil {
		return err
	}
	defer dhke.Wipe(&kp)
	shared, err := s.DH.ComputeShared(priv, ct)
	if err != nil {
		return err
	}
	defer cryptoprim.Zero(shared)
	return s.derive(ss, shared, ct, kp.Public)
}

func (s Scheme) derive(ss *kem.SharedSecret, shared, ePub, pub []byte) error {
	salt := make([]byte, 0, len(ePub)+len(pub))
	salt = append(salt, ePub...)
	salt = append(salt, pub...)
	return s.KDF.Derive(ss[:], salt, shared, []byte(s.Info))
}

func (s Scheme) PublicKeySize() int {
	return s.DH.KeySize()
}

func (s Scheme) CiphertextSize() int {
	return s.DH.KeySize()
}
