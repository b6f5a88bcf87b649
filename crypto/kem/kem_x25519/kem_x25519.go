package kem_x25519

import (
	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke/dhke_x25519"
	"github.com/brendoncarroll/go-cryptoprim/crypto/dhkem"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest/digest_std"
	"github.com/brendoncarroll/go-cryptoprim/crypto/kdf"
)

const Info = "cryptoprim/kem_x25519/hkdf-sha256"

// New returns a KEM using X25519 and HKDF-SHA256 on the default backends.
func New() dhkem.Scheme {
	return dhkem.Scheme{
		DH:   dhke_x25519.New(nil),
		KDF:  kdf.New(digest_std.New(), digest.SHA256),
		Info: Info,
	}
}
