// package dhke_noise adapts a dhke.Scheme to the noise.DHFunc interface from github.com/flynn/noise,
// so that handshakes use this module's key generation, validation and backends.
package dhke_noise

import (
	"io"

	"github.com/flynn/noise"

	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke"
	"github.com/brendoncarroll/go-cryptoprim/crypto/dhke/dhke_x25519"
	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult"
)

var _ noise.DHFunc = DHFunc{}

type DHFunc struct {
	Scheme dhke.Scheme
	// Name is the DH function name mixed into the Noise protocol name, e.g. "25519".
	Name string
}

// New25519 returns a DHFunc which can be used in place of noise.DH25519.
func New25519(p scalarmult.Provider) DHFunc {
	return DHFunc{Scheme: dhke_x25519.New(p), Name: "25519"}
}

// CipherSuite returns a Noise cipher suite using ChaChaPoly and SHA256 with d.
func (d DHFunc) CipherSuite() noise.CipherSuite {
	return noise.NewCipherSuite(d, noise.CipherChaChaPoly, noise.HashSHA256)
}

func (d DHFunc) GenerateKeypair(rng io.Reader) (noise.DHKey, error) {
	kp, err := d.Scheme.GenerateKeyPair(rng)
	if err != nil {
		return noise.DHKey{}, err
	}
	return noise.DHKey{Private: kp.Private, Public: kp.Public}, nil
}

func (d DHFunc) DH(priv, pub []byte) ([]byte, error) {
	return d.Scheme.ComputeShared(priv, pub)
}

func (d DHFunc) DHLen() int {
	return d.Scheme.KeySize()
}

func (d DHFunc) DHName() string {
	return d.Name
}
