// package digest_std implements digest.Provider with the Go standard library.
package digest_std

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
)

var _ digest.Provider = Provider{}

type Provider struct{}

func New() Provider {
	return Provider{}
}

func (Provider) Sum(out []byte, alg digest.Algorithm, parts ...[]byte) ([]byte, error) {
	h, err := newHash(alg)
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		// hash.Hash.Write never returns an error
		h.Write(part)
	}
	return h.Sum(out), nil
}

func newHash(alg digest.Algorithm) (hash.Hash, error) {
	switch alg {
	case digest.SHA1:
		return sha1.New(), nil
	case digest.SHA256:
		return sha256.New(), nil
	case digest.SHA384:
		return sha512.New384(), nil
	case digest.SHA512:
		return sha512.New(), nil
	default:
		return nil, alg.Check()
	}
}
