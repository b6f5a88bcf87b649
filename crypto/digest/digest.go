// package digest provides an interface for fixed output hash functions, and the set of algorithms they are selected by.
package digest

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-cryptoprim"
)

type Algorithm uint8

const (
	SHA1 Algorithm = iota + 1
	SHA256
	SHA384
	SHA512
)

// Algorithms lists every supported Algorithm.
var Algorithms = []Algorithm{SHA1, SHA256, SHA384, SHA512}

// BlockSize is the number of bytes consumed by each step of the compression function.
func (a Algorithm) BlockSize() int {
	switch a {
	case SHA1, SHA256:
		return 64
	case SHA384, SHA512:
		return 128
	default:
		return 0
	}
}

// OutputSize is the size of a digest in bytes.
func (a Algorithm) OutputSize() int {
	switch a {
	case SHA1:
		return 20
	case SHA256:
		return 32
	case SHA384:
		return 48
	case SHA512:
		return 64
	default:
		return 0
	}
}

func (a Algorithm) Valid() bool {
	return a.BlockSize() > 0
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

// Check returns an error wrapping cryptoprim.ErrUnknownAlgorithm if a is not supported.
func (a Algorithm) Check() error {
	if !a.Valid() {
		return errors.Wrapf(cryptoprim.ErrUnknownAlgorithm, "digest algorithm %d", uint8(a))
	}
	return nil
}

// ParseAlgorithm accepts the names returned by Algorithm.String, ignoring case and dashes.
func ParseAlgorithm(x string) (Algorithm, error) {
	name := strings.ReplaceAll(strings.ToLower(x), "-", "")
	for _, a := range Algorithms {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, errors.Wrapf(cryptoprim.ErrUnknownAlgorithm, "digest algorithm %q", x)
}

// Provider computes digests for a set of Algorithms.
type Provider interface {
	// Sum appends the digest of the concatenation of parts to out and returns the result.
	// Sum must be deterministic and must not retain any of its inputs.
	Sum(out []byte, alg Algorithm, parts ...[]byte) ([]byte, error)
}
