package scalarmult_xcrypto

import (
	"testing"

	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult"
)

func TestXCrypto(t *testing.T) {
	scalarmult.TestProvider(t, New())
}
