package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest/digest_pkcs11"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest/digest_std"
	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult"
	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult/scalarmult_circl"
	"github.com/brendoncarroll/go-cryptoprim/crypto/scalarmult/scalarmult_xcrypto"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

var digestBackends = map[string]func() (digest.Provider, io.Closer, error){
	"std": func() (digest.Provider, io.Closer, error) {
		return digest_std.New(), nopCloser{}, nil
	},
	"pkcs11": func() (digest.Provider, io.Closer, error) {
		cfg, ok := digest_pkcs11.ConfigFromEnv()
		if !ok {
			return nil, nil, errors.Errorf("pkcs11 backend requires %s", digest_pkcs11.EnvModule)
		}
		p, err := digest_pkcs11.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	},
}

var curveBackends = map[string]func() scalarmult.Provider{
	"xcrypto": func() scalarmult.Provider { return scalarmult_xcrypto.New() },
	"circl":   func() scalarmult.Provider { return scalarmult_circl.New() },
}

func (bf *backendFlags) digestProvider() (digest.Provider, io.Closer, error) {
	mk, exists := digestBackends[bf.digest]
	if !exists {
		return nil, nil, errors.Errorf("unknown digest backend %q, want one of %s", bf.digest, joinKeys(digestBackends))
	}
	log.WithField("backend", bf.digest).Debug("digest backend selected")
	return mk()
}

func (bf *backendFlags) curveProvider() (scalarmult.Provider, error) {
	mk, exists := curveBackends[bf.curve]
	if !exists {
		return nil, errors.Errorf("unknown curve backend %q, want one of %s", bf.curve, joinKeys(curveBackends))
	}
	log.WithField("backend", bf.curve).Debug("curve backend selected")
	return mk(), nil
}

func joinKeys[V any](m map[string]V) string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}
