// Package digest_pkcs11 implements digest.Provider by delegating to a PKCS#11 token,
// for example an HSM, a platform crypto service, or SoftHSM2 for testing.
//
// A Provider holds a single session on the selected token.
// PKCS#11 sessions are not safe for concurrent use, so calls to Sum are serialized.
package digest_pkcs11

import (
	"os"
	"sync"

	"github.com/miekg/pkcs11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/brendoncarroll/go-cryptoprim"
	"github.com/brendoncarroll/go-cryptoprim/crypto/digest"
)

const backendName = "pkcs11"

const (
	EnvModule = "CRYPTOPRIM_PKCS11_MODULE"
	EnvToken  = "CRYPTOPRIM_PKCS11_TOKEN"
	EnvPin    = "CRYPTOPRIM_PKCS11_PIN"
)

var log = cryptoprim.Logger

// Config selects the PKCS#11 module and token.
type Config struct {
	// Module is the path to the PKCS#11 shared library.
	//   Example: "/usr/lib/softhsm/libsofthsm2.so"
	Module string
	// TokenLabel selects the slot by token label. If empty the first slot with a token is used.
	TokenLabel string
	// Pin is the user pin. Digesting does not usually require a login, so it may be empty.
	Pin string
}

// ConfigFromEnv reads a Config from the CRYPTOPRIM_PKCS11_* environment variables.
// ok is false if no module is configured.
func ConfigFromEnv() (cfg Config, ok bool) {
	cfg = Config{
		Module:     os.Getenv(EnvModule),
		TokenLabel: os.Getenv(EnvToken),
		Pin:        os.Getenv(EnvPin),
	}
	return cfg, cfg.Module != ""
}

var _ digest.Provider = &Provider{}

type Provider struct {
	cfg  Config
	ctx  *pkcs11.Ctx
	slot uint

	mu      sync.Mutex
	session pkcs11.SessionHandle
	open    bool
}

// New loads the module, selects a slot and opens a session.
func New(cfg Config) (*Provider, error) {
	ctx := pkcs11.New(cfg.Module)
	if ctx == nil {
		return nil, cryptoprim.NewBackendError(backendName, errors.Errorf("could not load module %q", cfg.Module))
	}
	if err := ctx.Initialize(); err != nil {
		ctx.Destroy()
		return nil, cryptoprim.NewBackendError(backendName, errors.Wrap(err, "initialize"))
	}
	p := &Provider{cfg: cfg, ctx: ctx}
	if err := p.selectSlot(); err != nil {
		p.finalize()
		return nil, err
	}
	if err := p.checkMechanisms(); err != nil {
		p.finalize()
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureSession(); err != nil {
		p.finalize()
		return nil, err
	}
	return p, nil
}

func (p *Provider) Sum(out []byte, alg digest.Algorithm, parts ...[]byte) ([]byte, error) {
	mech, err := mechanism(alg)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureSession(); err != nil {
		return nil, err
	}
	sum, err := p.digest(mech, parts)
	if err != nil {
		// an aborted operation can leave the session unusable
		p.closeSession()
		return nil, cryptoprim.NewBackendError(backendName, err)
	}
	if len(sum) != alg.OutputSize() {
		return nil, cryptoprim.NewBackendError(backendName, errors.Errorf("%v digest has length %d", alg, len(sum)))
	}
	return append(out, sum...), nil
}

// Close closes the session and unloads the module.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeSession()
	return p.finalize()
}

func (p *Provider) digest(mech uint, parts [][]byte) ([]byte, error) {
	if err := p.ctx.DigestInit(p.session, []*pkcs11.Mechanism{pkcs11.NewMechanism(mech, nil)}); err != nil {
		return nil, errors.Wrap(err, "digest init")
	}
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		if err := p.ctx.DigestUpdate(p.session, part); err != nil {
			return nil, errors.Wrap(err, "digest update")
		}
	}
	sum, err := p.ctx.DigestFinal(p.session)
	if err != nil {
		return nil, errors.Wrap(err, "digest final")
	}
	return sum, nil
}

func (p *Provider) selectSlot() error {
	slots, err := p.ctx.GetSlotList(true)
	if err != nil {
		return cryptoprim.NewBackendError(backendName, errors.Wrap(err, "listing slots"))
	}
	for _, slot := range slots {
		if p.cfg.TokenLabel == "" {
			p.slot = slot
			return nil
		}
		info, err := p.ctx.GetTokenInfo(slot)
		if err != nil {
			return cryptoprim.NewBackendError(backendName, errors.Wrapf(err, "token info for slot %d", slot))
		}
		if info.Label == p.cfg.TokenLabel {
			p.slot = slot
			return nil
		}
	}
	return cryptoprim.NewBackendError(backendName, errors.Errorf("no slot with token %q", p.cfg.TokenLabel))
}

func (p *Provider) checkMechanisms() error {
	supported, err := p.ctx.GetMechanismList(p.slot)
	if err != nil {
		return cryptoprim.NewBackendError(backendName, errors.Wrap(err, "listing mechanisms"))
	}
	for _, alg := range digest.Algorithms {
		mech, _ := mechanism(alg)
		found := false
		for _, m := range supported {
			if m.Mechanism == mech {
				found = true
				break
			}
		}
		if !found {
			log.WithFields(logrus.Fields{"slot": p.slot, "algorithm": alg.String()}).Warn("pkcs11: mechanism not supported")
		}
	}
	return nil
}

// ensureSession must be called with mu held.
func (p *Provider) ensureSession() error {
	if p.open {
		return nil
	}
	session, err := p.ctx.OpenSession(p.slot, pkcs11.CKF_SERIAL_SESSION)
	if err != nil {
		return cryptoprim.NewBackendError(backendName, errors.Wrap(err, "open session"))
	}
	if p.cfg.Pin != "" {
		err := p.ctx.Login(session, pkcs11.CKU_USER, p.cfg.Pin)
		if err != nil && !errors.Is(err, pkcs11.Error(pkcs11.CKR_USER_ALREADY_LOGGED_IN)) {
			if err2 := p.ctx.CloseSession(session); err2 != nil {
				log.WithError(err2).Warn("pkcs11: close session failed")
			}
			return cryptoprim.NewBackendError(backendName, errors.Wrap(err, "login"))
		}
	}
	log.WithFields(logrus.Fields{"slot": p.slot, "session": session}).Debug("pkcs11: session opened")
	p.session = session
	p.open = true
	return nil
}

// closeSession must be called with mu held.
func (p *Provider) closeSession() {
	if !p.open {
		return
	}
	if err := p.ctx.CloseSession(p.session); err != nil {
		log.WithError(err).WithField("session", p.session).Warn("pkcs11: close session failed")
	}
	p.open = false
}

func (p *Provider) finalize() error {
	err := p.ctx.Finalize()
	if err != nil {
		log.WithError(err).Warn("pkcs11: finalize failed")
	}
	p.ctx.Destroy()
	return err
}

func mechanism(alg digest.Algorithm) (uint, error) {
	switch alg {
	case digest.SHA1:
		return pkcs11.CKM_SHA_1, nil
	case digest.SHA256:
		return pkcs11.CKM_SHA256, nil
	case digest.SHA384:
		return pkcs11.CKM_SHA384, nil
	case digest.SHA512:
		return pkcs11.CKM_SHA512, nil
	default:
		return 0, alg.Check()
	}
}
