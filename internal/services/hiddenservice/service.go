package hiddenservice

import (
	"errors"

	"github.com/sirupsen/logrus"

	"onionkey/internal/domain"
	"onionkey/internal/onion"
)

// Service provisions and inspects hidden-service directories.
type Service struct {
	store domain.KeyStore
}

// New returns a service backed by the given store.
func New(ks domain.KeyStore) *Service { return &Service{store: ks} }

// Provision ensures dir holds a coherent key pair for the scheme and
// returns the identity plus its address. An existing key is reused and
// left untouched unless force is set; an empty directory gets a freshly
// generated key written to it.
func (s *Service) Provision(scheme domain.Scheme, dir string, force bool) (domain.HiddenService, string, error) {
	_, err := s.store.Load(dir)
	hadKey := err == nil
	if err != nil && !errors.Is(err, domain.ErrEmptyDirectory) {
		return nil, "", err
	}

	var hs domain.HiddenService
	if hadKey && !force {
		hs, err = onion.New(scheme, nil, dir)
		if err != nil {
			return nil, "", err
		}
	} else {
		// A forced provision must rotate, so the fresh key is generated
		// unbound rather than loaded back out of the directory.
		hs, err = onion.New(scheme, nil, "")
		if err != nil {
			return nil, "", err
		}
		if err := hs.WriteServiceDir(dir, force); err != nil {
			return nil, "", err
		}
	}

	addr, err := hs.OnionAddress()
	if err != nil {
		return nil, "", err
	}
	logrus.WithFields(logrus.Fields{
		"scheme":  scheme.String(),
		"dir":     dir,
		"address": addr,
		"reused":  hadKey && !force,
	}).Info("provisioned hidden service")
	return hs, addr, nil
}

// Address derives the onion address of the key stored in dir. Unlike
// Provision it never generates: an empty directory is surfaced as
// ErrEmptyDirectory.
func (s *Service) Address(scheme domain.Scheme, dir string) (string, error) {
	raw, err := s.store.Load(dir)
	if err != nil {
		return "", err
	}
	hs, err := onion.New(scheme, raw, "")
	if err != nil {
		return "", err
	}
	return hs.OnionAddress()
}

// ExportKey returns the private key stored in dir in the requested
// format.
func (s *Service) ExportKey(scheme domain.Scheme, dir string, format domain.KeyFormat) ([]byte, error) {
	raw, err := s.store.Load(dir)
	if err != nil {
		return nil, err
	}
	hs, err := onion.New(scheme, raw, "")
	if err != nil {
		return nil, err
	}
	return hs.PrivateKey(format)
}
