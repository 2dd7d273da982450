package onion

import (
	"errors"
	"fmt"

	"onionkey/internal/domain"
	"onionkey/internal/store"
)

// New constructs the identity variant for scheme. privateKey and
// serviceDir are both optional; see the package comment for precedence.
func New(scheme domain.Scheme, privateKey []byte, serviceDir string) (domain.HiddenService, error) {
	switch scheme {
	case domain.SchemeV2:
		return NewV2(privateKey, serviceDir)
	case domain.SchemeV3:
		return NewV3(privateKey, serviceDir)
	default:
		return nil, fmt.Errorf("unknown scheme %d", scheme)
	}
}

// resolveKeyBytes applies the construction precedence and returns the
// private key bytes to parse, or nil when a fresh key must be generated.
func resolveKeyBytes(ks domain.KeyStore, explicit []byte, serviceDir string) ([]byte, error) {
	var raw []byte
	if serviceDir != "" {
		loaded, err := ks.Load(serviceDir)
		if err != nil && !errors.Is(err, domain.ErrEmptyDirectory) {
			return nil, err
		}
		raw = loaded
	}
	// An explicit key wins over directory contents.
	if len(explicit) > 0 {
		raw = explicit
	}
	return raw, nil
}

// writeServiceDir persists key material through the store, falling back
// to the identity's bound directory when dir is empty.
func writeServiceDir(ks domain.KeyStore, key domain.KeyMaterial, address, dir, boundDir string, force bool) error {
	if dir == "" {
		dir = boundDir
	}
	if dir == "" {
		return domain.ErrMissingPath
	}
	native, err := key.NativeBytes()
	if err != nil {
		return err
	}
	return ks.Write(dir, native, address, force)
}

// newStore is the default KeyStore binding for both variants.
func newStore() domain.KeyStore { return store.New() }
