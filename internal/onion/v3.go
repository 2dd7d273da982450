package onion

import (
	"fmt"

	"onionkey/internal/address"
	"onionkey/internal/crypto"
	"onionkey/internal/domain"
)

// v3Exporters is the static set of private-key export formats for v3.
var v3Exporters = map[domain.KeyFormat]func(*crypto.Ed25519Key) ([]byte, error){
	domain.FormatNative:   func(k *crypto.Ed25519Key) ([]byte, error) { return k.Seed(), nil },
	domain.FormatSeed:     func(k *crypto.Ed25519Key) ([]byte, error) { return k.Seed(), nil },
	domain.FormatExpanded: func(k *crypto.Ed25519Key) ([]byte, error) { return k.ExpandedBytes() },
}

// V3 is the Ed25519 hidden-service identity.
type V3 struct {
	key        *crypto.Ed25519Key
	store      domain.KeyStore
	serviceDir string
}

// NewV3 constructs a v3 identity. Both arguments are optional: with no
// key and no directory a fresh key pair is generated.
func NewV3(privateKey []byte, serviceDir string) (*V3, error) {
	v := &V3{store: newStore(), serviceDir: serviceDir}

	raw, err := resolveKeyBytes(v.store, privateKey, serviceDir)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		v.key, err = crypto.Ed25519FromBytes(raw)
	} else {
		v.key, err = crypto.GenerateEd25519()
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Scheme reports the fixed address generation.
func (v *V3) Scheme() domain.Scheme { return domain.SchemeV3 }

// Version is the numeric protocol version.
func (v *V3) Version() int { return domain.SchemeV3.Version() }

// PublicKeyBytes returns the raw 32-byte Ed25519 public key.
func (v *V3) PublicKeyBytes() ([]byte, error) { return v.key.PublicKeyBytes() }

// OnionAddress returns the 56-character label with the .onion suffix.
func (v *V3) OnionAddress() (string, error) {
	pub, err := v.key.PublicKeyBytes()
	if err != nil {
		return "", err
	}
	label, err := address.FromEd25519Public(pub)
	if err != nil {
		return "", err
	}
	return label + address.Suffix, nil
}

// PrivateKey exports the private key in the requested format.
func (v *V3) PrivateKey(format domain.KeyFormat) ([]byte, error) {
	export, ok := v3Exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q for v3", domain.ErrUnsupportedFormat, format)
	}
	return export(v.key)
}

// WriteServiceDir persists private_key and hostname into dir, or the
// bound directory when dir is empty.
func (v *V3) WriteServiceDir(dir string, force bool) error {
	addr, err := v.OnionAddress()
	if err != nil {
		return err
	}
	return writeServiceDir(v.store, v.key, addr, dir, v.serviceDir, force)
}

var _ domain.HiddenService = (*V3)(nil)
