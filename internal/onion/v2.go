package onion

import (
	"fmt"

	"onionkey/internal/address"
	"onionkey/internal/crypto"
	"onionkey/internal/domain"
)

// v2Exporters is the static set of private-key export formats for v2.
var v2Exporters = map[domain.KeyFormat]func(*crypto.RSAKey) ([]byte, error){
	domain.FormatNative: func(k *crypto.RSAKey) ([]byte, error) { return k.PEM(), nil },
	domain.FormatPEM:    func(k *crypto.RSAKey) ([]byte, error) { return k.PEM(), nil },
	domain.FormatDER:    func(k *crypto.RSAKey) ([]byte, error) { return k.DER(), nil },
}

// V2 is the RSA-1024 hidden-service identity.
type V2 struct {
	key        *crypto.RSAKey
	store      domain.KeyStore
	serviceDir string
}

// NewV2 constructs a v2 identity. Both arguments are optional: with no
// key and no directory a fresh key pair is generated.
func NewV2(privateKey []byte, serviceDir string) (*V2, error) {
	v := &V2{store: newStore(), serviceDir: serviceDir}

	raw, err := resolveKeyBytes(v.store, privateKey, serviceDir)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		v.key, err = crypto.RSAFromPEM(raw)
	} else {
		v.key, err = crypto.GenerateRSA()
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Scheme reports the fixed address generation.
func (v *V2) Scheme() domain.Scheme { return domain.SchemeV2 }

// Version is the numeric protocol version.
func (v *V2) Version() int { return domain.SchemeV2.Version() }

// PublicKeyBytes returns the DER SubjectPublicKeyInfo public key.
func (v *V2) PublicKeyBytes() ([]byte, error) { return v.key.PublicKeyBytes() }

// OnionAddress returns the 16-character label with the .onion suffix.
func (v *V2) OnionAddress() (string, error) {
	pub, err := v.key.PublicKeyBytes()
	if err != nil {
		return "", err
	}
	label, err := address.FromRSAPublicDER(pub)
	if err != nil {
		return "", err
	}
	return label + address.Suffix, nil
}

// PrivateKey exports the private key in the requested format.
func (v *V2) PrivateKey(format domain.KeyFormat) ([]byte, error) {
	export, ok := v2Exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q for v2", domain.ErrUnsupportedFormat, format)
	}
	return export(v.key)
}

// WriteServiceDir persists private_key and hostname into dir, or the
// bound directory when dir is empty.
func (v *V2) WriteServiceDir(dir string, force bool) error {
	addr, err := v.OnionAddress()
	if err != nil {
		return err
	}
	return writeServiceDir(v.store, v.key, addr, dir, v.serviceDir, force)
}

var _ domain.HiddenService = (*V2)(nil)
