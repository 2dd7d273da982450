package crypto

import (
	"bytes"
	stded "crypto/ed25519"
	"fmt"

	torkey "github.com/cretz/bine/torutil/ed25519"

	"onionkey/internal/domain"
)

// expandedSecretHeader is little-t-tor's hs_ed25519_secret_key magic,
// padded with NULs to 32 bytes.
var expandedSecretHeader = append([]byte("== ed25519v1-secret: type0 =="), 0, 0, 0)

// Ed25519Key is the v3 key material. Its native on-disk encoding is the
// raw 32-byte seed.
//
// The standard seed-based key is authoritative; the bine key pair is kept
// alongside it because bine's private form is Tor's expanded layout
// (clamped scalar then PRF key), which the expanded export needs.
type Ed25519Key struct {
	priv stded.PrivateKey
	kp   torkey.KeyPair
}

func newEd25519Key(priv stded.PrivateKey) *Ed25519Key {
	return &Ed25519Key{priv: priv, kp: torkey.FromCryptoPrivateKey(priv)}
}

// GenerateEd25519 creates a fresh Ed25519 key pair from the process's
// secure random source.
func GenerateEd25519() (*Ed25519Key, error) {
	_, priv, err := stded.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: ed25519: %v", domain.ErrKeyGeneration, err)
	}
	return newEd25519Key(priv), nil
}

// Ed25519FromBytes accepts the on-disk private key shapes: the raw
// 32-byte seed (native) or the 64-byte seed-plus-public form.
func Ed25519FromBytes(data []byte) (*Ed25519Key, error) {
	switch len(data) {
	case stded.SeedSize:
		return newEd25519Key(stded.NewKeyFromSeed(data)), nil
	case stded.PrivateKeySize:
		priv := stded.NewKeyFromSeed(data[:stded.SeedSize])
		if !bytes.Equal(priv, data) {
			return nil, fmt.Errorf("%w: public half does not match seed", domain.ErrInvalidKeyFormat)
		}
		return newEd25519Key(priv), nil
	default:
		return nil, fmt.Errorf("%w: want %d or %d bytes, got %d",
			domain.ErrInvalidKeyFormat, stded.SeedSize, stded.PrivateKeySize, len(data))
	}
}

// Scheme reports the address generation this key belongs to.
func (k *Ed25519Key) Scheme() domain.Scheme { return domain.SchemeV3 }

// Seed returns a copy of the 32-byte seed.
func (k *Ed25519Key) Seed() []byte {
	out := make([]byte, stded.SeedSize)
	copy(out, k.priv.Seed())
	return out
}

// NativeBytes returns the raw seed written to private_key.
func (k *Ed25519Key) NativeBytes() ([]byte, error) { return k.Seed(), nil }

// PublicKeyBytes returns the raw 32-byte public key.
func (k *Ed25519Key) PublicKeyBytes() ([]byte, error) {
	pub, ok := k.priv.Public().(stded.PublicKey)
	if !ok || len(pub) != stded.PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key", domain.ErrMalformedPublicKey)
	}
	out := make([]byte, stded.PublicKeySize)
	copy(out, pub)
	return out, nil
}

// ExpandedBytes serialises the key as little-t-tor's ed25519v1-secret
// blob: the 32-byte header followed by the 64-byte expanded key. bine's
// private form is exactly that expansion. The transform is one-way; the
// seed cannot be recovered from it.
func (k *Ed25519Key) ExpandedBytes() ([]byte, error) {
	expanded := k.kp.PrivateKey()
	if len(expanded) != 64 {
		return nil, fmt.Errorf("expanded ed25519 key is %d bytes", len(expanded))
	}
	out := make([]byte, 0, len(expandedSecretHeader)+len(expanded))
	out = append(out, expandedSecretHeader...)
	out = append(out, expanded...)
	return out, nil
}

var _ domain.KeyMaterial = (*Ed25519Key)(nil)
