package crypto

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"onionkey/internal/domain"
)

// rsaKeyBits is fixed by the v2 hidden-service protocol.
const rsaKeyBits = 1024

const rsaPEMType = "RSA PRIVATE KEY"

// RSAKey is the v2 key material: an RSA-1024 key pair whose native on-disk
// encoding is a PKCS#1 PEM block.
type RSAKey struct {
	priv *rsa.PrivateKey

	// cached DER SubjectPublicKeyInfo
	pubDER []byte
}

// GenerateRSA creates a fresh RSA-1024 key pair from the process's secure
// random source.
func GenerateRSA() (*RSAKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: rsa: %v", domain.ErrKeyGeneration, err)
	}
	return &RSAKey{priv: priv}, nil
}

// RSAFromPEM parses a PEM-encoded RSA private key. Both PKCS#1 and PKCS#8
// blocks are accepted; anything else fails with ErrInvalidKeyFormat.
func RSAFromPEM(data []byte) (*RSAKey, error) {
	block, _ := pem.Decode(bytes.TrimSpace(data))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", domain.ErrInvalidKeyFormat)
	}

	priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		parsed, err8 := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err8 != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: PKCS#8 block does not hold an RSA key", domain.ErrInvalidKeyFormat)
		}
		priv = rsaKey
	}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
	}
	Zero(block.Bytes)
	return &RSAKey{priv: priv}, nil
}

// Scheme reports the address generation this key belongs to.
func (k *RSAKey) Scheme() domain.Scheme { return domain.SchemeV2 }

// NativeBytes returns the PKCS#1 PEM encoding written to private_key.
func (k *RSAKey) NativeBytes() ([]byte, error) { return k.PEM(), nil }

// PEM returns the private key as a PKCS#1 PEM block.
func (k *RSAKey) PEM() []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  rsaPEMType,
		Bytes: x509.MarshalPKCS1PrivateKey(k.priv),
	})
}

// DER returns the private key as PKCS#1 DER.
func (k *RSAKey) DER() []byte {
	return x509.MarshalPKCS1PrivateKey(k.priv)
}

// PublicKeyBytes returns the DER SubjectPublicKeyInfo encoding of the
// public key, the form the v2 address transform operates on.
func (k *RSAKey) PublicKeyBytes() ([]byte, error) {
	if k.pubDER == nil {
		der, err := x509.MarshalPKIXPublicKey(&k.priv.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("marshal rsa public key: %w", err)
		}
		k.pubDER = der
	}
	return k.pubDER, nil
}

var _ domain.KeyMaterial = (*RSAKey)(nil)
