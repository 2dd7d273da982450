package domain

// KeyFormat tags a private-key export encoding. Each hidden-service
// variant supports a fixed, compile-time set of formats; unknown tags are
// rejected with ErrUnsupportedFormat.
type KeyFormat string

const (
	// FormatNative is the encoding written to the private_key file:
	// PKCS#1 PEM for v2, the raw 32-byte seed for v3.
	FormatNative KeyFormat = "native"

	// FormatPEM is the PKCS#1 PEM encoding (v2 only).
	FormatPEM KeyFormat = "pem"

	// FormatDER is the PKCS#1 DER encoding (v2 only).
	FormatDER KeyFormat = "der"

	// FormatSeed is the raw 32-byte Ed25519 seed (v3 only).
	FormatSeed KeyFormat = "seed"

	// FormatExpanded is little-t-tor's ed25519v1-secret wrapper: a
	// 32-byte header followed by the 64-byte expanded key (v3 only).
	// The expansion is one-way; the seed cannot be recovered from it.
	FormatExpanded KeyFormat = "expanded"
)

// KeyMaterial wraps one scheme's private key and its derived public key.
// Implementations own their key bytes exclusively; they are never shared
// between identities.
type KeyMaterial interface {
	// Scheme reports which address generation the key belongs to.
	Scheme() Scheme

	// NativeBytes serialises the private key in the exact encoding used
	// on disk for the scheme.
	NativeBytes() ([]byte, error)

	// PublicKeyBytes returns the public key in the encoding consumed by
	// the scheme's address codec: DER SubjectPublicKeyInfo for v2, the
	// raw 32-byte key for v3.
	PublicKeyBytes() ([]byte, error)
}
