package address

import (
	"crypto/ed25519"
	"crypto/sha1"
	"crypto/x509"
	"encoding/asn1"
	"encoding/base32"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"onionkey/internal/domain"
)

const (
	// V2Len and V3Len are the label lengths produced per scheme.
	V2Len = 16
	V3Len = 56

	// Suffix is appended to a label to form the full address.
	Suffix = ".onion"

	// v3ChecksumPrefix and v3Version are fixed by the v3 address format.
	v3ChecksumPrefix = ".onion checksum"
	v3Version        = 0x03

	// v2DigestLen is how much of the SHA-1 digest survives truncation.
	v2DigestLen = 10
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// subjectPublicKeyInfo mirrors the outer X.509 SubjectPublicKeyInfo
// structure just enough to locate the BIT STRING payload.
type subjectPublicKeyInfo struct {
	Algorithm asn1.RawValue
	PublicKey asn1.BitString
}

// FromRSAPublicDER derives the v2 label from a DER SubjectPublicKeyInfo
// encoding of an RSA public key: SHA-1 over the embedded PKCS#1 key,
// truncated to 10 bytes, Base32, lowercased.
//
// The BIT STRING payload is located by walking the ASN.1 structure rather
// than skipping a fixed-length header, so encodings that differ from the
// usual 1024-bit shape are rejected instead of silently mis-hashed.
func FromRSAPublicDER(der []byte) (string, error) {
	var info subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil || len(rest) != 0 {
		return "", fmt.Errorf("%w: not a DER SubjectPublicKeyInfo", domain.ErrMalformedPublicKey)
	}
	if info.PublicKey.BitLength%8 != 0 {
		return "", fmt.Errorf("%w: public key BIT STRING has partial bytes", domain.ErrMalformedPublicKey)
	}

	payload := info.PublicKey.Bytes
	if _, err := x509.ParsePKCS1PublicKey(payload); err != nil {
		return "", fmt.Errorf("%w: payload is not a PKCS#1 RSA public key", domain.ErrMalformedPublicKey)
	}

	digest := sha1.Sum(payload)
	return strings.ToLower(b32.EncodeToString(digest[:v2DigestLen])), nil
}

// FromEd25519Public derives the v3 label from a raw 32-byte Ed25519
// public key: Base32 of pubkey || checksum || version, where the checksum
// is the first two bytes of SHA3-256(".onion checksum" || pubkey || 0x03).
func FromEd25519Public(pub []byte) (string, error) {
	if len(pub) != ed25519.PublicKeySize {
		return "", fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrMalformedPublicKey, ed25519.PublicKeySize, len(pub))
	}

	h := sha3.New256()
	h.Write([]byte(v3ChecksumPrefix))
	h.Write(pub)
	h.Write([]byte{v3Version})
	checksum := h.Sum(nil)[:2]

	blob := make([]byte, 0, len(pub)+3)
	blob = append(blob, pub...)
	blob = append(blob, checksum...)
	blob = append(blob, v3Version)
	return strings.ToLower(b32.EncodeToString(blob)), nil
}

// Derive dispatches to the scheme's transform.
func Derive(scheme domain.Scheme, pub []byte) (string, error) {
	switch scheme {
	case domain.SchemeV2:
		return FromRSAPublicDER(pub)
	case domain.SchemeV3:
		return FromEd25519Public(pub)
	default:
		return "", fmt.Errorf("unknown scheme %d", scheme)
	}
}
