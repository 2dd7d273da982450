// Package crypto implements the key material backing both hidden-service
// generations: RSA-1024 for v2 and Ed25519 for v3. Each type owns its key
// bytes, serialises to the scheme's native on-disk encoding, and derives
// the public key form consumed by the address codec.
package crypto
