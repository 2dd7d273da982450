package crypto_test

import (
	stded "crypto/ed25519"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"onionkey/internal/crypto"
	"onionkey/internal/domain"
)

func countingSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestGenerateEd25519(t *testing.T) {
	key, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	require.Equal(t, domain.SchemeV3, key.Scheme())

	seed := key.Seed()
	require.Len(t, seed, stded.SeedSize)

	pub, err := key.PublicKeyBytes()
	require.NoError(t, err)
	require.Len(t, pub, stded.PublicKeySize)

	// The persisted seed must carry the full identity: re-expanding it
	// with the standard derivation yields the same public key.
	reExpanded := stded.NewKeyFromSeed(seed)
	require.Equal(t, pub, []byte(reExpanded[stded.SeedSize:]))
}

func TestEd25519FromBytes_SeedRoundTrip(t *testing.T) {
	key, err := crypto.Ed25519FromBytes(countingSeed())
	require.NoError(t, err)
	require.Equal(t, countingSeed(), key.Seed())

	pub, err := key.PublicKeyBytes()
	require.NoError(t, err)
	require.Equal(t,
		"79b5562e8fe654f94078b112e8a98ba7901f853ae695bed7e0e3910bad049664",
		hex.EncodeToString(pub))
}

func TestEd25519FromBytes_AcceptsFullPrivateKey(t *testing.T) {
	priv := stded.NewKeyFromSeed(countingSeed())

	key, err := crypto.Ed25519FromBytes(priv)
	require.NoError(t, err)
	require.Equal(t, countingSeed(), key.Seed())
}

func TestEd25519FromBytes_RejectsBadInput(t *testing.T) {
	// Wrong lengths.
	for _, n := range []int{0, 16, 31, 33, 63, 65, 96} {
		_, err := crypto.Ed25519FromBytes(make([]byte, n))
		require.ErrorIs(t, err, domain.ErrInvalidKeyFormat, "length %d", n)
	}

	// 64 bytes whose public half does not match the seed.
	priv := stded.NewKeyFromSeed(countingSeed())
	corrupted := append([]byte(nil), priv...)
	corrupted[40] ^= 0xff
	_, err := crypto.Ed25519FromBytes(corrupted)
	require.ErrorIs(t, err, domain.ErrInvalidKeyFormat)
}

func TestEd25519Key_ExpandedBytes(t *testing.T) {
	key, err := crypto.Ed25519FromBytes(countingSeed())
	require.NoError(t, err)

	blob, err := key.ExpandedBytes()
	require.NoError(t, err)
	require.Len(t, blob, 96)
	require.Equal(t, "== ed25519v1-secret: type0 ==", string(blob[:29]))
	require.Equal(t, []byte{0, 0, 0}, blob[29:32])

	// The second half is the clamped SHA-512 expansion of the seed.
	want := sha512.Sum512(countingSeed())
	want[0] &= 248
	want[31] &= 63
	want[31] |= 64
	require.Equal(t, want[:], blob[32:])
}
