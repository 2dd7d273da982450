package onion_test

import (
	stded "crypto/ed25519"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"onionkey/internal/address"
	"onionkey/internal/domain"
	"onionkey/internal/onion"
	"onionkey/internal/store"
)

const v3TestSeedAddress = "pg2vmlup4zkpsqdywejorkmlu6ib7bj242k35v7a4oiqxlieszspudyd.onion"

var v3AddressPattern = regexp.MustCompile(`^[a-z2-7]{56}\.onion$`)

func v3TestSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestV3_KnownVector(t *testing.T) {
	hs, err := onion.NewV3(v3TestSeed(), "")
	require.NoError(t, err)

	addr, err := hs.OnionAddress()
	require.NoError(t, err)
	require.Equal(t, v3TestSeedAddress, addr)
}

func TestV3_GeneratedAddressShape(t *testing.T) {
	hs, err := onion.NewV3(nil, "")
	require.NoError(t, err)

	addr, err := hs.OnionAddress()
	require.NoError(t, err)
	require.Regexp(t, v3AddressPattern, addr)
}

func TestV3_NativeRoundTrip(t *testing.T) {
	hs, err := onion.NewV3(nil, "")
	require.NoError(t, err)

	native, err := hs.PrivateKey(domain.FormatNative)
	require.NoError(t, err)
	require.Len(t, native, 32)

	reloaded, err := onion.NewV3(native, "")
	require.NoError(t, err)

	want, err := hs.OnionAddress()
	require.NoError(t, err)
	got, err := reloaded.OnionAddress()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestV3_FullPrivateKeyMatchesSeed(t *testing.T) {
	fromSeed, err := onion.NewV3(v3TestSeed(), "")
	require.NoError(t, err)
	fromPriv, err := onion.NewV3(stded.NewKeyFromSeed(v3TestSeed()), "")
	require.NoError(t, err)

	a, err := fromSeed.OnionAddress()
	require.NoError(t, err)
	b, err := fromPriv.OnionAddress()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestV3_ExportFormats(t *testing.T) {
	hs, err := onion.NewV3(v3TestSeed(), "")
	require.NoError(t, err)

	seed, err := hs.PrivateKey(domain.FormatSeed)
	require.NoError(t, err)
	require.Equal(t, v3TestSeed(), seed)

	expanded, err := hs.PrivateKey(domain.FormatExpanded)
	require.NoError(t, err)
	require.Len(t, expanded, 96)
	require.Equal(t, "== ed25519v1-secret: type0 ==", string(expanded[:29]))

	_, err = hs.PrivateKey(domain.FormatPEM)
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestV3_PersistedKeyUsesStandardSeedSemantics(t *testing.T) {
	dir := t.TempDir()

	hs, err := onion.NewV3(nil, dir)
	require.NoError(t, err)
	require.NoError(t, hs.WriteServiceDir(dir, false))

	// An independent consumer of the directory must arrive at the same
	// identity: the private_key file is a standard Ed25519 seed whose
	// derived public key reproduces the hostname's address.
	raw, err := os.ReadFile(filepath.Join(dir, store.PrivateKeyFile))
	require.NoError(t, err)
	require.Len(t, raw, stded.SeedSize)

	priv := stded.NewKeyFromSeed(raw)
	label, err := address.FromEd25519Public([]byte(priv[stded.SeedSize:]))
	require.NoError(t, err)

	hostname, err := os.ReadFile(filepath.Join(dir, store.HostnameFile))
	require.NoError(t, err)
	require.Equal(t, label+address.Suffix+"\n", string(hostname))
}

func TestV3_SchemeAndVersion(t *testing.T) {
	hs, err := onion.NewV3(v3TestSeed(), "")
	require.NoError(t, err)
	require.Equal(t, domain.SchemeV3, hs.Scheme())
	require.Equal(t, 3, hs.Version())
}

func TestV3_RejectsInvalidKey(t *testing.T) {
	_, err := onion.NewV3(make([]byte, 31), "")
	require.ErrorIs(t, err, domain.ErrInvalidKeyFormat)
}
