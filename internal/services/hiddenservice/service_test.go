package hiddenservice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"onionkey/internal/domain"
	"onionkey/internal/services/hiddenservice"
	"onionkey/internal/store"
)

func TestProvision_CreatesAndReuses(t *testing.T) {
	svc := hiddenservice.New(store.New())
	dir := t.TempDir()

	_, addr, err := svc.Provision(domain.SchemeV3, dir, false)
	require.NoError(t, err)
	require.Len(t, addr, 56+len(".onion"))

	key, err := os.ReadFile(filepath.Join(dir, store.PrivateKeyFile))
	require.NoError(t, err)

	// A second provision without force keeps the key and the address.
	_, again, err := svc.Provision(domain.SchemeV3, dir, false)
	require.NoError(t, err)
	require.Equal(t, addr, again)

	keyAfter, err := os.ReadFile(filepath.Join(dir, store.PrivateKeyFile))
	require.NoError(t, err)
	require.Equal(t, key, keyAfter)
}

func TestProvision_ForceRotatesKey(t *testing.T) {
	svc := hiddenservice.New(store.New())
	dir := t.TempDir()

	_, addr, err := svc.Provision(domain.SchemeV3, dir, false)
	require.NoError(t, err)
	keyBefore, err := os.ReadFile(filepath.Join(dir, store.PrivateKeyFile))
	require.NoError(t, err)

	_, rotated, err := svc.Provision(domain.SchemeV3, dir, true)
	require.NoError(t, err)
	require.NotEqual(t, addr, rotated)

	// The on-disk key pair must have been replaced, and the new hostname
	// must match the rotated address.
	keyAfter, err := os.ReadFile(filepath.Join(dir, store.PrivateKeyFile))
	require.NoError(t, err)
	require.NotEqual(t, keyBefore, keyAfter)

	hostname, err := os.ReadFile(filepath.Join(dir, store.HostnameFile))
	require.NoError(t, err)
	require.Equal(t, rotated+"\n", string(hostname))
}

func TestAddress_MatchesProvisioned(t *testing.T) {
	svc := hiddenservice.New(store.New())
	dir := t.TempDir()

	_, addr, err := svc.Provision(domain.SchemeV2, dir, false)
	require.NoError(t, err)

	got, err := svc.Address(domain.SchemeV2, dir)
	require.NoError(t, err)
	require.Equal(t, addr, got)
}

func TestAddress_EmptyDirDoesNotGenerate(t *testing.T) {
	svc := hiddenservice.New(store.New())

	_, err := svc.Address(domain.SchemeV3, t.TempDir())
	require.ErrorIs(t, err, domain.ErrEmptyDirectory)
}

func TestExportKey(t *testing.T) {
	svc := hiddenservice.New(store.New())
	dir := t.TempDir()

	_, _, err := svc.Provision(domain.SchemeV3, dir, false)
	require.NoError(t, err)

	seed, err := svc.ExportKey(domain.SchemeV3, dir, domain.FormatSeed)
	require.NoError(t, err)
	require.Len(t, seed, 32)

	stored, err := os.ReadFile(filepath.Join(dir, store.PrivateKeyFile))
	require.NoError(t, err)
	require.Equal(t, stored, seed)

	_, err = svc.ExportKey(domain.SchemeV3, dir, domain.KeyFormat("jwk"))
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
