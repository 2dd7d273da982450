package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"onionkey/internal/domain"
)

const (
	// PrivateKeyFile and HostnameFile are the names tor expects inside a
	// hidden-service directory.
	PrivateKeyFile = "private_key"
	HostnameFile   = "hostname"

	privateKeyMode = os.FileMode(0o600)
	hostnameMode   = os.FileMode(0o644)
)

// Store reads and writes hidden-service directories.
//
// The force gate in Write is an existence check, not a lock: two processes
// racing past it can still clobber each other's key. Single-writer use is
// assumed.
type Store struct{}

// New returns a service-directory store.
func New() *Store { return &Store{} }

// Load reads <dir>/private_key and returns its raw bytes.
//
// A missing or non-directory dir fails with ErrNotADirectory. A directory
// without a private_key file returns ErrEmptyDirectory, the documented
// signal that the caller may fall back to key generation.
func (s *Store) Load(dir string) ([]byte, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, dir)
	}

	raw, err := os.ReadFile(filepath.Join(dir, PrivateKeyFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDirectory, dir)
		}
		return nil, fmt.Errorf("read %s: %w", PrivateKeyFile, err)
	}

	logrus.WithField("dir", dir).Debug("loaded private key from service directory")
	return raw, nil
}

// Write persists the native-encoded private key and the hostname file
// into dir. The key is fully written before the hostname so a partially
// written pair never presents as complete with a missing key.
//
// Without force, an existing private_key fails with ErrKeyExists and
// neither file is touched.
func (s *Store) Write(dir string, privateKey []byte, hostname string, force bool) error {
	if dir == "" {
		return domain.ErrMissingPath
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrNotADirectory, dir)
	}

	keyPath := filepath.Join(dir, PrivateKeyFile)
	if _, err := os.Stat(keyPath); err == nil && !force {
		return fmt.Errorf("%w: %s", domain.ErrKeyExists, keyPath)
	}

	if err := writeFile(keyPath, privateKey, privateKeyMode); err != nil {
		return fmt.Errorf("write %s: %w", PrivateKeyFile, err)
	}
	if err := writeFile(filepath.Join(dir, HostnameFile), []byte(hostname+"\n"), hostnameMode); err != nil {
		return fmt.Errorf("write %s: %w", HostnameFile, err)
	}

	logrus.WithFields(logrus.Fields{
		"dir":      dir,
		"hostname": hostname,
		"force":    force,
	}).Info("wrote hidden service directory")
	return nil
}

// Hostname reads the address recorded in <dir>/hostname, trimmed of its
// trailing newline. A directory without a hostname file returns
// ErrEmptyDirectory.
func (s *Store) Hostname(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrNotADirectory, dir)
	}

	raw, err := os.ReadFile(filepath.Join(dir, HostnameFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrEmptyDirectory, dir)
		}
		return "", fmt.Errorf("read %s: %w", HostnameFile, err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}

var _ domain.KeyStore = (*Store)(nil)
