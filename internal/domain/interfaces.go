package domain

// KeyStore persists hidden-service key material in a service directory.
type KeyStore interface {
	// Load reads <dir>/private_key. It returns ErrNotADirectory when dir
	// is absent or not a directory, and ErrEmptyDirectory when the
	// directory exists without a private_key file.
	Load(dir string) ([]byte, error)

	// Write persists the native-encoded private key and the hostname
	// file. Without force, an existing private_key fails with
	// ErrKeyExists and both files are left untouched.
	Write(dir string, privateKey []byte, hostname string, force bool) error

	// Hostname reads the address stored in <dir>/hostname, without the
	// trailing newline. A directory that was never provisioned returns
	// ErrEmptyDirectory.
	Hostname(dir string) (string, error)
}

// HiddenService is the polymorphic identity contract satisfied by both
// address generations. After construction an implementation always holds a
// private key; callers never branch on the concrete variant.
type HiddenService interface {
	// Scheme reports the fixed address generation of this identity.
	Scheme() Scheme

	// Version is the numeric protocol version (2 or 3).
	Version() int

	// PublicKeyBytes returns the public key in the codec's encoding.
	PublicKeyBytes() ([]byte, error)

	// OnionAddress returns "<label>.onion" for this identity's public key.
	OnionAddress() (string, error)

	// PrivateKey exports the private key in the requested format.
	// Unknown tags fail with ErrUnsupportedFormat.
	PrivateKey(format KeyFormat) ([]byte, error)

	// WriteServiceDir persists private_key and hostname into dir. An
	// empty dir falls back to the path the identity was constructed
	// with; ErrMissingPath if neither is set.
	WriteServiceDir(dir string, force bool) error
}
