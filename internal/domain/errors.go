package domain

import "errors"

var (
	// ErrInvalidKeyFormat means the supplied bytes do not parse as a
	// private key of the scheme's native encoding.
	ErrInvalidKeyFormat = errors.New("invalid private key format")

	// ErrKeyGeneration means the platform's secure random source or the
	// key generation primitive failed. Not recoverable.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrMalformedPublicKey means a public key had the wrong shape for its
	// scheme. It signals a programming error, never bad user input.
	ErrMalformedPublicKey = errors.New("malformed public key")

	// ErrNotADirectory means the load path does not exist or is not a
	// directory.
	ErrNotADirectory = errors.New("path is not an existing directory")

	// ErrDirectoryNotFound means the write path does not exist.
	ErrDirectoryNotFound = errors.New("service directory not found")

	// ErrEmptyDirectory is the non-fatal load outcome: the directory
	// exists but holds no private_key file. Callers fall back to
	// generating a fresh key.
	ErrEmptyDirectory = errors.New("no private_key in service directory")

	// ErrKeyExists means a private_key file is already present and the
	// write was not forced. This is the safety gate against accidental
	// key destruction.
	ErrKeyExists = errors.New("private_key already exists (use force to overwrite)")

	// ErrMissingPath means no service directory path was supplied or
	// bound at construction.
	ErrMissingPath = errors.New("missing service directory path")

	// ErrUnsupportedFormat means an unknown private-key export format tag.
	ErrUnsupportedFormat = errors.New("unsupported private key export format")
)
