// Package store persists hidden-service key material in tor's directory
// layout: a private_key file in the scheme's native encoding and a
// hostname file holding the derived address.
package store
