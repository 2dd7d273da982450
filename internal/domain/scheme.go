package domain

import "fmt"

// Scheme identifies an onion address generation. The two generations use
// incompatible key types and address transforms.
type Scheme int

const (
	// SchemeV2 is the RSA-1024 generation (16-character addresses).
	SchemeV2 Scheme = 2
	// SchemeV3 is the Ed25519 generation (56-character addresses).
	SchemeV3 Scheme = 3
)

// Version returns the numeric protocol version of the scheme.
func (s Scheme) Version() int { return int(s) }

// String returns the scheme in the form "v2" or "v3".
func (s Scheme) String() string { return fmt.Sprintf("v%d", int(s)) }

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool { return s == SchemeV2 || s == SchemeV3 }
