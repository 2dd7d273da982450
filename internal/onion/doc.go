// Package onion provides the hidden-service identity types. V2 and V3
// satisfy domain.HiddenService; callers pick a scheme at construction and
// never branch on the concrete variant afterwards.
//
// Construction resolves the private key in a fixed order: a bound service
// directory is loaded first (an empty directory is tolerated), an
// explicitly supplied key overrides whatever was loaded, and a fresh key
// is generated when neither yields one.
package onion
