// Package domain defines the core data models and contracts shared across
// the app: address schemes, the error taxonomy, and the interfaces
// implemented by key material, key stores and hidden-service identities.
package domain
