// Package address derives onion address labels from public key bytes.
// Both transforms are pure functions: the same public key always yields
// the same label, and no state is kept between calls.
package address
