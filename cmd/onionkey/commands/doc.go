// Package commands defines the onionkey CLI: generating hidden-service
// keys, deriving onion addresses, and exporting private keys.
package commands
