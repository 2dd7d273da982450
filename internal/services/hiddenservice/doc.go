// Package hiddenservice orchestrates identities and the service-directory
// store for callers such as the CLI: provisioning a directory, inspecting
// its address, and exporting its private key.
package hiddenservice
