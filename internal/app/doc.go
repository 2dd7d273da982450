// Package app wires stores and services together for the CLI.
package app
