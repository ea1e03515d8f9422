// Package app wires configuration, logging and the crypto adapters for the
// CLI.
//
// NewWire resolves Config from Options and builds the logger; the App it
// returns exposes one method per command so handlers stay thin and the
// behaviour can be tested without cobra.
package app
