// Package commands defines the cryptoshim CLI.
//
// Commands
//
//   - digest      Hash files or stdin
//   - seal        AEAD-encrypt stdin or a file under a symmetric key
//   - open        Decrypt and authenticate what seal produced
//   - keygen      Create a signing key and write it as PEM
//   - pubkey      Print the public key of a key file
//   - sign        Sign stdin or a file
//   - verify      Verify a signature against a public key
//   - algorithms  List supported algorithms and encodings
//
// # Implementation
//
// The root command resolves configuration (defaults, --config YAML,
// CRYPTOSHIM_* environment, flags) and builds the logger before any
// subcommand runs. Binary outputs are printed in the configured --encoding;
// seal and open read and write raw bytes.
package commands
