// Package digest adapts streaming hash contexts behind one algorithm-agnostic
// State type.
//
// Supported algorithms and their block/output sizes in bytes:
//
//   - SHA-1       64 / 20 (legacy use only)
//   - SHA-256     64 / 32
//   - SHA-384    128 / 48
//   - SHA-512    128 / 64
//   - SHA-512/256 128 / 32
//
// # Lifecycle
//
// A State starts empty, accumulates input through Update, and ends either in
// Finalize (terminal) or FinalizeReset (fresh again). Reset discards input
// without producing output. Hashing is total: no operation on a live State
// can fail.
//
// Concurrency: State is NOT safe for concurrent use.
package digest
