// Package aead adapts authenticated encryption with associated data behind a
// key-bound Cipher.
//
// Supported algorithms: AES-128-GCM, AES-256-GCM and ChaCha20-Poly1305. All of
// them take a 12-byte nonce and produce a 16-byte tag; the combined wire form
// is ciphertext immediately followed by the tag.
//
// # Key lifecycle
//
// New copies the key into a buffer owned by the Cipher. Close overwrites that
// buffer with zeros and drops the provider handle; a Cipher that is garbage
// collected without Close is scrubbed the same way by a runtime cleanup.
// Key schedules held inside the provider are outside this package's reach.
//
// # Capability gap
//
// Decryption with a detached tag is not offered by the provider surface this
// package adapts. DecryptInPlaceDetached exists so that the gap is explicit:
// it always fails with errors.ErrUnsupported.
//
// Concurrency: encryption and decryption on a live Cipher may run
// concurrently. Close must not race with other calls.
package aead
