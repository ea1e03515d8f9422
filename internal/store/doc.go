// Package store persists private keys for the command layer.
//
// Keys are written as PEM. An unprotected key is a standard "PRIVATE KEY"
// block holding PKCS#8 DER. A passphrase-protected key is a
// "CRYPTOSHIM ENCRYPTED KEY" block whose body is a versioned JSON envelope:
// scrypt derives a ChaCha20-Poly1305 key from the passphrase and a random
// salt, and the PKCS#8 DER is sealed under it.
//
// Files are replaced atomically (temp file, chmod, rename) with mode 0600.
package store
