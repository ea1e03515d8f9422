package types

// Nonce is a 96-bit AEAD nonce. Uniqueness per key is the caller's contract.
type Nonce [12]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// Tag is a 128-bit AEAD authentication tag.
type Tag [16]byte

// Slice returns the tag as a []byte.
func (t Tag) Slice() []byte { return t[:] }

// Ed25519Seed is the unexpanded 32-byte Ed25519 private key.
type Ed25519Seed [32]byte

// Slice returns the seed as a []byte.
func (s *Ed25519Seed) Slice() []byte { return s[:] }

// String never reveals the seed.
func (s *Ed25519Seed) String() string { return "Ed25519Seed{...}" }

// GoString never reveals the seed.
func (s *Ed25519Seed) GoString() string { return s.String() }

// Ed25519PublicKey is a compressed Edwards-y public key.
type Ed25519PublicKey [32]byte

// Slice returns the key as a []byte.
func (p Ed25519PublicKey) Slice() []byte { return p[:] }

// Ed25519Signature is an R||S Ed25519 signature.
type Ed25519Signature [64]byte

// Slice returns the signature as a []byte.
func (s Ed25519Signature) Slice() []byte { return s[:] }
