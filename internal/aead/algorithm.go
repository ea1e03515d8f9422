package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"sort"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptoshim/internal/domain"
	cerrors "cryptoshim/internal/errors"
)

// Algorithm describes one AEAD construction. Values are immutable and shared
// process-wide.
type Algorithm struct {
	name         string
	keySize      int
	maxPlaintext uint64
	newAEAD      func(key []byte) (cipher.AEAD, error)
}

// Name returns the registry name, e.g. "aes-128-gcm".
func (a *Algorithm) Name() string { return a.name }

// KeySize returns the exact key length in bytes.
func (a *Algorithm) KeySize() int { return a.keySize }

// NonceSize returns the nonce length in bytes.
func (a *Algorithm) NonceSize() int { return domain.NonceSize }

// TagSize returns the tag length in bytes.
func (a *Algorithm) TagSize() int { return domain.TagSize }

func (a *Algorithm) String() string { return a.name }

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Plaintext limits at which the providers would panic instead of failing.
const (
	gcmMaxPlaintext    = ((1 << 32) - 2) * aes.BlockSize
	chachaMaxPlaintext = (1 << 38) - 64
)

var (
	// AES128GCM is AES-128 in Galois/Counter Mode.
	AES128GCM = &Algorithm{name: "aes-128-gcm", keySize: 16, maxPlaintext: gcmMaxPlaintext, newAEAD: newGCM}
	// AES256GCM is AES-256 in Galois/Counter Mode.
	AES256GCM = &Algorithm{name: "aes-256-gcm", keySize: 32, maxPlaintext: gcmMaxPlaintext, newAEAD: newGCM}
	// ChaCha20Poly1305 is the RFC 8439 construction.
	ChaCha20Poly1305 = &Algorithm{
		name:         "chacha20-poly1305",
		keySize:      chacha20poly1305.KeySize,
		maxPlaintext: chachaMaxPlaintext,
		newAEAD:      chacha20poly1305.New,
	}
)

var registry = map[string]*Algorithm{
	AES128GCM.name:        AES128GCM,
	AES256GCM.name:        AES256GCM,
	ChaCha20Poly1305.name: ChaCha20Poly1305,
}

// Lookup resolves an algorithm by name.
func Lookup(name string) (*Algorithm, error) {
	alg, ok := registry[name]
	if !ok {
		return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "aead %q", name)
	}
	return alg, nil
}

// Algorithms lists the registered names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
