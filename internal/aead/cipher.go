package aead

import (
	"crypto/cipher"
	"fmt"
	"runtime"

	"cryptoshim/internal/domain"
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/util/memzero"
)

// Cipher is an AEAD instance bound to one key.
type Cipher struct {
	alg     *Algorithm
	key     []byte
	aead    cipher.AEAD
	cleanup runtime.Cleanup
}

// New binds a Cipher to key. key must be exactly alg.KeySize() bytes; it is
// copied, so the caller may scrub its own copy afterwards.
func New(alg *Algorithm, key []byte) (*Cipher, error) {
	if len(key) != alg.keySize {
		return nil, cerrors.Construction("%s: key must be %d bytes, got %d", alg.name, alg.keySize, len(key))
	}
	owned := make([]byte, alg.keySize)
	copy(owned, key)

	a, err := alg.newAEAD(owned)
	if err != nil {
		memzero.Zero(owned)
		return nil, cerrors.Wrapf(cerrors.ErrConstruction, "%s: %v", alg.name, err)
	}
	if a.NonceSize() != domain.NonceSize || a.Overhead() != domain.TagSize {
		memzero.Zero(owned)
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "%s: provider nonce/tag size", alg.name)
	}

	c := &Cipher{alg: alg, key: owned, aead: a}
	c.cleanup = runtime.AddCleanup(c, memzero.Zero, owned)
	return c, nil
}

// Algorithm returns the descriptor the Cipher was built for.
func (c *Cipher) Algorithm() *Algorithm { return c.alg }

// Close scrubs the key and releases the provider handle. It is idempotent.
func (c *Cipher) Close() error {
	if c.aead == nil {
		return nil
	}
	c.cleanup.Stop()
	memzero.Zero(c.key)
	c.key = nil
	c.aead = nil
	return nil
}

func (c *Cipher) live(size int) error {
	if c.aead == nil {
		return cerrors.ErrClosed
	}
	if uint64(size) > c.alg.maxPlaintext {
		return cerrors.Construction("%s: message of %d bytes exceeds algorithm limit", c.alg.name, size)
	}
	return nil
}

// EncryptInPlaceDetached encrypts buf in place and returns the tag
// separately. len(buf) is unchanged.
func (c *Cipher) EncryptInPlaceDetached(nonce domain.Nonce, aad, buf []byte) (domain.Tag, error) {
	var tag domain.Tag
	if err := c.live(len(buf)); err != nil {
		return tag, err
	}
	n := len(buf)
	// Capping dst at n keeps Seal from writing the tag past len(buf) into the
	// caller's backing array.
	out := c.aead.Seal(buf[:0:n], nonce[:], buf, aad)
	copy(buf, out[:n])
	copy(tag[:], out[n:])
	return tag, nil
}

// EncryptInPlace encrypts buf in place and appends the tag, returning the
// extended slice.
func (c *Cipher) EncryptInPlace(nonce domain.Nonce, aad, buf []byte) ([]byte, error) {
	if err := c.live(len(buf)); err != nil {
		return nil, err
	}
	return c.aead.Seal(buf[:0], nonce[:], buf, aad), nil
}

// Encrypt returns ciphertext||tag in a new buffer.
func (c *Cipher) Encrypt(nonce domain.Nonce, aad, plaintext []byte) ([]byte, error) {
	if err := c.live(len(plaintext)); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(plaintext)+domain.TagSize)
	return c.aead.Seal(out, nonce[:], plaintext, aad), nil
}

// DecryptInPlace authenticates and decrypts buf, which holds
// ciphertext||tag. On success it returns buf truncated to the plaintext. On
// failure it returns errors.ErrVerification and the plaintext region of buf
// is zeroed; the caller must not trust the remaining bytes.
func (c *Cipher) DecryptInPlace(nonce domain.Nonce, aad, buf []byte) ([]byte, error) {
	if c.aead == nil {
		return nil, cerrors.ErrClosed
	}
	if len(buf) < domain.TagSize {
		return nil, cerrors.ErrVerification
	}
	pt, err := c.aead.Open(buf[:0], nonce[:], buf, aad)
	if err != nil {
		memzero.Zero(buf[:len(buf)-domain.TagSize])
		return nil, cerrors.ErrVerification
	}
	return pt, nil
}

// Decrypt authenticates and decrypts ciphertext||tag into a new buffer.
func (c *Cipher) Decrypt(nonce domain.Nonce, aad, ciphertext []byte) ([]byte, error) {
	buf := make([]byte, len(ciphertext))
	copy(buf, ciphertext)
	return c.DecryptInPlace(nonce, aad, buf)
}

// DecryptInPlaceDetached is not supported by the provider and always returns
// errors.ErrUnsupported. buf is left untouched.
func (c *Cipher) DecryptInPlaceDetached(_ domain.Nonce, _, _ []byte, _ domain.Tag) error {
	return cerrors.Wrapf(cerrors.ErrUnsupported, "%s: decrypt with detached tag", c.alg.name)
}

// String never reveals key material.
func (c *Cipher) String() string {
	return fmt.Sprintf("aead.Cipher{%s ...}", c.alg.name)
}

// GoString never reveals key material.
func (c *Cipher) GoString() string { return c.String() }
