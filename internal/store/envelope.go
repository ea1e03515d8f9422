package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"cryptoshim/internal/aead"
	"cryptoshim/internal/domain"
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/util/memzero"
)

const (
	// The current supported version of the encrypted envelope format.
	envelopeFormatVersion = 1
	saltSize              = 16
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// envelope has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

// envelope is the JSON body of an encrypted key block.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// ScryptParams are the key derivation cost parameters.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams are used by Save.
var DefaultScryptParams = ScryptParams{N: 1 << 15, R: 8, P: 1}

// seal derives a key from passphrase and seals raw into a JSON envelope.
func seal(passphrase string, raw []byte, params ScryptParams) ([]byte, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, cerrors.RandomSource(cerrors.ErrConstruction, err)
	}
	c, err := envelopeCipher(passphrase, salt[:], params)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	// Zero nonce; the salt-bound key is never reused.
	var nonce domain.Nonce
	ct, err := c.Encrypt(nonce, salt[:], raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// open decrypts a JSON envelope using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, cerrors.Construction("key envelope: %v", err)
	}
	if env.V != envelopeFormatVersion {
		return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "key envelope version %d", env.V)
	}
	if len(env.Salt) != saltSize {
		return nil, cerrors.Construction("key envelope: salt must be %d bytes", saltSize)
	}

	c, err := envelopeCipher(passphrase, env.Salt, ScryptParams{N: env.N, R: env.R, P: env.P})
	if err != nil {
		return nil, err
	}
	defer c.Close()

	var nonce domain.Nonce
	pt, err := c.Decrypt(nonce, env.Salt, env.Cipher)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func envelopeCipher(passphrase string, salt []byte, params ScryptParams) (*aead.Cipher, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, aead.ChaCha20Poly1305.KeySize())
	if err != nil {
		return nil, cerrors.Construction("scrypt parameters: %v", err)
	}
	defer memzero.Zero(key)

	c, err := aead.New(aead.ChaCha20Poly1305, key)
	if err != nil {
		return nil, fmt.Errorf("key envelope: %w", err)
	}
	return c, nil
}
