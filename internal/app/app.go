package app

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"

	"cryptoshim/internal/aead"
	"cryptoshim/internal/config"
	"cryptoshim/internal/digest"
	"cryptoshim/internal/domain"
	"cryptoshim/internal/encoding"
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/signature"
	"cryptoshim/internal/store"
)

// App is the command-facing surface over the adapters.
type App struct {
	Config *config.Config
	Log    zerolog.Logger
	Rand   io.Reader
}

// New builds an App from resolved parts. A nil rnd means crypto/rand.Reader.
func New(cfg *config.Config, logger zerolog.Logger, rnd io.Reader) *App {
	if rnd == nil {
		rnd = rand.Reader
	}
	return &App{Config: cfg, Log: logger, Rand: rnd}
}

// Encode renders b in the configured encoding.
func (a *App) Encode(b []byte) (string, error) {
	return encoding.Encode(a.Config.Encoding, b)
}

// Decode parses s in the configured encoding.
func (a *App) Decode(s string) ([]byte, error) {
	return encoding.Decode(a.Config.Encoding, s)
}

func (a *App) digestAlg(name string) (*digest.Algorithm, error) {
	if name == "" {
		name = a.Config.Digest
	}
	return digest.Lookup(name)
}

func (a *App) aeadAlg(name string) (*aead.Algorithm, error) {
	if name == "" {
		name = a.Config.AEAD
	}
	return aead.Lookup(name)
}

func (a *App) scheme(name string) (signature.Scheme, error) {
	if name == "" {
		return a.Config.Scheme, nil
	}
	return signature.ParseScheme(name)
}

// Digest hashes everything read from r. An empty alg uses the configured
// digest.
func (a *App) Digest(alg string, r io.Reader) ([]byte, error) {
	d, err := a.digestAlg(alg)
	if err != nil {
		return nil, err
	}
	st := digest.New(d)
	n, err := io.Copy(st, r)
	if err != nil {
		return nil, cerrors.Wrap(err, "read input")
	}
	a.Log.Debug().Str("alg", d.Name()).Int64("bytes", n).Msg("digest computed")
	return st.Finalize(), nil
}

// Seal encrypts plaintext under key with a fresh random nonce and returns
// nonce || ciphertext || tag.
func (a *App) Seal(alg string, key, aad, plaintext []byte) ([]byte, error) {
	c, err := a.cipher(alg, key)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	var nonce domain.Nonce
	if _, err := io.ReadFull(a.Rand, nonce[:]); err != nil {
		return nil, cerrors.RandomSource(cerrors.ErrConstruction, err)
	}
	ct, err := c.Encrypt(nonce, aad, plaintext)
	if err != nil {
		return nil, err
	}
	a.Log.Debug().Str("alg", c.Algorithm().Name()).Int("bytes", len(plaintext)).Msg("sealed")
	return append(nonce[:], ct...), nil
}

// Open reverses Seal.
func (a *App) Open(alg string, key, aad, sealed []byte) ([]byte, error) {
	c, err := a.cipher(alg, key)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if len(sealed) < domain.NonceSize+domain.TagSize {
		return nil, cerrors.ErrVerification
	}
	nonce, err := domain.NonceFromSlice(sealed[:domain.NonceSize])
	if err != nil {
		return nil, err
	}
	pt, err := c.Decrypt(nonce, aad, sealed[domain.NonceSize:])
	if err != nil {
		a.Log.Warn().Str("alg", c.Algorithm().Name()).Msg("open failed")
		return nil, err
	}
	return pt, nil
}

func (a *App) cipher(alg string, key []byte) (*aead.Cipher, error) {
	desc, err := a.aeadAlg(alg)
	if err != nil {
		return nil, err
	}
	return aead.New(desc, key)
}

// GenerateKey creates a key for scheme (or the configured scheme) and
// writes it to path.
func (a *App) GenerateKey(scheme, path, passphrase string) (signature.Signer, error) {
	s, err := a.scheme(scheme)
	if err != nil {
		return nil, err
	}
	signer, err := signature.GenerateSigner(s, a.Rand)
	if err != nil {
		return nil, err
	}
	if err := store.NewKeyFile(path).Save(signer, passphrase); err != nil {
		signer.Destroy()
		return nil, cerrors.Wrapf(err, "write key %s", path)
	}
	a.Log.Info().Str("scheme", string(s)).Str("path", path).Bool("encrypted", passphrase != "").Msg("key generated")
	return signer, nil
}

// LoadKey reads a private key file.
func (a *App) LoadKey(path, passphrase string) (signature.Signer, error) {
	signer, err := store.NewKeyFile(path).Load(passphrase)
	if err != nil {
		return nil, cerrors.Wrapf(err, "load key %s", path)
	}
	return signer, nil
}

// Sign signs msg with the key at path.
func (a *App) Sign(path, passphrase string, msg []byte) ([]byte, signature.Scheme, error) {
	signer, err := a.LoadKey(path, passphrase)
	if err != nil {
		return nil, "", err
	}
	defer signer.Destroy()

	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, "", err
	}
	a.Log.Debug().Str("scheme", string(signer.Scheme())).Int("bytes", len(msg)).Msg("signed")
	return sig, signer.Scheme(), nil
}

// Verify checks sig over msg with a public key of scheme (or the configured
// scheme).
func (a *App) Verify(scheme string, pub, msg, sig []byte) error {
	s, err := a.scheme(scheme)
	if err != nil {
		return err
	}
	v, err := signature.VerifierFromBytes(s, pub)
	if err != nil {
		return err
	}
	if err := v.Verify(msg, sig); err != nil {
		a.Log.Warn().Str("scheme", string(s)).Msg("signature rejected")
		return err
	}
	return nil
}

// Algorithms lists every supported name by category.
func (a *App) Algorithms() map[string][]string {
	schemes := make([]string, 0, len(signature.Schemes()))
	for _, s := range signature.Schemes() {
		schemes = append(schemes, string(s))
	}
	encodings := make([]string, 0, len(encoding.Names()))
	for _, n := range encoding.Names() {
		encodings = append(encodings, string(n))
	}
	return map[string][]string{
		"digest":    digest.Algorithms(),
		"aead":      aead.Algorithms(),
		"signature": schemes,
		"encoding":  encodings,
	}
}
