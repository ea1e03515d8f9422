// Package signature puts the Ed25519 and ECDSA adapters behind one
// byte-oriented interface so callers can pick a scheme by name.
package signature

import (
	"io"
	"strings"

	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/signature/ecdsa"
	"cryptoshim/internal/signature/ed25519"
)

// Scheme names a signature scheme.
type Scheme string

const (
	Ed25519 Scheme = "ed25519"
	P256    Scheme = "p256"
	P384    Scheme = "p384"
)

// Schemes lists the supported schemes.
func Schemes() []Scheme { return []Scheme{Ed25519, P256, P384} }

// ParseScheme resolves a scheme name. "p-256" and "P-384" style names are
// accepted as well.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", ""))
	switch s {
	case Ed25519, P256, P384:
		return s, nil
	}
	return "", cerrors.Wrapf(cerrors.ErrUnsupported, "signature scheme %q", name)
}

// UnmarshalText parses a scheme name with ParseScheme.
func (s *Scheme) UnmarshalText(b []byte) error {
	parsed, err := ParseScheme(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Verifier checks signatures for one public key.
type Verifier interface {
	Scheme() Scheme
	// PublicKeyBytes returns the canonical public encoding: 32 bytes for
	// Ed25519, SEC1 uncompressed for ECDSA.
	PublicKeyBytes() []byte
	// Verify returns errors.ErrVerification for any signature that does not
	// verify, including one of the wrong length.
	Verify(msg, sig []byte) error
}

// Signer produces signatures with one private key.
type Signer interface {
	Scheme() Scheme
	Sign(msg []byte) ([]byte, error)
	Verifier() Verifier
	PublicKeyBytes() []byte
	// PKCS8 returns the private key as PKCS#8 DER.
	PKCS8() ([]byte, error)
	Destroy()
}

// GenerateSigner creates a fresh key for scheme. rnd may be nil.
func GenerateSigner(scheme Scheme, rnd io.Reader) (Signer, error) {
	switch scheme {
	case Ed25519:
		k, err := ed25519.Generate(rnd)
		if err != nil {
			return nil, err
		}
		return edSigner{k}, nil
	case P256:
		k, err := ecdsa.Generate[ecdsa.NistP256](rnd)
		if err != nil {
			return nil, err
		}
		return ecSigner[ecdsa.NistP256]{k, P256}, nil
	case P384:
		k, err := ecdsa.Generate[ecdsa.NistP384](rnd)
		if err != nil {
			return nil, err
		}
		return ecSigner[ecdsa.NistP384]{k, P384}, nil
	}
	return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "signature scheme %q", scheme)
}

// SignerFromPKCS8 parses a PKCS#8 DER private key for scheme.
func SignerFromPKCS8(scheme Scheme, der []byte) (Signer, error) {
	switch scheme {
	case Ed25519:
		k, err := ed25519.FromPKCS8DER(der)
		if err != nil {
			return nil, err
		}
		return edSigner{k}, nil
	case P256:
		k, err := ecdsa.FromPKCS8DER[ecdsa.NistP256](der)
		if err != nil {
			return nil, err
		}
		return ecSigner[ecdsa.NistP256]{k, P256}, nil
	case P384:
		k, err := ecdsa.FromPKCS8DER[ecdsa.NistP384](der)
		if err != nil {
			return nil, err
		}
		return ecSigner[ecdsa.NistP384]{k, P384}, nil
	}
	return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "signature scheme %q", scheme)
}

// DetectPKCS8 tries each scheme in turn and returns the first that parses der.
func DetectPKCS8(der []byte) (Signer, error) {
	for _, s := range Schemes() {
		if k, err := SignerFromPKCS8(s, der); err == nil {
			return k, nil
		}
	}
	return nil, cerrors.Construction("pkcs8: no supported key type")
}

// VerifierFromBytes parses a public key for scheme.
func VerifierFromBytes(scheme Scheme, pub []byte) (Verifier, error) {
	switch scheme {
	case Ed25519:
		vk, err := ed25519.NewVerifyingKey(pub)
		if err != nil {
			return nil, err
		}
		return edVerifier{vk}, nil
	case P256:
		vk, err := ecdsa.NewVerifyingKey[ecdsa.NistP256](pub)
		if err != nil {
			return nil, err
		}
		return ecVerifier[ecdsa.NistP256]{vk, P256}, nil
	case P384:
		vk, err := ecdsa.NewVerifyingKey[ecdsa.NistP384](pub)
		if err != nil {
			return nil, err
		}
		return ecVerifier[ecdsa.NistP384]{vk, P384}, nil
	}
	return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "signature scheme %q", scheme)
}
