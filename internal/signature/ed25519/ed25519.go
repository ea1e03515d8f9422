// Package ed25519 adapts Ed25519 (RFC 8032) signing and verification.
//
// A SigningKey keeps the 32-byte seed next to the provider's expanded key so
// that ToBytes can return the seed and Clone can re-expand it. Signing is
// deterministic and never reads randomness.
//
// NewVerifyingKey only checks length. Whether the bytes decode to a curve
// point is decided by Verify, which reports every failure as
// errors.ErrVerification.
package ed25519

import (
	stded25519 "crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"fmt"
	"io"
	"runtime"

	"github.com/cloudflare/circl/sign/ed25519"

	"cryptoshim/internal/domain"
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/util/memzero"
)

// SigningKey is an Ed25519 private key.
type SigningKey struct {
	seed    *domain.Ed25519Seed
	priv    ed25519.PrivateKey
	pub     domain.Ed25519PublicKey
	cleanup runtime.Cleanup
}

type secret struct {
	seed *domain.Ed25519Seed
	priv []byte
}

func (s secret) wipe() {
	memzero.Zero(s.seed[:])
	memzero.Zero(s.priv)
}

// FromBytes expands seed into a signing key. The seed is copied.
func FromBytes(seed *domain.Ed25519Seed) *SigningKey {
	owned := new(domain.Ed25519Seed)
	*owned = *seed
	priv := ed25519.NewKeyFromSeed(owned[:])

	k := &SigningKey{seed: owned, priv: priv}
	copy(k.pub[:], priv[ed25519.SeedSize:])
	k.cleanup = runtime.AddCleanup(k, secret.wipe, secret{seed: owned, priv: priv})
	return k
}

// FromSlice is FromBytes for a slice that must be exactly 32 bytes.
func FromSlice(b []byte) (*SigningKey, error) {
	seed, err := domain.Ed25519SeedFromSlice(b)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(seed[:])
	return FromBytes(seed), nil
}

// Generate draws a seed from rnd, or crypto/rand.Reader when rnd is nil.
func Generate(rnd io.Reader) (*SigningKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	seed := new(domain.Ed25519Seed)
	defer memzero.Zero(seed[:])
	if _, err := io.ReadFull(rnd, seed[:]); err != nil {
		return nil, cerrors.RandomSource(cerrors.ErrConstruction, err)
	}
	return FromBytes(seed), nil
}

// FromPKCS8DER parses a PKCS#8 DER Ed25519 private key.
func FromPKCS8DER(der []byte) (*SigningKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, cerrors.Construction("Ed25519 pkcs8: %v", err)
	}
	priv, ok := key.(stded25519.PrivateKey)
	if !ok {
		memzero.PrivateKey(key)
		return nil, cerrors.Construction("Ed25519 pkcs8: not an Ed25519 key (%T)", key)
	}
	seed := priv.Seed()
	defer memzero.ZeroAll(priv, seed)
	return FromSlice(seed)
}

// ToPKCS8DER encodes the key as PKCS#8 DER. The caller owns the result and
// should scrub it.
func (k *SigningKey) ToPKCS8DER() ([]byte, error) {
	if k.seed == nil {
		return nil, cerrors.ErrClosed
	}
	der, err := x509.MarshalPKCS8PrivateKey(stded25519.PrivateKey(k.priv))
	if err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "Ed25519 pkcs8: %v", err)
	}
	return der, nil
}

// ToBytes returns a copy of the seed.
func (k *SigningKey) ToBytes() (*domain.Ed25519Seed, error) {
	if k.seed == nil {
		return nil, cerrors.ErrClosed
	}
	out := new(domain.Ed25519Seed)
	*out = *k.seed
	return out, nil
}

// Clone re-expands the seed into an independent key.
func (k *SigningKey) Clone() (*SigningKey, error) {
	if k.seed == nil {
		return nil, cerrors.ErrClosed
	}
	return FromBytes(k.seed), nil
}

// VerifyingKey returns the public key. It remains available after Destroy.
func (k *SigningKey) VerifyingKey() *VerifyingKey {
	return VerifyingKeyFromBytes(k.pub)
}

// TrySign signs msg. The only failure is use after Destroy.
func (k *SigningKey) TrySign(msg []byte) (domain.Ed25519Signature, error) {
	var sig domain.Ed25519Signature
	if k.seed == nil {
		return sig, cerrors.ErrClosed
	}
	copy(sig[:], ed25519.Sign(k.priv, msg))
	return sig, nil
}

// Destroy scrubs the seed and the expanded key. It is idempotent.
func (k *SigningKey) Destroy() {
	if k.seed == nil {
		return
	}
	k.cleanup.Stop()
	secret{seed: k.seed, priv: k.priv}.wipe()
	k.seed = nil
	k.priv = nil
}

// Destroyed reports whether Destroy has been called.
func (k *SigningKey) Destroyed() bool { return k.seed == nil }

func (k *SigningKey) String() string {
	return fmt.Sprintf("ed25519.SigningKey{%x ...}", k.pub[:4])
}

// GoString keeps %#v from printing the seed.
func (k *SigningKey) GoString() string { return k.String() }

// VerifyingKey is an Ed25519 public key.
type VerifyingKey struct {
	key domain.Ed25519PublicKey
}

// NewVerifyingKey accepts exactly 32 bytes. Point decoding is left to Verify.
func NewVerifyingKey(b []byte) (*VerifyingKey, error) {
	pk, err := domain.Ed25519PublicKeyFromSlice(b)
	if err != nil {
		return nil, err
	}
	return VerifyingKeyFromBytes(pk), nil
}

// VerifyingKeyFromBytes wraps a fixed-size public key.
func VerifyingKeyFromBytes(pk domain.Ed25519PublicKey) *VerifyingKey {
	return &VerifyingKey{key: pk}
}

// Verify checks sig over msg. Every failure returns errors.ErrVerification.
func (v *VerifyingKey) Verify(msg []byte, sig domain.Ed25519Signature) error {
	if !ed25519.Verify(v.key[:], msg, sig[:]) {
		return cerrors.ErrVerification
	}
	return nil
}

// Bytes returns the 32-byte compressed encoding.
func (v *VerifyingKey) Bytes() domain.Ed25519PublicKey { return v.key }

// Equal reports whether v and other encode the same key.
func (v *VerifyingKey) Equal(other *VerifyingKey) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.key == other.key
}

func (v *VerifyingKey) String() string {
	return fmt.Sprintf("ed25519.VerifyingKey{%x}", v.key[:])
}

// SignatureFromSlice copies a 64-byte R||S signature.
func SignatureFromSlice(b []byte) (domain.Ed25519Signature, error) {
	return domain.Ed25519SignatureFromSlice(b)
}
