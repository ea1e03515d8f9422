package domain

import (
	cerrors "cryptoshim/internal/errors"
)

// Sizes of the fixed containers, in bytes.
const (
	NonceSize            = len(Nonce{})
	TagSize              = len(Tag{})
	Ed25519SeedSize      = len(Ed25519Seed{})
	Ed25519PublicKeySize = len(Ed25519PublicKey{})
	Ed25519SignatureSize = len(Ed25519Signature{})
)

// NonceFromSlice copies b into a Nonce. b must be exactly NonceSize bytes.
func NonceFromSlice(b []byte) (Nonce, error) {
	var out Nonce
	if len(b) != NonceSize {
		return out, cerrors.Construction("nonce: want %d bytes, got %d", NonceSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// TagFromSlice copies b into a Tag. b must be exactly TagSize bytes.
func TagFromSlice(b []byte) (Tag, error) {
	var out Tag
	if len(b) != TagSize {
		return out, cerrors.Construction("tag: want %d bytes, got %d", TagSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Ed25519SeedFromSlice copies b into a freshly allocated seed.
func Ed25519SeedFromSlice(b []byte) (*Ed25519Seed, error) {
	if len(b) != Ed25519SeedSize {
		return nil, cerrors.Construction("Ed25519 seed: want %d bytes, got %d", Ed25519SeedSize, len(b))
	}
	out := new(Ed25519Seed)
	copy(out[:], b)
	return out, nil
}

// Ed25519PublicKeyFromSlice copies b into an Ed25519PublicKey.
func Ed25519PublicKeyFromSlice(b []byte) (Ed25519PublicKey, error) {
	var out Ed25519PublicKey
	if len(b) != Ed25519PublicKeySize {
		return out, cerrors.Construction("Ed25519 public: want %d bytes, got %d", Ed25519PublicKeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Ed25519SignatureFromSlice copies b into an Ed25519Signature.
func Ed25519SignatureFromSlice(b []byte) (Ed25519Signature, error) {
	var out Ed25519Signature
	if len(b) != Ed25519SignatureSize {
		return out, cerrors.Construction("Ed25519 signature: want %d bytes, got %d", Ed25519SignatureSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}
