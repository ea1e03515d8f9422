package domain

import (
	types "cryptoshim/internal/domain/types"
)

// Type aliases expose the fixed-size containers from the types subpackage.
type (
	Nonce            = types.Nonce
	Tag              = types.Tag
	Ed25519Seed      = types.Ed25519Seed
	Ed25519PublicKey = types.Ed25519PublicKey
	Ed25519Signature = types.Ed25519Signature
)
