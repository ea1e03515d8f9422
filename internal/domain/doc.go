// Package domain defines the fixed-size byte containers shared by the
// adapters: nonces, tags and Ed25519 key/signature material.
//
// Every container is a Go array. Constructors from slices validate the exact
// length and fail with errors.ErrConstruction; nothing is ever truncated or
// padded to fit.
package domain
