// Package ecdsa adapts ECDSA signing and verification over a closed set of
// NIST curves.
//
// The curve is a type parameter: SigningKey[NistP256] and
// SigningKey[NistP384] share one implementation, and each curve supplies its
// field size, signature size and provider selectors through the Curve
// interface. Curve has unexported methods, so no other package can add a
// variant.
//
//	NistP256  field 32 bytes, signature 64 bytes, SHA-256
//	NistP384  field 48 bytes, signature 96 bytes, SHA-384
//
// Signatures are fixed-size r||s. DER (SEQUENCE { r, s }) conversions are
// available through SignatureFromDER and Signature.DER.
//
// Verification returns errors.ErrVerification and nothing else for every
// failure, whether the signature is out of range or simply wrong.
package ecdsa
