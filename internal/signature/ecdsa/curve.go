package ecdsa

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Curve is implemented by the supported curve marker types.
type Curve interface {
	// Name returns the curve name, e.g. "P-256".
	Name() string
	// FieldSize returns the size of a field element (and scalar) in bytes.
	FieldSize() int
	// SignatureSize returns the size of an r||s signature in bytes.
	SignatureSize() int

	params() *curveParams
}

// curveParams are the provider selectors for one curve.
type curveParams struct {
	name      string
	fieldSize int
	curve     elliptic.Curve
	ecdh      ecdh.Curve
	newHash   func() hash.Hash
}

var (
	p256Params = &curveParams{name: "P-256", fieldSize: 32, curve: elliptic.P256(), ecdh: ecdh.P256(), newHash: sha256.New}
	p384Params = &curveParams{name: "P-384", fieldSize: 48, curve: elliptic.P384(), ecdh: ecdh.P384(), newHash: sha512.New384}
)

// NistP256 selects NIST P-256 (secp256r1) with SHA-256.
type NistP256 struct{}

func (NistP256) Name() string         { return p256Params.name }
func (NistP256) FieldSize() int       { return p256Params.fieldSize }
func (NistP256) SignatureSize() int   { return 2 * p256Params.fieldSize }
func (NistP256) params() *curveParams { return p256Params }

// NistP384 selects NIST P-384 (secp384r1) with SHA-384.
type NistP384 struct{}

func (NistP384) Name() string         { return p384Params.name }
func (NistP384) FieldSize() int       { return p384Params.fieldSize }
func (NistP384) SignatureSize() int   { return 2 * p384Params.fieldSize }
func (NistP384) params() *curveParams { return p384Params }

func paramsOf[C Curve]() *curveParams {
	var c C
	return c.params()
}

func (p *curveParams) digest(msg []byte) []byte {
	h := p.newHash()
	h.Write(msg)
	return h.Sum(nil)
}

// Per-curve aliases.
type (
	P256SigningKey   = SigningKey[NistP256]
	P256VerifyingKey = VerifyingKey[NistP256]
	P256Signature    = Signature[NistP256]

	P384SigningKey   = SigningKey[NistP384]
	P384VerifyingKey = VerifyingKey[NistP384]
	P384Signature    = Signature[NistP384]
)
