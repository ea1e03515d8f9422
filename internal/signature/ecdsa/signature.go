package ecdsa

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	cerrors "cryptoshim/internal/errors"
)

// Signature is a fixed-size r||s ECDSA signature for curve C.
type Signature[C Curve] struct {
	b []byte
}

// SignatureFromBytes copies an r||s signature. b must be exactly
// C.SignatureSize() bytes. Range checks on r and s happen at verification.
func SignatureFromBytes[C Curve](b []byte) (Signature[C], error) {
	var c C
	if len(b) != c.SignatureSize() {
		return Signature[C]{}, cerrors.Construction("%s signature: want %d bytes, got %d", c.Name(), c.SignatureSize(), len(b))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Signature[C]{b: out}, nil
}

// SignatureFromDER parses an ASN.1 DER SEQUENCE { r INTEGER, s INTEGER }.
func SignatureFromDER[C Curve](der []byte) (Signature[C], error) {
	p := paramsOf[C]()
	var (
		inner cryptobyte.String
		r, s  = new(big.Int), new(big.Int)
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) || !inner.Empty() {
		return Signature[C]{}, cerrors.Construction("%s signature: malformed DER", p.name)
	}
	if r.Sign() <= 0 || s.Sign() <= 0 || r.BitLen() > 8*p.fieldSize || s.BitLen() > 8*p.fieldSize {
		return Signature[C]{}, cerrors.Construction("%s signature: DER integers out of range", p.name)
	}
	return newSignature[C](r, s), nil
}

func newSignature[C Curve](r, s *big.Int) Signature[C] {
	n := paramsOf[C]().fieldSize
	b := make([]byte, 2*n)
	r.FillBytes(b[:n])
	s.FillBytes(b[n:])
	return Signature[C]{b: b}
}

func (sig Signature[C]) scalars() (r, s *big.Int) {
	n := paramsOf[C]().fieldSize
	return new(big.Int).SetBytes(sig.b[:n]), new(big.Int).SetBytes(sig.b[n:])
}

// Bytes returns a copy of the r||s encoding.
func (sig Signature[C]) Bytes() []byte {
	out := make([]byte, len(sig.b))
	copy(out, sig.b)
	return out
}

// DER returns the ASN.1 DER encoding of the signature.
func (sig Signature[C]) DER() ([]byte, error) {
	if len(sig.b) == 0 {
		return nil, cerrors.Construction("%s signature: empty", paramsOf[C]().name)
	}
	r, s := sig.scalars()
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(s)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "encode DER: %v", err)
	}
	return der, nil
}

func (sig Signature[C]) String() string {
	return fmt.Sprintf("ecdsa.Signature{%s %x}", paramsOf[C]().name, sig.b)
}
