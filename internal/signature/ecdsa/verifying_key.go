package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"math/big"

	cerrors "cryptoshim/internal/errors"
)

// VerifyingKey is an ECDSA public key on curve C.
type VerifyingKey[C Curve] struct {
	pub     *stdecdsa.PublicKey
	encoded []byte
}

// NewVerifyingKey parses a public key. Accepted encodings are SEC1
// compressed (1+F bytes, 0x02/0x03 prefix), SEC1 uncompressed (1+2F bytes,
// 0x04 prefix) and raw X||Y (2F bytes), where F is C.FieldSize(). The point
// must lie on the curve.
func NewVerifyingKey[C Curve](b []byte) (*VerifyingKey[C], error) {
	p := paramsOf[C]()
	f := p.fieldSize

	var encoded []byte
	switch {
	case len(b) == 2*f:
		encoded = append([]byte{0x04}, b...)
	case len(b) == 1+2*f && b[0] == 0x04:
		encoded = append([]byte(nil), b...)
	case len(b) == 1+f && (b[0] == 0x02 || b[0] == 0x03):
		encoded = append([]byte(nil), b...)
	default:
		return nil, cerrors.Construction("%s public key: unrecognised encoding of %d bytes", p.name, len(b))
	}

	x, y := unmarshalPoint(p.curve, encoded)
	if x == nil {
		return nil, cerrors.Construction("%s public key: point not on curve", p.name)
	}
	pub := &stdecdsa.PublicKey{Curve: p.curve, X: x, Y: y}
	return &VerifyingKey[C]{pub: pub, encoded: encoded}, nil
}

func newVerifyingKey[C Curve](pub *stdecdsa.PublicKey) *VerifyingKey[C] {
	cp := &stdecdsa.PublicKey{Curve: pub.Curve, X: pub.X, Y: pub.Y}
	return &VerifyingKey[C]{pub: cp, encoded: elliptic.Marshal(pub.Curve, pub.X, pub.Y)}
}

// Verify checks sig over msg. Every failure returns errors.ErrVerification.
func (k *VerifyingKey[C]) Verify(msg []byte, sig Signature[C]) error {
	p := paramsOf[C]()
	if len(sig.b) != 2*p.fieldSize {
		return cerrors.ErrVerification
	}
	r, s := sig.scalars()
	if !stdecdsa.Verify(k.pub, p.digest(msg), r, s) {
		return cerrors.ErrVerification
	}
	return nil
}

// Bytes returns the SEC1 encoding the key was built from: compressed input
// stays compressed, raw X||Y gains the 0x04 prefix. Keys derived from a
// SigningKey are uncompressed.
func (k *VerifyingKey[C]) Bytes() []byte {
	return append([]byte(nil), k.encoded...)
}

// UncompressedBytes returns the SEC1 uncompressed encoding.
func (k *VerifyingKey[C]) UncompressedBytes() []byte {
	return elliptic.Marshal(k.pub.Curve, k.pub.X, k.pub.Y)
}

// CompressedBytes returns the SEC1 compressed encoding.
func (k *VerifyingKey[C]) CompressedBytes() []byte {
	return elliptic.MarshalCompressed(k.pub.Curve, k.pub.X, k.pub.Y)
}

// Equal reports whether k and other are the same point.
func (k *VerifyingKey[C]) Equal(other *VerifyingKey[C]) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.pub.Equal(other.pub)
}

func (k *VerifyingKey[C]) String() string {
	return fmt.Sprintf("ecdsa.VerifyingKey{%s %x}", paramsOf[C]().name, k.encoded)
}

// unmarshalPoint decodes a SEC1 point, returning nil coordinates when the
// encoding is invalid or off the curve.
func unmarshalPoint(curve elliptic.Curve, encoded []byte) (x, y *big.Int) {
	if encoded[0] == 0x04 {
		return elliptic.Unmarshal(curve, encoded)
	}
	return elliptic.UnmarshalCompressed(curve, encoded)
}
