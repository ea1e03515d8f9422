package ecdsa

import (
	"crypto/ecdh"
	stdecdsa "crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"fmt"
	"io"
	"math/big"
	"runtime"

	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/util/memzero"
)

// SigningKey is an ECDSA private key on curve C.
//
// The key keeps its own copy of the scalar; Destroy (or garbage collection)
// overwrites it. After Destroy every signing operation returns
// errors.ErrClosed.
type SigningKey[C Curve] struct {
	priv    *stdecdsa.PrivateKey
	pub     *stdecdsa.PublicKey
	scalar  []byte
	rand    io.Reader
	cleanup runtime.Cleanup
}

// Option configures a SigningKey.
type Option func(*options)

type options struct {
	rand io.Reader
}

// WithRand sets the randomness used for signing. The default is
// crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	return func(o *options) { o.rand = r }
}

func buildOptions(opts []Option) options {
	o := options{rand: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.Reader
	}
	return o
}

// secret is the scalar material scrubbed on Destroy or collection.
type secret struct {
	scalar []byte
	d      *big.Int
}

func (s secret) wipe() {
	memzero.Zero(s.scalar)
	memzero.BigInt(s.d)
}

func newSigningKey[C Curve](priv *stdecdsa.PrivateKey, o options) *SigningKey[C] {
	p := paramsOf[C]()
	scalar := make([]byte, p.fieldSize)
	priv.D.FillBytes(scalar)
	k := &SigningKey[C]{priv: priv, pub: &priv.PublicKey, scalar: scalar, rand: o.rand}
	k.cleanup = runtime.AddCleanup(k, secret.wipe, secret{scalar: scalar, d: priv.D})
	return k
}

// Generate creates a fresh key from rnd, or crypto/rand.Reader when rnd is
// nil.
func Generate[C Curve](rnd io.Reader, opts ...Option) (*SigningKey[C], error) {
	p := paramsOf[C]()
	if rnd == nil {
		rnd = rand.Reader
	}
	priv, err := stdecdsa.GenerateKey(p.curve, rnd)
	if err != nil {
		return nil, cerrors.RandomSource(cerrors.ErrConstruction, err)
	}
	return newSigningKey[C](priv, buildOptions(opts)), nil
}

// FromScalarBytes builds a key from a big-endian scalar of exactly
// C.FieldSize() bytes. The scalar must be in [1, n-1].
func FromScalarBytes[C Curve](sk []byte, opts ...Option) (*SigningKey[C], error) {
	p := paramsOf[C]()
	if len(sk) != p.fieldSize {
		return nil, cerrors.Construction("%s private key: want %d bytes, got %d", p.name, p.fieldSize, len(sk))
	}
	ek, err := p.ecdh.NewPrivateKey(sk)
	if err != nil {
		return nil, cerrors.Construction("%s private key: scalar out of range", p.name)
	}
	// crypto/ecdh has no signing; PKCS#8 is the supported bridge to
	// crypto/ecdsa for the same scalar.
	der, err := x509.MarshalPKCS8PrivateKey(ek)
	if err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "%s private key: %v", p.name, err)
	}
	defer memzero.Zero(der)
	return fromPKCS8[C](der, buildOptions(opts))
}

// FromKeypairBytes builds a key from a raw scalar and its public key in any
// encoding NewVerifyingKey accepts. The public key must match the scalar.
func FromKeypairBytes[C Curve](sk, pk []byte, opts ...Option) (*SigningKey[C], error) {
	vk, err := NewVerifyingKey[C](pk)
	if err != nil {
		return nil, err
	}
	k, err := FromScalarBytes[C](sk, opts...)
	if err != nil {
		return nil, err
	}
	if !k.VerifyingKey().Equal(vk) {
		k.Destroy()
		return nil, cerrors.Construction("%s keypair: public key does not match private key", paramsOf[C]().name)
	}
	return k, nil
}

// FromPKCS8DER parses a PKCS#8 DER private key. The key must be an EC key on
// curve C.
func FromPKCS8DER[C Curve](der []byte, opts ...Option) (*SigningKey[C], error) {
	return fromPKCS8[C](der, buildOptions(opts))
}

func fromPKCS8[C Curve](der []byte, o options) (*SigningKey[C], error) {
	p := paramsOf[C]()
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, cerrors.Construction("%s pkcs8: %v", p.name, err)
	}
	priv, ok := key.(*stdecdsa.PrivateKey)
	if !ok {
		memzero.PrivateKey(key)
		return nil, cerrors.Construction("%s pkcs8: not an EC key (%T)", p.name, key)
	}
	if priv.Curve != p.curve {
		name := priv.Curve.Params().Name
		memzero.PrivateKey(priv)
		return nil, cerrors.Construction("%s pkcs8: key is on %s", p.name, name)
	}
	return newSigningKey[C](priv, o), nil
}

// ToPKCS8DER encodes the key as PKCS#8 DER. The caller owns the result and
// should scrub it.
func (k *SigningKey[C]) ToPKCS8DER() ([]byte, error) {
	if k.priv == nil {
		return nil, cerrors.ErrClosed
	}
	der, err := x509.MarshalPKCS8PrivateKey(k.priv)
	if err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "%s pkcs8: %v", paramsOf[C]().name, err)
	}
	return der, nil
}

// ScalarBytes returns a copy of the big-endian private scalar.
func (k *SigningKey[C]) ScalarBytes() ([]byte, error) {
	if k.priv == nil {
		return nil, cerrors.ErrClosed
	}
	return append([]byte(nil), k.scalar...), nil
}

// ECDH returns the same scalar as a crypto/ecdh key.
func (k *SigningKey[C]) ECDH() (*ecdh.PrivateKey, error) {
	if k.priv == nil {
		return nil, cerrors.ErrClosed
	}
	ek, err := paramsOf[C]().ecdh.NewPrivateKey(k.scalar)
	if err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "ecdh: %v", err)
	}
	return ek, nil
}

// VerifyingKey returns the public half of the key. It remains available
// after Destroy.
func (k *SigningKey[C]) VerifyingKey() *VerifyingKey[C] {
	return newVerifyingKey[C](k.pub)
}

// TrySign hashes msg with the curve's hash and signs the digest.
//
// A failing random source yields an error matching both errors.ErrSigning
// and errors.ErrRandomSource.
func (k *SigningKey[C]) TrySign(msg []byte) (Signature[C], error) {
	if k.priv == nil {
		return Signature[C]{}, cerrors.ErrClosed
	}
	p := paramsOf[C]()
	rr := &trackingReader{r: k.rand}
	r, s, err := stdecdsa.Sign(rr, k.priv, p.digest(msg))
	if err != nil {
		if rr.err != nil {
			return Signature[C]{}, cerrors.RandomSource(cerrors.ErrSigning, rr.err)
		}
		return Signature[C]{}, cerrors.Wrapf(cerrors.ErrSigning, "%s: %v", p.name, err)
	}
	return newSignature[C](r, s), nil
}

// Destroy scrubs the private scalar. It is idempotent.
func (k *SigningKey[C]) Destroy() {
	if k.priv == nil {
		return
	}
	k.cleanup.Stop()
	secret{scalar: k.scalar, d: k.priv.D}.wipe()
	k.scalar = nil
	k.priv = nil
}

// Destroyed reports whether Destroy has been called.
func (k *SigningKey[C]) Destroyed() bool { return k.priv == nil }

func (k *SigningKey[C]) String() string {
	return fmt.Sprintf("ecdsa.SigningKey{%s ...}", paramsOf[C]().name)
}

// GoString keeps %#v from printing the scalar.
func (k *SigningKey[C]) GoString() string { return k.String() }

type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(b []byte) (int, error) {
	n, err := t.r.Read(b)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}
