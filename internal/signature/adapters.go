package signature

import (
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/signature/ecdsa"
	"cryptoshim/internal/signature/ed25519"
)

type edSigner struct {
	k *ed25519.SigningKey
}

func (s edSigner) Scheme() Scheme { return Ed25519 }

func (s edSigner) Sign(msg []byte) ([]byte, error) {
	sig, err := s.k.TrySign(msg)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}

func (s edSigner) Verifier() Verifier     { return edVerifier{s.k.VerifyingKey()} }
func (s edSigner) PublicKeyBytes() []byte { return s.Verifier().PublicKeyBytes() }
func (s edSigner) PKCS8() ([]byte, error) { return s.k.ToPKCS8DER() }
func (s edSigner) Destroy()               { s.k.Destroy() }

type edVerifier struct {
	vk *ed25519.VerifyingKey
}

func (v edVerifier) Scheme() Scheme { return Ed25519 }

func (v edVerifier) PublicKeyBytes() []byte {
	pk := v.vk.Bytes()
	return pk[:]
}

func (v edVerifier) Verify(msg, sig []byte) error {
	s, err := ed25519.SignatureFromSlice(sig)
	if err != nil {
		return cerrors.ErrVerification
	}
	return v.vk.Verify(msg, s)
}

type ecSigner[C ecdsa.Curve] struct {
	k      *ecdsa.SigningKey[C]
	scheme Scheme
}

func (s ecSigner[C]) Scheme() Scheme { return s.scheme }

func (s ecSigner[C]) Sign(msg []byte) ([]byte, error) {
	sig, err := s.k.TrySign(msg)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

func (s ecSigner[C]) Verifier() Verifier {
	return ecVerifier[C]{s.k.VerifyingKey(), s.scheme}
}

func (s ecSigner[C]) PublicKeyBytes() []byte { return s.k.VerifyingKey().UncompressedBytes() }
func (s ecSigner[C]) PKCS8() ([]byte, error) { return s.k.ToPKCS8DER() }
func (s ecSigner[C]) Destroy()               { s.k.Destroy() }

type ecVerifier[C ecdsa.Curve] struct {
	vk     *ecdsa.VerifyingKey[C]
	scheme Scheme
}

func (v ecVerifier[C]) Scheme() Scheme { return v.scheme }

// PublicKeyBytes is always SEC1 uncompressed, so fingerprints do not depend
// on the encoding the key arrived in.
func (v ecVerifier[C]) PublicKeyBytes() []byte { return v.vk.UncompressedBytes() }

func (v ecVerifier[C]) Verify(msg, sig []byte) error {
	s, err := ecdsa.SignatureFromBytes[C](sig)
	if err != nil {
		return cerrors.ErrVerification
	}
	return v.vk.Verify(msg, s)
}
