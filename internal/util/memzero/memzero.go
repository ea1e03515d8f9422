// Package memzero scrubs secret buffers.
package memzero

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/subtle"
	"math/big"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(b)
}

// ZeroAll scrubs every buffer in bs.
func ZeroAll(bs ...[]byte) {
	for _, b := range bs {
		Zero(b)
	}
}

// BigInt clears the limbs backing n and sets it to zero.
func BigInt(n *big.Int) {
	if n == nil {
		return
	}
	clear(n.Bits())
	n.SetInt64(0)
	runtime.KeepAlive(n)
}

// PrivateKey scrubs a private key returned by a parser such as
// x509.ParsePKCS8PrivateKey. Key types it does not know are left alone.
func PrivateKey(key any) {
	switch k := key.(type) {
	case *ecdsa.PrivateKey:
		if k != nil {
			BigInt(k.D)
		}
	case ed25519.PrivateKey:
		Zero(k)
	}
}
