package memzero_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoshim/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := bytes.Repeat([]byte{0xA5}, 48)
	memzero.Zero(b)
	assert.Equal(t, make([]byte, 48), b)
}

func TestZero_Empty(t *testing.T) {
	memzero.Zero(nil)
	memzero.Zero([]byte{})
}

func TestZeroAll(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5}
	memzero.ZeroAll(a, b, nil)
	assert.Equal(t, []byte{0, 0, 0}, a)
	assert.Equal(t, []byte{0, 0}, b)
}

func TestBigInt(t *testing.T) {
	n := new(big.Int).SetBytes(bytes.Repeat([]byte{0xff}, 32))
	limbs := n.Bits()
	memzero.BigInt(n)
	assert.Zero(t, n.Sign())
	for _, w := range limbs {
		assert.Zero(t, w)
	}
	memzero.BigInt(nil)
}

func TestPrivateKey(t *testing.T) {
	t.Run("ecdsa", func(t *testing.T) {
		k, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)
		limbs := k.D.Bits()
		memzero.PrivateKey(k)
		assert.Zero(t, k.D.Sign())
		for _, w := range limbs {
			assert.Zero(t, w)
		}
	})
	t.Run("ed25519", func(t *testing.T) {
		_, k, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		memzero.PrivateKey(k)
		assert.Equal(t, make([]byte, ed25519.PrivateKeySize), []byte(k))
	})
	t.Run("unknown", func(t *testing.T) {
		assert.NotPanics(t, func() {
			memzero.PrivateKey(nil)
			memzero.PrivateKey((*ecdsa.PrivateKey)(nil))
			memzero.PrivateKey("not a key")
		})
	})
}
