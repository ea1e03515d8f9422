package digest_test

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // reference implementation for the SHA-1 adapter
	stdsha256 "crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoshim/internal/digest"
	cerrors "cryptoshim/internal/errors"
)

var all = []*digest.Algorithm{digest.SHA1, digest.SHA256, digest.SHA384, digest.SHA512, digest.SHA512_256}

func reference(alg *digest.Algorithm, data []byte) []byte {
	switch alg {
	case digest.SHA1:
		s := sha1.Sum(data) //nolint:gosec
		return s[:]
	case digest.SHA256:
		s := stdsha256.Sum256(data)
		return s[:]
	case digest.SHA384:
		s := sha512.Sum384(data)
		return s[:]
	case digest.SHA512:
		s := sha512.Sum512(data)
		return s[:]
	case digest.SHA512_256:
		s := sha512.Sum512_256(data)
		return s[:]
	}
	panic("unknown algorithm")
}

func TestSizes(t *testing.T) {
	tests := []struct {
		alg       *digest.Algorithm
		blockSize int
		size      int
	}{
		{digest.SHA1, 64, 20},
		{digest.SHA256, 64, 32},
		{digest.SHA384, 128, 48},
		{digest.SHA512, 128, 64},
		{digest.SHA512_256, 128, 32},
	}
	for _, tc := range tests {
		t.Run(tc.alg.Name(), func(t *testing.T) {
			assert.Equal(t, tc.blockSize, tc.alg.BlockSize())
			assert.Equal(t, tc.size, tc.alg.Size())

			s := digest.New(tc.alg)
			assert.Equal(t, tc.blockSize, s.BlockSize())
			assert.Equal(t, tc.size, s.Size())
			assert.Len(t, s.Finalize(), tc.size)
		})
	}
}

func TestKnownAnswer_SHA256(t *testing.T) {
	got := digest.Sum(digest.SHA256, []byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(got))
}

func TestMatchesReference(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("abc"),
		bytes.Repeat([]byte{0x61}, 1000),
		bytes.Repeat([]byte("0123456789abcdef"), 129),
	}
	for _, alg := range all {
		for i, in := range inputs {
			t.Run(fmt.Sprintf("%s/%d", alg.Name(), i), func(t *testing.T) {
				s := digest.New(alg)
				// feed in uneven chunks to exercise buffering
				for off := 0; off < len(in); off += 7 {
					end := min(off+7, len(in))
					s.Update(in[off:end])
				}
				assert.Equal(t, reference(alg, in), s.Finalize())
			})
		}
	}
}

func TestFinalizeReset_NoCrossContamination(t *testing.T) {
	for _, alg := range all {
		t.Run(alg.Name(), func(t *testing.T) {
			s := digest.New(alg)
			s.Update([]byte("first message"))
			first := s.FinalizeReset()
			assert.Equal(t, reference(alg, []byte("first message")), first)

			s.Update([]byte("second"))
			assert.Equal(t, digest.Sum(alg, []byte("second")), s.Finalize())
		})
	}
}

func TestReset(t *testing.T) {
	for _, alg := range all {
		t.Run(alg.Name(), func(t *testing.T) {
			s := digest.New(alg)
			s.Update([]byte("discard me"))
			s.Reset()
			s.Update([]byte("keep"))
			assert.Equal(t, reference(alg, []byte("keep")), s.Finalize())
		})
	}
}

func TestFinalize_Consumes(t *testing.T) {
	s := digest.New(digest.SHA256)
	s.Update([]byte("x"))
	require.NotNil(t, s.Finalize())
	assert.True(t, s.Consumed())

	s.Update([]byte("ignored"))
	assert.Nil(t, s.Finalize())
	assert.Nil(t, s.FinalizeReset())

	n, err := s.Write([]byte("y"))
	assert.Zero(t, n)
	require.ErrorIs(t, err, cerrors.ErrClosed)

	_, err = s.Clone()
	require.ErrorIs(t, err, cerrors.ErrClosed)

	s.Reset()
	assert.False(t, s.Consumed())
	assert.Equal(t, reference(digest.SHA256, nil), s.Finalize())
}

func TestClone(t *testing.T) {
	for _, alg := range all {
		t.Run(alg.Name(), func(t *testing.T) {
			s := digest.New(alg)
			s.Update([]byte("shared prefix "))

			c, err := s.Clone()
			require.NoError(t, err)

			s.Update([]byte("left"))
			c.Update([]byte("right"))

			assert.Equal(t, reference(alg, []byte("shared prefix left")), s.Finalize())
			assert.Equal(t, reference(alg, []byte("shared prefix right")), c.Finalize())
		})
	}
}

func TestWriter(t *testing.T) {
	s := digest.New(digest.SHA512)
	n, err := io.Copy(s, strings.NewReader("streamed input"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("streamed input")), n)
	assert.Equal(t, reference(digest.SHA512, []byte("streamed input")), s.Finalize())
}

func TestLookup(t *testing.T) {
	for _, name := range digest.Algorithms() {
		alg, err := digest.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, alg.Name())
	}
	assert.Equal(t, []string{"sha1", "sha256", "sha384", "sha512", "sha512-256"}, digest.Algorithms())

	_, err := digest.Lookup("md5")
	require.ErrorIs(t, err, cerrors.ErrUnsupported)
}

func TestState_Opaque(t *testing.T) {
	s := digest.New(digest.SHA384)
	s.Update([]byte("secret-ish input"))
	assert.Equal(t, "digest.State{sha384 ...}", fmt.Sprintf("%v", s))
	assert.Equal(t, "digest.State{sha384 ...}", fmt.Sprintf("%#v", s))
}
