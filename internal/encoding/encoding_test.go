package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoshim/internal/encoding"
	cerrors "cryptoshim/internal/errors"
)

func TestEncode_Known(t *testing.T) {
	in := []byte("hello world")
	tests := []struct {
		name encoding.Name
		want string
	}{
		{encoding.Hex, "68656c6c6f20776f726c64"},
		{encoding.Base64, "aGVsbG8gd29ybGQ="},
		{encoding.Base64URL, "aGVsbG8gd29ybGQ"},
		{encoding.Base58, "StV1DL6CwTryKyV"},
	}
	for _, tc := range tests {
		t.Run(string(tc.name), func(t *testing.T) {
			got, err := encoding.Encode(tc.name, in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := encoding.Decode(tc.name, " "+got+"\n")
			require.NoError(t, err)
			assert.Equal(t, in, back)
		})
	}
}

func TestRoundTrip_Binary(t *testing.T) {
	in := []byte{0x00, 0x00, 0xff, 0xfe, 0x10, 0x80}
	for _, name := range encoding.Names() {
		t.Run(string(name), func(t *testing.T) {
			s, err := encoding.Encode(name, in)
			require.NoError(t, err)
			back, err := encoding.Decode(name, s)
			require.NoError(t, err)
			assert.Equal(t, in, back)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for name, s := range map[encoding.Name]string{
		encoding.Hex:       "abc",
		encoding.Base64:    "!!!",
		encoding.Base64URL: "a+b/",
		encoding.Base58:    "0OIl",
	} {
		_, err := encoding.Decode(name, s)
		assert.ErrorIs(t, err, cerrors.ErrConstruction, string(name))
	}
}

func TestParse(t *testing.T) {
	n, err := encoding.Parse(" Base58 ")
	require.NoError(t, err)
	assert.Equal(t, encoding.Base58, n)

	_, err = encoding.Parse("base32")
	assert.ErrorIs(t, err, cerrors.ErrUnsupported)
	_, err = encoding.Encode("base32", nil)
	assert.ErrorIs(t, err, cerrors.ErrUnsupported)
	_, err = encoding.Decode("base32", "")
	assert.ErrorIs(t, err, cerrors.ErrUnsupported)
}
