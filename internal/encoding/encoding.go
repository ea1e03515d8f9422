// Package encoding converts binary outputs (digests, keys, signatures) to
// and from text.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	cerrors "cryptoshim/internal/errors"
)

// Name identifies a text encoding.
type Name string

const (
	Hex       Name = "hex"
	Base64    Name = "base64"
	Base64URL Name = "base64url"
	Base58    Name = "base58"
)

// Names lists the supported encodings.
func Names() []Name { return []Name{Hex, Base64, Base64URL, Base58} }

// Parse resolves an encoding name.
func Parse(name string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	switch n {
	case Hex, Base64, Base64URL, Base58:
		return n, nil
	}
	return "", cerrors.Wrapf(cerrors.ErrUnsupported, "encoding %q", name)
}

// UnmarshalText parses an encoding name with Parse.
func (n *Name) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Encode renders b in the named encoding.
func Encode(name Name, b []byte) (string, error) {
	switch name {
	case Hex:
		return hex.EncodeToString(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(b), nil
	case Base58:
		return base58.Encode(b), nil
	}
	return "", cerrors.Wrapf(cerrors.ErrUnsupported, "encoding %q", name)
}

// Decode parses s in the named encoding. Surrounding whitespace is ignored.
func Decode(name Name, s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		b   []byte
		err error
	)
	switch name {
	case Hex:
		b, err = hex.DecodeString(s)
	case Base64:
		b, err = base64.StdEncoding.DecodeString(s)
	case Base64URL:
		b, err = base64.RawURLEncoding.DecodeString(s)
	case Base58:
		b, err = base58.Decode(s)
	default:
		return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "encoding %q", name)
	}
	if err != nil {
		return nil, cerrors.Construction("%s: %v", name, err)
	}
	return b, nil
}
