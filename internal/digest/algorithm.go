package digest

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is offered for legacy interop only
	"crypto/sha512"
	"hash"
	"sort"

	sha256 "github.com/minio/sha256-simd"

	cerrors "cryptoshim/internal/errors"
)

// Algorithm describes one supported hash function. Values are immutable and
// shared process-wide.
type Algorithm struct {
	name      string
	blockSize int
	size      int
	newHash   func() hash.Hash
}

// Name returns the registry name, e.g. "sha256".
func (a *Algorithm) Name() string { return a.name }

// BlockSize returns the compression block length in bytes.
func (a *Algorithm) BlockSize() int { return a.blockSize }

// Size returns the digest length in bytes.
func (a *Algorithm) Size() int { return a.size }

func (a *Algorithm) String() string { return a.name }

var (
	// SHA1 is SHA-1. Do not use it for new designs.
	SHA1 = &Algorithm{name: "sha1", blockSize: 64, size: 20, newHash: sha1.New}
	// SHA256 is SHA-256.
	SHA256 = &Algorithm{name: "sha256", blockSize: 64, size: 32, newHash: sha256.New}
	// SHA384 is SHA-384.
	SHA384 = &Algorithm{name: "sha384", blockSize: 128, size: 48, newHash: sha512.New384}
	// SHA512 is SHA-512.
	SHA512 = &Algorithm{name: "sha512", blockSize: 128, size: 64, newHash: sha512.New}
	// SHA512_256 is SHA-512/256.
	SHA512_256 = &Algorithm{name: "sha512-256", blockSize: 128, size: 32, newHash: sha512.New512_256}
)

var registry = map[string]*Algorithm{
	SHA1.name:       SHA1,
	SHA256.name:     SHA256,
	SHA384.name:     SHA384,
	SHA512.name:     SHA512,
	SHA512_256.name: SHA512_256,
}

// Lookup resolves an algorithm by name.
func Lookup(name string) (*Algorithm, error) {
	alg, ok := registry[name]
	if !ok {
		return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "digest %q", name)
	}
	return alg, nil
}

// Algorithms lists the registered names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
