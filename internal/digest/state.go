package digest

import (
	"encoding"
	"fmt"
	"hash"

	cerrors "cryptoshim/internal/errors"
)

// State is a streaming hash context for one Algorithm.
type State struct {
	alg      *Algorithm
	h        hash.Hash
	consumed bool
}

// New returns an empty State for alg.
func New(alg *Algorithm) *State {
	return &State{alg: alg, h: alg.newHash()}
}

// Sum hashes data in one shot.
func Sum(alg *Algorithm, data []byte) []byte {
	s := New(alg)
	s.Update(data)
	return s.Finalize()
}

// Algorithm returns the descriptor this State was built from.
func (s *State) Algorithm() *Algorithm { return s.alg }

// BlockSize returns the algorithm block length in bytes.
func (s *State) BlockSize() int { return s.alg.blockSize }

// Size returns the digest length in bytes.
func (s *State) Size() int { return s.alg.size }

// Consumed reports whether Finalize has been called.
func (s *State) Consumed() bool { return s.consumed }

// Update appends data to the hashed input. It is ignored on a consumed State.
func (s *State) Update(data []byte) {
	if s.consumed {
		return
	}
	// hash.Hash.Write never returns an error.
	_, _ = s.h.Write(data)
}

// Write implements io.Writer so a State can sit behind io.Copy.
func (s *State) Write(p []byte) (int, error) {
	if s.consumed {
		return 0, cerrors.ErrClosed
	}
	s.Update(p)
	return len(p), nil
}

// Finalize returns the digest and consumes the State. A second call returns
// nil.
func (s *State) Finalize() []byte {
	if s.consumed {
		return nil
	}
	out := s.h.Sum(nil)
	s.consumed = true
	s.h = nil
	return out
}

// FinalizeReset returns the digest and leaves the State empty, as if freshly
// built by New.
func (s *State) FinalizeReset() []byte {
	if s.consumed {
		return nil
	}
	old := s.take()
	return old.Sum(nil)
}

// Reset discards accumulated input. A consumed State becomes live again.
func (s *State) Reset() {
	s.take()
	s.consumed = false
}

// take swaps in a fresh provider context and returns the previous one.
func (s *State) take() hash.Hash {
	old := s.h
	s.h = s.alg.newHash()
	return old
}

// Clone duplicates the accumulated state. The copy evolves independently of
// the original.
func (s *State) Clone() (*State, error) {
	if s.consumed {
		return nil, cerrors.ErrClosed
	}
	m, ok := s.h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "%s: clone", s.alg.name)
	}
	snapshot, err := m.MarshalBinary()
	if err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "%s: snapshot: %v", s.alg.name, err)
	}
	h := s.alg.newHash()
	u, ok := h.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, cerrors.Wrapf(cerrors.ErrUnsupported, "%s: clone", s.alg.name)
	}
	if err := u.UnmarshalBinary(snapshot); err != nil {
		return nil, cerrors.Wrapf(cerrors.ErrInternal, "%s: restore: %v", s.alg.name, err)
	}
	return &State{alg: s.alg, h: h}, nil
}

// String is opaque; hash state is never printed.
func (s *State) String() string {
	return fmt.Sprintf("digest.State{%s ...}", s.alg.name)
}

// GoString is opaque; hash state is never printed.
func (s *State) GoString() string { return s.String() }
