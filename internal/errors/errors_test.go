package errors_test

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "cryptoshim/internal/errors"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		cerrors.ErrConstruction,
		cerrors.ErrVerification,
		cerrors.ErrUnsupported,
		cerrors.ErrRandomSource,
		cerrors.ErrSigning,
		cerrors.ErrClosed,
		cerrors.ErrInternal,
	}
	for i, a := range sentinels {
		require.Error(t, a)
		assert.NotEmpty(t, a.Error())
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestConstruction(t *testing.T) {
	err := cerrors.Construction("key must be %d bytes, got %d", 32, 31)
	require.ErrorIs(t, err, cerrors.ErrConstruction)
	assert.NotErrorIs(t, err, cerrors.ErrVerification)
	assert.Contains(t, err.Error(), "key must be 32 bytes, got 31")
}

func TestRandomSource(t *testing.T) {
	err := cerrors.RandomSource(cerrors.ErrSigning, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, cerrors.ErrSigning)
	assert.ErrorIs(t, err, cerrors.ErrRandomSource)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, cerrors.ErrConstruction)
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, cerrors.Wrap(nil, "context"))
		require.NoError(t, cerrors.Wrapf(nil, "context %d", 1))
	})

	t.Run("chain is preserved", func(t *testing.T) {
		err := cerrors.Wrapf(cerrors.ErrUnsupported, "decrypt %s", "detached")
		assert.True(t, stderrors.Is(err, cerrors.ErrUnsupported))
		assert.Equal(t, "decrypt detached: unsupported operation", err.Error())
	})
}
