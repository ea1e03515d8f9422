// Package errors defines the failure categories shared by every cryptoshim
// adapter.
//
// Callers branch on categories with errors.Is. Two classes matter most:
// ErrConstruction means the caller's input was malformed (wrong length, bad
// encoding, bad DER, point not on curve), while ErrVerification means the
// input was well formed but did not verify. ErrVerification is always
// returned bare, with no annotation, so a failed tag check and a failed
// signature check are indistinguishable from one another and from any other
// verification failure.
//
// This package MUST NOT import any other internal package.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction indicates malformed key material or encodings detected
	// while building an adapter value.
	ErrConstruction = errors.New("malformed input")

	// ErrVerification indicates that a tag or signature did not verify.
	ErrVerification = errors.New("verification failed")

	// ErrUnsupported indicates an operation the underlying provider cannot
	// perform. It is never silently substituted.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrRandomSource indicates that the secure random source failed.
	ErrRandomSource = errors.New("random source failure")

	// ErrSigning indicates that the provider refused to produce a signature.
	ErrSigning = errors.New("signing failed")

	// ErrClosed indicates use of a value whose secret material was scrubbed.
	ErrClosed = errors.New("use of destroyed key material")

	// ErrInternal indicates that a provider result broke an invariant the
	// adapter depends on.
	ErrInternal = errors.New("internal provider error")
)

// Construction returns an error matching ErrConstruction with the formatted
// detail attached. Detail must never contain secret bytes.
func Construction(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstruction, fmt.Sprintf(format, args...))
}

// RandomSource joins ErrRandomSource and the given category with the
// underlying reader error.
func RandomSource(category, err error) error {
	return fmt.Errorf("%w: %w: %w", category, ErrRandomSource, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }
