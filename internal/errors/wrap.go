package errors

import "fmt"

// Wrap adds context to err. It returns nil if err is nil.
//
// Wrap must not be applied to ErrVerification on its way out of an adapter:
// verification failures leave the adapters bare.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to err. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
