package chain

import (
	"fmt"

	"github.com/projectdiscovery/utils/errkit"
)

// Error kinds for the three failure classes named by the tool's contract:
// bad arguments, I/O failures, and catalogue contract violations (a byte
// outside the base64 alphabet reaching a push).
var (
	ErrKindArgument = errkit.NewPrimitiveErrKind(
		"error-wrapforge-argument",
		"error wrapforge argument",
		nil,
	)

	ErrKindIO = errkit.NewPrimitiveErrKind(
		"error-wrapforge-io",
		"error wrapforge io",
		nil,
	)

	ErrKindCatalogue = errkit.NewPrimitiveErrKind(
		"error-wrapforge-catalogue",
		"error wrapforge catalogue",
		nil,
	)
)

// catalogueViolation builds a loud, diagnostic error for §4.1's contract:
// push_char must only ever be called with a byte from the base64 alphabet.
func catalogueViolation(c byte) error {
	return errkit.New(fmt.Sprintf("byte %q (0x%02x) is not a base64 alphabet character", c, c)).
		SetKind(ErrKindCatalogue).
		Build()
}

// argumentError wraps an argument-validation failure (missing positional
// argument, non-integer nb_bytes, padding character not exactly one byte).
func argumentError(format string, args ...interface{}) error {
	return errkit.New(fmt.Sprintf(format, args...)).
		SetKind(ErrKindArgument).
		Build()
}

// ioError wraps an I/O failure reading a prefix/suffix file or writing the
// output file, preserving the underlying cause while tagging it with
// ErrKindIO.
func ioError(cause error, format string, args ...interface{}) error {
	errx := errkit.FromError(cause)
	errx.ResetKind().SetKind(ErrKindIO)
	return errkit.WithMessagef(errx.Build(), format, args...)
}
