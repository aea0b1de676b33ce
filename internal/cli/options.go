package cli

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/utils/errkit"
)

// ErrKindArgument classifies a bad-argument failure at the CLI boundary,
// mirroring internal/chain's error kinds for the same three failure
// classes named in the tool's contract.
var ErrKindArgument = errkit.NewPrimitiveErrKind(
	"error-wrapforge-cli-argument",
	"error wrapforge cli argument",
	nil,
)

// Options holds the parsed, validated command-line surface (§6). Path,
// NBytes and the raw Prefix/Suffix/FromFile/Padding values come straight
// off argv and are left as parsed; Resolve returns a separate ResolvedInput
// holding the file contents when FromFile is set, consistent with the
// immutable-input-record split called for in SPEC_FULL.md / spec.md §9.
type Options struct {
	Path     string
	Prefix   string
	Suffix   string
	NBytes   int
	Output   string
	Padding  string
	FromFile bool
	Verbose  bool
}

func argError(format string, args ...interface{}) error {
	return errkit.New(fmt.Sprintf(format, args...)).
		SetKind(ErrKindArgument).
		Build()
}

// setDefaults fills in the documented defaults for options left unset by
// the flag parser (§6): output defaults to chain.txt, padding defaults to
// 'M'.
func (o *Options) setDefaults() {
	if o.Output == "" {
		o.Output = "chain.txt"
	}
	if o.Padding == "" {
		o.Padding = "M"
	}
}

// validate checks the argument-error class of failures named in §7.1 that
// remain after ParseArgs: an empty path, nb_bytes below 1, and a padding
// character that isn't exactly one byte. Missing positional args and a
// non-integer nb_bytes are rejected by ParseArgs before validate runs.
func (o *Options) validate() error {
	if o.Path == "" {
		return argError("path is required")
	}
	if o.NBytes < 1 {
		return argError("nb_bytes must be a positive integer, got %d", o.NBytes)
	}
	if len(o.Padding) != 1 {
		return argError("padding-character must be exactly one byte, got %q", o.Padding)
	}
	return nil
}

// ResolvedInput is PREFIX/SUFFIX after the from-file indirection named in
// §4.4 has been applied, and the single-byte padding character decoded.
type ResolvedInput struct {
	Path        string
	Prefix      []byte
	Suffix      []byte
	NBytes      int
	PaddingChar byte
}

// Resolve loads PREFIX/SUFFIX from disk when FromFile is set (§4.4), or
// uses their literal string values otherwise, and returns the byte-typed
// input chain.Build expects.
func (o *Options) Resolve() (*ResolvedInput, error) {
	prefix := []byte(o.Prefix)
	suffix := []byte(o.Suffix)

	if o.FromFile {
		var err error
		prefix, err = readFileBytes(o.Prefix)
		if err != nil {
			return nil, err
		}
		suffix, err = readFileBytes(o.Suffix)
		if err != nil {
			return nil, err
		}
	}

	return &ResolvedInput{
		Path:        o.Path,
		Prefix:      prefix,
		Suffix:      suffix,
		NBytes:      o.NBytes,
		PaddingChar: o.Padding[0],
	}, nil
}

func readFileBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		errx := errkit.FromError(err)
		errx.ResetKind().SetKind(ErrKindIO)
		return nil, errkit.WithMessagef(errx.Build(), "failed to read %s", path)
	}
	return data, nil
}

// ErrKindIO classifies an I/O failure reading the prefix/suffix files or
// writing the output file (§7.2).
var ErrKindIO = errkit.NewPrimitiveErrKind(
	"error-wrapforge-cli-io",
	"error wrapforge cli io",
	nil,
)
