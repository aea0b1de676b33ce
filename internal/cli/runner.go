package cli

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/utils/errkit"

	"wrapforge/internal/chain"
	"wrapforge/internal/utils/logger"
)

// Run parses argv, builds the filter chain, and writes it to the output
// file, emitting the advisory console messages named in §6. It returns a
// non-zero-exit-worthy error on argument, I/O, or catalogue-contract
// failures; Main (cmd/wrapforge) turns that into the process exit code.
func Run(argv []string) error {
	opts, err := ParseArgs(argv)
	if err != nil {
		return err
	}

	logger.SetVerbose(opts.Verbose)

	resolved, err := opts.Resolve()
	if err != nil {
		return err
	}

	result, err := chain.Build(chain.Input{
		Path:        resolved.Path,
		Prefix:      resolved.Prefix,
		Suffix:      resolved.Suffix,
		NBytes:      resolved.NBytes,
		PaddingChar: resolved.PaddingChar,
	})
	if err != nil {
		return err
	}

	if !result.SimpleURI {
		logger.LogInfo("Dumping %d bytes from %s.", result.AlignedN, resolved.Path)
	}

	if err := writeOutput(opts.Output, result.URI); err != nil {
		return err
	}

	logger.LogSuccess("Wrote filter chain to %s (size=%d).", opts.Output, len(result.URI))
	return nil
}

// writeOutput writes the payload atomically: built fully in memory above,
// written to a temporary file beside path, then renamed into place, so the
// output file is either complete or absent (§7's "no partial-output
// behaviour").
func writeOutput(path, payload string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wrapforge-*")
	if err == nil {
		_, err = tmp.WriteString(payload)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err == nil {
			err = os.Chmod(tmp.Name(), 0o644)
		}
		if err == nil {
			err = os.Rename(tmp.Name(), path)
		}
		if err != nil {
			os.Remove(tmp.Name())
		}
	}
	if err != nil {
		errx := errkit.FromError(err)
		errx.ResetKind().SetKind(ErrKindIO)
		return errkit.WithMessagef(errx.Build(), "failed to write output file %s", path)
	}
	return nil
}
