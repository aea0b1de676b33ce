package chain

import "fmt"

// SchemePrefix is the literal that introduces a php://filter stream-filter
// URI in the target runtime. The exact string is part of the external
// contract (§6); target runtimes accept only this spelling.
const SchemePrefix = "php://filter"

// Input is the immutable, already-decoded set of build inputs (§3 "Build
// state"). PREFIX/SUFFIX are raw bytes regardless of whether they were
// typed on the command line or loaded from a file — that decision is made
// by the CLI layer before Build ever sees them (§9 "instance-attribute
// staging").
type Input struct {
	Path        string
	Prefix      []byte
	Suffix      []byte
	NBytes      int
	PaddingChar byte
}

// Result is what Build hands back to the caller: the assembled URI plus the
// derived byte count actually covered, for the advisory console message
// (§6).
type Result struct {
	URI       string
	AlignedN  int
	SimpleURI bool
}

// Build runs the driver described in §4.4: it branches on whether Suffix is
// empty (simple mode, §4.5) or not (full mode, prelude through postlude,
// §4.6-§4.10), then assembles the final URI.
func Build(in Input) (*Result, error) {
	if in.NBytes < 1 {
		return nil, argumentError("nb_bytes must be >= 1, got %d", in.NBytes)
	}
	if in.PaddingChar == 0 {
		return nil, argumentError("padding character must be exactly one byte")
	}

	alignedN := alignValue(in.NBytes, 9)
	nbChunks := alignedN / 9 * 4

	p := NewPipeline()
	simple := len(in.Suffix) == 0

	if simple {
		if err := addSimplePrefix(p, in.Prefix, in.PaddingChar); err != nil {
			return nil, err
		}
	} else {
		if err := prelude(p); err != nil {
			return nil, err
		}
		if err := addSuffix(p, in.Suffix); err != nil {
			return nil, err
		}
		if err := padSuffix(p, nbChunks); err != nil {
			return nil, err
		}
		if err := addPrefix(p, in.Prefix, in.Suffix, nbChunks, in.PaddingChar); err != nil {
			return nil, err
		}
		postlude(p)
	}

	uri := fmt.Sprintf("%s/%s/resource=%s", SchemePrefix, p.String(), in.Path)

	return &Result{
		URI:       uri,
		AlignedN:  alignedN,
		SimpleURI: simple,
	}, nil
}
