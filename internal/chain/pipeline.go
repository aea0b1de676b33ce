package chain

import "strings"

// Fixed filter tokens (§3 "Filter name").
const (
	b64Decode    = "convert.base64-decode"
	b64EncodeTok = "convert.base64-encode"
	qpEncode     = "convert.quoted-printable-encode"
	removeEqual  = "convert.iconv.855.UTF7"
	swap4        = "convert.iconv.UCS-4.UCS-4LE"
	dechunk      = "dechunk"
)

// Pipeline is the ordered, append-only sequence of filter names that makes
// up a php://filter chain (§3 "Pipeline"). Filters are never reordered or
// removed, only appended; String joins them with '|'.
type Pipeline struct {
	filters []string
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Append adds a single filter name (which may itself be a '|'-joined chain,
// as the catalogue fragments are) to the end of the pipeline.
func (p *Pipeline) Append(filter string) *Pipeline {
	p.filters = append(p.filters, filter)
	return p
}

// String joins the pipeline's filters with '|'.
func (p *Pipeline) String() string {
	return strings.Join(p.filters, "|")
}

// Len reports how many filter-name entries have been appended so far.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// PushChar appends fragment(c) | B64D | B64E, which prepends byte c to the
// pipeline's eventual decoded output modulo base64 alignment artefacts
// (§4.3). Returns an error if c is not in the base64 alphabet (§4.1's
// contract: callers must only look up characters present in the alphabet).
func (p *Pipeline) PushChar(c byte) error {
	fragment, ok := Fragment(c)
	if !ok {
		return catalogueViolation(c)
	}
	p.Append(fragment)
	p.Append(b64Decode)
	p.Append(b64EncodeTok)
	return nil
}

// PushCharSafely is PushChar followed by REMOVE_EQUAL, which strips any '='
// padding characters the push introduced (§4.3).
func (p *Pipeline) PushCharSafely(c byte) error {
	if err := p.PushChar(c); err != nil {
		return err
	}
	p.Append(removeEqual)
	return nil
}

// pushCharsSafely pushes each byte of s in reverse order via
// PushCharSafely. Reverse order is required because each push prepends to
// the currently accumulated stream, so iterating in reverse yields
// forward-order output (§4.5).
func (p *Pipeline) pushCharsSafely(s []byte) error {
	for i := len(s) - 1; i >= 0; i-- {
		if err := p.PushCharSafely(s[i]); err != nil {
			return err
		}
	}
	return nil
}
