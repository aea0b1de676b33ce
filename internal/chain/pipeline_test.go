package chain

import (
	"strings"
	"testing"
)

func TestPipelineAppendAndString(t *testing.T) {
	p := NewPipeline()
	p.Append(b64EncodeTok).Append(removeEqual)
	if got, want := p.String(), "convert.base64-encode|convert.iconv.855.UTF7"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}

func TestPushCharRejectsNonAlphabet(t *testing.T) {
	p := NewPipeline()
	if err := p.PushChar('!'); err == nil {
		t.Fatalf("PushChar('!') should fail")
	}
}

func TestPushCharAppendsFragmentThenCodec(t *testing.T) {
	p := NewPipeline()
	if err := p.PushChar('M'); err != nil {
		t.Fatalf("PushChar('M') error: %v", err)
	}
	s := p.String()
	if !strings.HasSuffix(s, b64Decode+"|"+b64EncodeTok) {
		t.Fatalf("pipeline %q does not end with B64D|B64E", s)
	}
	fragment, _ := Fragment('M')
	if !strings.HasPrefix(s, fragment) {
		t.Fatalf("pipeline %q does not start with catalogue fragment for 'M'", s)
	}
}

func TestPushCharSafelyAppendsRemoveEqual(t *testing.T) {
	p := NewPipeline()
	if err := p.PushCharSafely('A'); err != nil {
		t.Fatalf("PushCharSafely('A') error: %v", err)
	}
	if !strings.HasSuffix(p.String(), removeEqual) {
		t.Fatalf("pipeline %q does not end with REMOVE_EQUAL", p.String())
	}
}

// Every filter name the pipeline ever emits is one of the fixed tokens or a
// literal catalogue fragment -- no ad-hoc strings sneak in (spec.md
// Testable Properties #4).
func TestPipelineFiltersAreKnownTokens(t *testing.T) {
	known := map[string]bool{
		b64Decode: true, b64EncodeTok: true, qpEncode: true,
		removeEqual: true, swap4: true, dechunk: true,
		"convert.iconv.437.UCS-4le": true,
	}

	p := NewPipeline()
	if err := prelude(p); err != nil {
		t.Fatalf("prelude error: %v", err)
	}
	if err := addSuffix(p, []byte("end")); err != nil {
		t.Fatalf("addSuffix error: %v", err)
	}
	postlude(p)

	for _, f := range p.filters {
		if known[f] {
			continue
		}
		if _, ok := catalogueContains(f); !ok {
			t.Errorf("unexpected filter name in pipeline: %q", f)
		}
	}
}

func catalogueContains(f string) (string, bool) {
	for _, v := range catalogue {
		if v == f {
			return v, true
		}
	}
	return "", false
}
