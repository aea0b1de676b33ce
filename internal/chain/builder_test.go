package chain

import (
	"regexp"
	"strings"
	"testing"
)

func TestBuildSimpleModeShape(t *testing.T) {
	result, err := Build(Input{
		Path:        "/tmp/a.txt",
		Prefix:      []byte("X"),
		Suffix:      nil,
		NBytes:      9,
		PaddingChar: 'M',
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !result.SimpleURI {
		t.Fatalf("expected simple-mode result")
	}

	wantPrefix := SchemePrefix + "/" + b64EncodeTok + "|" + removeEqual
	if !strings.HasPrefix(result.URI, wantPrefix) {
		t.Fatalf("URI %q does not start with %q", result.URI, wantPrefix)
	}
	if !strings.Contains(result.URI, "|"+b64Decode+"/resource=/tmp/a.txt") {
		t.Fatalf("URI %q does not end simple-mode pipeline with |B64D before resource=", result.URI)
	}
}

func TestBuildFullModeShape(t *testing.T) {
	result, err := Build(Input{
		Path:        "/etc/passwd",
		Prefix:      []byte(`{"message":"`),
		Suffix:      []byte(`"}`),
		NBytes:      200,
		PaddingChar: 'M',
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if result.SimpleURI {
		t.Fatalf("expected full-mode result")
	}
	if result.AlignedN != 207 {
		t.Fatalf("AlignedN = %d, want 207", result.AlignedN)
	}

	wantSuffix := strings.Join([]string{b64Decode, dechunk, b64Decode, b64Decode}, "|") + "/resource=/etc/passwd"
	if !strings.HasSuffix(result.URI, wantSuffix) {
		t.Fatalf("URI does not end with forged postlude + resource: %q", result.URI)
	}
}

func TestBuildAlignedN(t *testing.T) {
	cases := []struct {
		nbytes, aligned int
	}{
		{1, 9},
		{9, 9},
		{100, 108},
		{200, 207},
	}
	for _, c := range cases {
		result, err := Build(Input{
			Path: "/tmp/x", Prefix: []byte("p"), Suffix: []byte("s"),
			NBytes: c.nbytes, PaddingChar: 'M',
		})
		if err != nil {
			t.Fatalf("Build(%d) error: %v", c.nbytes, err)
		}
		if result.AlignedN != c.aligned {
			t.Errorf("Build(%d).AlignedN = %d, want %d", c.nbytes, result.AlignedN, c.aligned)
		}
	}
}

func TestBuildRejectsInvalidInputs(t *testing.T) {
	if _, err := Build(Input{Path: "x", NBytes: 0, PaddingChar: 'M'}); err == nil {
		t.Fatalf("expected error for NBytes=0")
	}
	if _, err := Build(Input{Path: "x", NBytes: 9, PaddingChar: 0}); err == nil {
		t.Fatalf("expected error for zero-value padding char")
	}
}

// The assembled URI contains no whitespace (part of spec.md Testable
// Properties #3).
func TestBuildURIHasNoWhitespace(t *testing.T) {
	result, err := Build(Input{
		Path: "/tmp/x", Prefix: []byte("p"), Suffix: []byte("s"),
		NBytes: 18, PaddingChar: 'M',
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if regexp.MustCompile(`\s`).MatchString(result.URI) {
		t.Fatalf("URI contains whitespace: %q", result.URI)
	}
}

func TestBuildDeterministic(t *testing.T) {
	in := Input{
		Path: "/etc/passwd", Prefix: []byte("<a>"), Suffix: []byte("</a>"),
		NBytes: 50, PaddingChar: 'M',
	}
	r1, err := Build(in)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	r2, err := Build(in)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if r1.URI != r2.URI {
		t.Fatalf("Build is not deterministic:\n%q\n%q", r1.URI, r2.URI)
	}
}

func TestBuildEmptyFileSimpleMode(t *testing.T) {
	result, err := Build(Input{
		Path: "/tmp/empty", Prefix: nil, Suffix: nil, NBytes: 9, PaddingChar: 'M',
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !strings.HasSuffix(result.URI, "|"+b64Decode+"/resource=/tmp/empty") {
		t.Fatalf("URI %q should end with |convert.base64-decode/resource=...", result.URI)
	}
}
