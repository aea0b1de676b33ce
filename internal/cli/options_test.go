package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseArgsPositionalAndDefaults(t *testing.T) {
	opts, err := ParseArgs([]string{"/etc/passwd", "PRE", "SUF", "100"})
	if err != nil {
		t.Fatalf("ParseArgs error: %v", err)
	}
	if opts.Path != "/etc/passwd" || opts.Prefix != "PRE" || opts.Suffix != "SUF" || opts.NBytes != 100 {
		t.Fatalf("unexpected parsed options: %+v", opts)
	}
	if opts.Output != "chain.txt" {
		t.Fatalf("Output default = %q, want chain.txt", opts.Output)
	}
	if opts.Padding != "M" {
		t.Fatalf("Padding default = %q, want M", opts.Padding)
	}
}

func TestParseArgsMissingPositional(t *testing.T) {
	if _, err := ParseArgs([]string{"/etc/passwd", "PRE"}); err == nil {
		t.Fatalf("expected error for missing positional arguments")
	}
}

func TestParseArgsNonIntegerNBytes(t *testing.T) {
	if _, err := ParseArgs([]string{"/etc/passwd", "PRE", "SUF", "notanumber"}); err == nil {
		t.Fatalf("expected error for non-integer nb_bytes")
	}
}

func TestParseArgsBadPaddingCharacter(t *testing.T) {
	if _, err := ParseArgs([]string{"-padding-character", "MM", "/etc/passwd", "PRE", "SUF", "9"}); err == nil {
		t.Fatalf("expected error for multi-byte padding character")
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	prefixPath := filepath.Join(dir, "prefix.txt")
	suffixPath := filepath.Join(dir, "suffix.txt")
	if err := os.WriteFile(prefixPath, []byte("PFX"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(suffixPath, []byte("SFX"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &Options{Path: "/etc/passwd", Prefix: prefixPath, Suffix: suffixPath, NBytes: 9, Padding: "M", FromFile: true}
	resolved, err := opts.Resolve()
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if string(resolved.Prefix) != "PFX" || string(resolved.Suffix) != "SFX" {
		t.Fatalf("resolved prefix/suffix = %q/%q, want PFX/SFX", resolved.Prefix, resolved.Suffix)
	}
}

func TestResolveFromFileMissing(t *testing.T) {
	opts := &Options{Path: "/etc/passwd", Prefix: "/no/such/file", Suffix: "", NBytes: 9, Padding: "M", FromFile: true}
	if _, err := opts.Resolve(); err == nil {
		t.Fatalf("expected error reading missing prefix file")
	}
}
