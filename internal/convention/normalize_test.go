package convention

import (
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	in := "ligne 1  \r\n\r\n\r\nligne 2   avec\ttabs  "
	got := Normalize(in)
	want := "ligne 1\n\nligne 2 avec tabs"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  a \n b\t\tc "); got != "a b c" {
		t.Errorf("CollapseSpaces = %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("court", 100); got != "court" {
		t.Errorf("short string must pass through, got %q", got)
	}
	long := ""
	for i := 0; i < 120; i++ {
		long += "é" // multi-byte on purpose
	}
	got := TruncateRunes(long, 100)
	if n := utf8.RuneCountInString(got); n != 100 {
		t.Errorf("truncated to %d runes, want 100", n)
	}
	if got[len(got)-len("…"):] != "…" {
		t.Errorf("missing ellipsis marker: %q", got)
	}
}

func TestCleanPhone(t *testing.T) {
	if got := CleanPhone("+33 (0)3.83-12/34.56"); got != "+33 038312/3456" {
		t.Errorf("CleanPhone = %q", got)
	}
}
