package reader

import (
	"testing"

	"github.com/malcore/golisp/pkg/types"
)

func TestReadRoundtrip(t *testing.T) {
	tests := []string{
		"1",
		"1.5",
		"-3",
		"nil",
		"true",
		"false",
		"foo",
		":foo",
		`"hello"`,
		"(1 2 3)",
		"[1 2 3]",
		"{\"a\" 1}",
		"(+ 1 (* 2 3))",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			form, ok, err := Read(src)
			if err != nil {
				t.Fatalf("Read(%q) error: %v", src, err)
			}
			if !ok {
				t.Fatalf("Read(%q) returned ok=false", src)
			}
			if got := PrStr(form, true); got != src {
				t.Errorf("roundtrip: Read(%q) -> PrStr = %q", src, got)
			}
		})
	}
}

func TestReadBlankInput(t *testing.T) {
	_, ok, err := Read("   ; just a comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for blank input")
	}
}

func TestReaderMacros(t *testing.T) {
	tests := map[string]string{
		"'a":    "(quote a)",
		"`a":    "(quasiquote a)",
		"~a":    "(unquote a)",
		"~@a":   "(splice-unquote a)",
		"@a":    "(deref a)",
	}
	for src, want := range tests {
		form, ok, err := Read(src)
		if err != nil || !ok {
			t.Fatalf("Read(%q) = %v, %v, %v", src, form, ok, err)
		}
		if got := PrStr(form, true); got != want {
			t.Errorf("Read(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestUnmatchedParenIsParseError(t *testing.T) {
	_, _, err := Read("(1 2")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*types.ParseError); !ok {
		t.Fatalf("expected *types.ParseError, got %T", err)
	}
}

func TestStringEscapes(t *testing.T) {
	form, ok, err := Read(`"line1\nline2"`)
	if err != nil || !ok {
		t.Fatalf("Read error: %v", err)
	}
	s, ok := form.(types.StringValue)
	if !ok {
		t.Fatalf("expected StringValue, got %T", form)
	}
	if string(s) != "line1\nline2" {
		t.Errorf("got %q", string(s))
	}
}

func TestPrStrDisplayVsReadable(t *testing.T) {
	form := types.NewList(types.StringValue("hi\nthere"))
	if got := PrStr(form, true); got != `("hi\nthere")` {
		t.Errorf("readable = %q", got)
	}
	if got := PrStr(form, false); got != "(hi\nthere)" {
		t.Errorf("display = %q", got)
	}
}
