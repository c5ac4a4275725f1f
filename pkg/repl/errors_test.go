package repl

import (
	"strings"
	"testing"

	"github.com/malcore/golisp/pkg/types"
)

func TestFormatErrorCategorizesParseError(t *testing.T) {
	formatter := NewErrorFormatter()
	err := types.NewParseError("unexpected ')'", types.Position{Line: 1, Column: 5})
	out := formatter.FormatError(err)
	if !strings.Contains(out, "Syntax Error") {
		t.Errorf("expected Syntax Error category, got %q", out)
	}
	if !strings.Contains(out, "line 1, column 5") {
		t.Errorf("expected location info, got %q", out)
	}
}

func TestFormatErrorCategorizesUndefinedSymbol(t *testing.T) {
	formatter := NewErrorFormatter()
	err := types.NewEvalError("'foo' not found")
	out := formatter.FormatError(err)
	if !strings.Contains(out, "Undefined Symbol") {
		t.Errorf("expected Undefined Symbol category, got %q", out)
	}
}

func TestFormatErrorSuggestion(t *testing.T) {
	formatter := NewErrorFormatter()
	err := types.NewEvalError("division by zero")
	out := formatter.FormatErrorWithSuggestion(err)
	if !strings.Contains(out, "Suggestion") {
		t.Errorf("expected a suggestion, got %q", out)
	}
}
