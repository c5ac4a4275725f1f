package repl

import (
	"strings"

	"github.com/fatih/color"

	"github.com/malcore/golisp/pkg/types"
)

// ErrorCategory groups errors for color coding at the REPL boundary.
type ErrorCategory int

const (
	CategorySyntax ErrorCategory = iota
	CategoryRuntime
	CategoryUndefined
	CategoryType
	CategoryGeneral
)

// ErrorFormatter renders errors with a category label and color, switching
// on the evaluator's three error kinds (ParseError, EvalError, Exception).
type ErrorFormatter struct {
	syntaxColor    *color.Color
	runtimeColor   *color.Color
	undefinedColor *color.Color
	typeColor      *color.Color
	generalColor   *color.Color
	prefixColor    *color.Color
	locationColor  *color.Color
}

func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		syntaxColor:    color.New(color.FgRed, color.Bold),
		runtimeColor:   color.New(color.FgMagenta, color.Bold),
		undefinedColor: color.New(color.FgYellow, color.Bold),
		typeColor:      color.New(color.FgCyan, color.Bold),
		generalColor:   color.New(color.FgWhite, color.Bold),
		prefixColor:    color.New(color.FgRed, color.Bold),
		locationColor:  color.New(color.FgHiBlue, color.Bold),
	}
}

func (ef *ErrorFormatter) categorize(err error) (ErrorCategory, string) {
	switch e := err.(type) {
	case *types.ParseError:
		return CategorySyntax, "Syntax Error"
	case *types.Exception:
		return CategoryGeneral, "Exception"
	case *types.EvalError:
		return ef.categorizeMessage(e.Message)
	default:
		return ef.categorizeMessage(err.Error())
	}
}

func (ef *ErrorFormatter) categorizeMessage(msg string) (ErrorCategory, string) {
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "not found") {
		return CategoryUndefined, "Undefined Symbol"
	}
	if strings.Contains(lower, "requires") || strings.Contains(lower, "wrong number") ||
		strings.Contains(lower, "cannot call") {
		return CategoryType, "Type Error"
	}
	if strings.Contains(lower, "division by zero") || strings.Contains(lower, "out of bounds") ||
		strings.Contains(lower, "out of range") {
		return CategoryRuntime, "Runtime Error"
	}
	return CategoryGeneral, "Error"
}

func (ef *ErrorFormatter) colorFor(cat ErrorCategory) *color.Color {
	switch cat {
	case CategorySyntax:
		return ef.syntaxColor
	case CategoryRuntime:
		return ef.runtimeColor
	case CategoryUndefined:
		return ef.undefinedColor
	case CategoryType:
		return ef.typeColor
	default:
		return ef.generalColor
	}
}

// FormatError renders err with a colored category prefix. Parse errors
// additionally get a line/column location.
func (ef *ErrorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	cat, label := ef.categorize(err)
	errColor := ef.colorFor(cat)
	prefix := ef.prefixColor.Sprintf("%s:", label)

	if parseErr, ok := err.(*types.ParseError); ok {
		location := ef.locationColor.Sprintf(" (line %d, column %d)", parseErr.Position.Line, parseErr.Position.Column)
		message := errColor.Sprintf(" %s", parseErr.Message)
		return prefix + location + message
	}

	return prefix + errColor.Sprintf(" %s", err.Error())
}

// FormatErrorWithSuggestion appends a short, mechanically-derived hint for
// common mistakes.
func (ef *ErrorFormatter) FormatErrorWithSuggestion(err error) string {
	base := ef.FormatError(err)
	suggestion := ef.suggest(err)
	if suggestion == "" {
		return base
	}
	suggestionColor := color.New(color.FgHiBlack, color.Italic)
	return base + suggestionColor.Sprintf("\n  Suggestion: %s", suggestion)
}

func (ef *ErrorFormatter) suggest(err error) string {
	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "not found"):
		return "check if the symbol is defined before it's used"
	case strings.Contains(lower, "wrong number"):
		return "check the function's parameter list"
	case strings.Contains(lower, "division by zero"):
		return "ensure the divisor is not zero"
	case strings.Contains(lower, "cannot call"):
		return "make sure you're calling a function, not a variable"
	default:
		return ""
	}
}
