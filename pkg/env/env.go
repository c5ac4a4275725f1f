// Package env implements the interpreter's lexical environments: a flat
// binding map plus a pointer to an enclosing (outer) environment.
package env

import (
	"github.com/malcore/golisp/pkg/types"
)

// Env is one frame of lexical scope.
type Env struct {
	outer *Env
	data  map[types.SymbolValue]types.Value
}

// New creates a top-level environment with no enclosing scope.
func New() *Env {
	return &Env{data: make(map[types.SymbolValue]types.Value)}
}

// NewChild creates an environment nested inside outer.
func NewChild(outer *Env) *Env {
	return &Env{outer: outer, data: make(map[types.SymbolValue]types.Value)}
}

// Set binds sym to val in this frame, shadowing any binding in an outer
// frame.
func (e *Env) Set(sym types.SymbolValue, val types.Value) {
	e.data[sym] = val
}

// Find walks outward from e and returns the first frame that binds sym, or
// nil if no frame does.
func (e *Env) Find(sym types.SymbolValue) *Env {
	if _, ok := e.data[sym]; ok {
		return e
	}
	if e.outer != nil {
		return e.outer.Find(sym)
	}
	return nil
}

// Get resolves sym by walking outward from e.
func (e *Env) Get(sym types.SymbolValue) (types.Value, error) {
	found := e.Find(sym)
	if found == nil {
		return nil, types.NewEvalError("'%s' not found", sym)
	}
	return found.data[sym], nil
}

// Names returns every symbol bound in e or any enclosing frame, used by the
// REPL's tab completion.
func (e *Env) Names() []string {
	seen := map[string]bool{}
	names := []string{}
	for frame := e; frame != nil; frame = frame.outer {
		for sym := range frame.data {
			name := string(sym)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// ClosureValue is a function created by fn*, closing over the environment
// active at its definition site. The same struct, with IsMacro set,
// represents a macro created by defmacro!. It lives in this package rather
// than pkg/types because it holds a reference to an *Env.
type ClosureValue struct {
	Params  []types.SymbolValue
	Rest    types.SymbolValue // variadic binding after '&', empty if none
	Body    types.Value
	Env     *Env
	IsMacro bool
}

func (c *ClosureValue) String() string { return "#<fn*>" }

// Bind binds params to args in e, implementing the '&' variadic protocol:
// the symbol following '&' in a closure's parameter list is bound to a list
// of every remaining argument, including zero of them.
func Bind(e *Env, params []types.SymbolValue, rest types.SymbolValue, args []types.Value) error {
	if rest == "" && len(args) != len(params) {
		return types.NewEvalError("wrong number of arguments: expected %d, got %d", len(params), len(args))
	}
	if rest != "" && len(args) < len(params) {
		return types.NewEvalError("wrong number of arguments: expected at least %d, got %d", len(params), len(args))
	}
	for i, p := range params {
		e.Set(p, args[i])
	}
	if rest != "" {
		restArgs := append([]types.Value(nil), args[len(params):]...)
		e.Set(rest, types.NewList(restArgs...))
	}
	return nil
}
