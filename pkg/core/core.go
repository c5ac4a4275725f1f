// Package core provides the interpreter's built-in primitive table: a flat
// table of name to Go function, installed into the root environment once at
// startup. Individual concerns (arithmetic, sequences, strings/IO, atoms,
// predicates, higher-order functions) are grouped one file per concern.
package core

import (
	"github.com/malcore/golisp/pkg/types"
)

// Apply invokes fn (a primitive or closure) with args. The evaluator injects
// its own Apply implementation so that apply/map reuse the same
// tail-call-aware application logic as ordinary function calls, rather than
// this package needing to import pkg/eval (which already imports pkg/core).
type Apply func(fn types.Value, args []types.Value) (types.Value, error)

// EvalFn evaluates a form in the root environment. Supplied by pkg/eval so
// that (eval form) always runs against the top-level scope, per the design
// note that the evaluator closes over the root environment once at startup.
type EvalFn func(form types.Value) (types.Value, error)

// NS builds the primitive table. apply and evalFn are supplied by pkg/eval
// to avoid an import cycle between core and eval.
func NS(apply Apply, evalFn EvalFn) map[string]types.Value {
	ns := map[string]types.Value{}
	add := func(name string, fn func(args []types.Value) (types.Value, error)) {
		ns[name] = &types.PrimitiveValue{Name: name, Fn: fn}
	}

	registerArithmetic(add)
	registerSequences(add)
	registerPredicates(add)
	registerStringsAndIO(add)
	registerAtoms(add)
	registerSwap(add, apply)
	registerCoercions(add)
	registerHigherOrder(add, apply)
	registerControl(add, evalFn)
	registerMaps(add)

	return ns
}
