package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func registerAtoms(add func(string, func([]types.Value) (types.Value, error))) {
	add("atom", func(args []types.Value) (types.Value, error) {
		if err := unary("atom", args); err != nil {
			return nil, err
		}
		return types.NewAtom(args[0]), nil
	})

	add("deref", func(args []types.Value) (types.Value, error) {
		if err := unary("deref", args); err != nil {
			return nil, err
		}
		a, ok := args[0].(*types.AtomValue)
		if !ok {
			return nil, types.NewEvalError("deref requires an atom, got %s", args[0].String())
		}
		return a.Deref(), nil
	})

	add("reset!", func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, types.NewEvalError("reset! requires exactly 2 arguments, got %d", len(args))
		}
		a, ok := args[0].(*types.AtomValue)
		if !ok {
			return nil, types.NewEvalError("reset! requires an atom, got %s", args[0].String())
		}
		return a.Reset(args[1]), nil
	})
}

// registerSwap is split out from registerAtoms because it needs apply,
// which is only available once pkg/eval constructs the table.
func registerSwap(add func(string, func([]types.Value) (types.Value, error)), apply Apply) {
	add("swap!", func(args []types.Value) (types.Value, error) {
		if len(args) < 2 {
			return nil, types.NewEvalError("swap! requires at least 2 arguments, got %d", len(args))
		}
		a, ok := args[0].(*types.AtomValue)
		if !ok {
			return nil, types.NewEvalError("swap! requires an atom, got %s", args[0].String())
		}
		fn := args[1]
		callArgs := append([]types.Value{a.Deref()}, args[2:]...)
		result, err := apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(result), nil
	})
}
