package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func registerHigherOrder(add func(string, func([]types.Value) (types.Value, error)), apply Apply) {
	add("apply", func(args []types.Value) (types.Value, error) {
		if len(args) < 2 {
			return nil, types.NewEvalError("apply requires at least 2 arguments, got %d", len(args))
		}
		fn := args[0]
		last, err := items("apply", args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append([]types.Value{}, args[1:len(args)-1]...)
		callArgs = append(callArgs, last...)
		return apply(fn, callArgs)
	})

	add("map", func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, types.NewEvalError("map requires exactly 2 arguments, got %d", len(args))
		}
		fn := args[0]
		elems, err := items("map", args[1])
		if err != nil {
			return nil, err
		}
		out := make([]types.Value, len(elems))
		for i, e := range elems {
			v, err := apply(fn, []types.Value{e})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return types.NewList(out...), nil
	})
}
