package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func registerControl(add func(string, func([]types.Value) (types.Value, error)), evalFn EvalFn) {
	add("throw", func(args []types.Value) (types.Value, error) {
		if err := unary("throw", args); err != nil {
			return nil, err
		}
		return nil, types.NewException(args[0])
	})

	add("eval", func(args []types.Value) (types.Value, error) {
		if err := unary("eval", args); err != nil {
			return nil, err
		}
		return evalFn(args[0])
	})
}
