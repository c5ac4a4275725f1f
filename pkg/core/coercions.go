package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func registerCoercions(add func(string, func([]types.Value) (types.Value, error))) {
	add("symbol", func(args []types.Value) (types.Value, error) {
		if err := unary("symbol", args); err != nil {
			return nil, err
		}
		s, ok := args[0].(types.StringValue)
		if !ok {
			return nil, types.NewEvalError("symbol requires a string, got %s", args[0].String())
		}
		return types.SymbolValue(s), nil
	})

	add("keyword", func(args []types.Value) (types.Value, error) {
		if err := unary("keyword", args); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case types.StringValue:
			return types.KeywordValue(v), nil
		case types.KeywordValue:
			return v, nil
		default:
			return nil, types.NewEvalError("keyword requires a string or keyword, got %s", args[0].String())
		}
	})
}
