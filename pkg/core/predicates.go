package core

import (
	"github.com/malcore/golisp/pkg/env"
	"github.com/malcore/golisp/pkg/types"
)

func registerPredicates(add func(string, func([]types.Value) (types.Value, error))) {
	typeCheck := func(name string, check func(types.Value) bool) {
		add(name, func(args []types.Value) (types.Value, error) {
			if err := unary(name, args); err != nil {
				return nil, err
			}
			return types.BooleanValue(check(args[0])), nil
		})
	}

	typeCheck("nil?", func(v types.Value) bool { _, ok := v.(types.Nil); return ok })
	typeCheck("true?", func(v types.Value) bool { b, ok := v.(types.BooleanValue); return ok && bool(b) })
	typeCheck("false?", func(v types.Value) bool { b, ok := v.(types.BooleanValue); return ok && !bool(b) })
	typeCheck("symbol?", func(v types.Value) bool { _, ok := v.(types.SymbolValue); return ok })
	typeCheck("string?", func(v types.Value) bool { _, ok := v.(types.StringValue); return ok })
	typeCheck("number?", func(v types.Value) bool { _, ok := v.(types.NumberValue); return ok })
	typeCheck("keyword?", func(v types.Value) bool { _, ok := v.(types.KeywordValue); return ok })
	typeCheck("map?", func(v types.Value) bool { _, ok := v.(*types.MapValue); return ok })
	typeCheck("atom?", func(v types.Value) bool { _, ok := v.(*types.AtomValue); return ok })
	typeCheck("fn?", func(v types.Value) bool {
		switch fn := v.(type) {
		case *types.PrimitiveValue:
			return true
		case *env.ClosureValue:
			return !fn.IsMacro
		}
		return false
	})
	typeCheck("macro?", func(v types.Value) bool {
		c, ok := v.(*env.ClosureValue)
		return ok && c.IsMacro
	})
}
