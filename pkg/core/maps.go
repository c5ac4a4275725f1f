package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func registerMaps(add func(string, func([]types.Value) (types.Value, error))) {
	add("hash-map", func(args []types.Value) (types.Value, error) {
		m, err := types.NewMap().Assoc(args...)
		if err != nil {
			return nil, types.NewEvalError("%s", err.Error())
		}
		return m, nil
	})

	add("assoc", func(args []types.Value) (types.Value, error) {
		if len(args) < 1 {
			return nil, types.NewEvalError("assoc requires at least 1 argument")
		}
		m, ok := args[0].(*types.MapValue)
		if !ok {
			return nil, types.NewEvalError("assoc requires a map, got %s", args[0].String())
		}
		out, err := m.Assoc(args[1:]...)
		if err != nil {
			return nil, types.NewEvalError("%s", err.Error())
		}
		return out, nil
	})

	add("dissoc", func(args []types.Value) (types.Value, error) {
		if len(args) < 1 {
			return nil, types.NewEvalError("dissoc requires at least 1 argument")
		}
		m, ok := args[0].(*types.MapValue)
		if !ok {
			return nil, types.NewEvalError("dissoc requires a map, got %s", args[0].String())
		}
		out, err := m.Dissoc(args[1:]...)
		if err != nil {
			return nil, types.NewEvalError("%s", err.Error())
		}
		return out, nil
	})

	add("get", func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, types.NewEvalError("get requires exactly 2 arguments, got %d", len(args))
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.Nil{}, nil
		}
		m, ok := args[0].(*types.MapValue)
		if !ok {
			return nil, types.NewEvalError("get requires a map, got %s", args[0].String())
		}
		v, found := m.Get(args[1])
		if !found {
			return types.Nil{}, nil
		}
		return v, nil
	})

	add("contains?", func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, types.NewEvalError("contains? requires exactly 2 arguments, got %d", len(args))
		}
		m, ok := args[0].(*types.MapValue)
		if !ok {
			return nil, types.NewEvalError("contains? requires a map, got %s", args[0].String())
		}
		_, found := m.Get(args[1])
		return types.BooleanValue(found), nil
	})

	add("keys", func(args []types.Value) (types.Value, error) {
		if err := unary("keys", args); err != nil {
			return nil, err
		}
		m, ok := args[0].(*types.MapValue)
		if !ok {
			return nil, types.NewEvalError("keys requires a map, got %s", args[0].String())
		}
		return types.NewList(m.SortedKeys()...), nil
	})

	add("vals", func(args []types.Value) (types.Value, error) {
		if err := unary("vals", args); err != nil {
			return nil, err
		}
		m, ok := args[0].(*types.MapValue)
		if !ok {
			return nil, types.NewEvalError("vals requires a map, got %s", args[0].String())
		}
		sorted := m.SortedKeys()
		out := make([]types.Value, len(sorted))
		for i, k := range sorted {
			v, _ := m.Get(k)
			out[i] = v
		}
		return types.NewList(out...), nil
	})
}
