package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func items(name string, v types.Value) ([]types.Value, error) {
	switch v := v.(type) {
	case *types.ListValue:
		return v.Items, nil
	case *types.VectorValue:
		return v.Items, nil
	case types.Nil:
		return nil, nil
	default:
		return nil, types.NewEvalError("%s requires a list or vector, got %s", name, v.String())
	}
}

func unary(name string, args []types.Value) error {
	if len(args) != 1 {
		return types.NewEvalError("%s requires exactly 1 argument, got %d", name, len(args))
	}
	return nil
}

func registerSequences(add func(string, func([]types.Value) (types.Value, error))) {
	add("list", func(args []types.Value) (types.Value, error) {
		return types.NewList(args...), nil
	})

	add("list?", func(args []types.Value) (types.Value, error) {
		if err := unary("list?", args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*types.ListValue)
		return types.BooleanValue(ok), nil
	})

	add("vector", func(args []types.Value) (types.Value, error) {
		return types.NewVector(args...), nil
	})

	add("vector?", func(args []types.Value) (types.Value, error) {
		if err := unary("vector?", args); err != nil {
			return nil, err
		}
		_, ok := args[0].(*types.VectorValue)
		return types.BooleanValue(ok), nil
	})

	add("sequential?", func(args []types.Value) (types.Value, error) {
		if err := unary("sequential?", args); err != nil {
			return nil, err
		}
		switch args[0].(type) {
		case *types.ListValue, *types.VectorValue:
			return types.BooleanValue(true), nil
		default:
			return types.BooleanValue(false), nil
		}
	})

	add("empty?", func(args []types.Value) (types.Value, error) {
		if err := unary("empty?", args); err != nil {
			return nil, err
		}
		elems, err := items("empty?", args[0])
		if err != nil {
			return nil, err
		}
		return types.BooleanValue(len(elems) == 0), nil
	})

	add("count", func(args []types.Value) (types.Value, error) {
		if err := unary("count", args); err != nil {
			return nil, err
		}
		elems, err := items("count", args[0])
		if err != nil {
			return nil, err
		}
		return types.NumberValue(len(elems)), nil
	})

	add("cons", func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, types.NewEvalError("cons requires exactly 2 arguments, got %d", len(args))
		}
		rest, err := items("cons", args[1])
		if err != nil {
			return nil, err
		}
		out := make([]types.Value, 0, len(rest)+1)
		out = append(out, args[0])
		out = append(out, rest...)
		return types.NewList(out...), nil
	})

	add("concat", func(args []types.Value) (types.Value, error) {
		var out []types.Value
		for _, a := range args {
			elems, err := items("concat", a)
			if err != nil {
				return nil, err
			}
			out = append(out, elems...)
		}
		return types.NewList(out...), nil
	})

	add("nth", func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, types.NewEvalError("nth requires exactly 2 arguments, got %d", len(args))
		}
		elems, err := items("nth", args[0])
		if err != nil {
			return nil, err
		}
		idx, ok := args[1].(types.NumberValue)
		if !ok {
			return nil, types.NewEvalError("nth requires a number index, got %s", args[1].String())
		}
		i := int(idx)
		if i < 0 || i >= len(elems) {
			return nil, types.NewEvalError("nth: index %d out of bounds", i)
		}
		return elems[i], nil
	})

	add("first", func(args []types.Value) (types.Value, error) {
		if err := unary("first", args); err != nil {
			return nil, err
		}
		elems, err := items("first", args[0])
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return types.Nil{}, nil
		}
		return elems[0], nil
	})

	add("rest", func(args []types.Value) (types.Value, error) {
		if err := unary("rest", args); err != nil {
			return nil, err
		}
		elems, err := items("rest", args[0])
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return types.NewList(), nil
		}
		return types.NewList(elems[1:]...), nil
	})

	add("vec", func(args []types.Value) (types.Value, error) {
		if err := unary("vec", args); err != nil {
			return nil, err
		}
		elems, err := items("vec", args[0])
		if err != nil {
			return nil, err
		}
		return types.NewVector(elems...), nil
	})

	add("conj", func(args []types.Value) (types.Value, error) {
		if len(args) == 0 {
			return nil, types.NewEvalError("conj requires at least 1 argument")
		}
		switch seq := args[0].(type) {
		case *types.ListValue:
			out := make([]types.Value, 0, len(seq.Items)+len(args)-1)
			for _, v := range args[1:] {
				out = append([]types.Value{v}, out...)
			}
			out = append(out, seq.Items...)
			return types.NewList(out...), nil
		case *types.VectorValue:
			out := append([]types.Value(nil), seq.Items...)
			out = append(out, args[1:]...)
			return types.NewVector(out...), nil
		default:
			return nil, types.NewEvalError("conj requires a list or vector, got %s", args[0].String())
		}
	})
}
