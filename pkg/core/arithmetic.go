package core

import (
	"github.com/malcore/golisp/pkg/types"
)

func binary(name string, args []types.Value) error {
	if len(args) != 2 {
		return types.NewEvalError("%s requires exactly 2 arguments, got %d", name, len(args))
	}
	return nil
}

func registerArithmetic(add func(string, func([]types.Value) (types.Value, error))) {
	add("+", func(args []types.Value) (types.Value, error) {
		if err := binary("+", args); err != nil {
			return nil, err
		}
		nums, err := numbers("+", args)
		if err != nil {
			return nil, err
		}
		return types.NumberValue(nums[0] + nums[1]), nil
	})

	add("-", func(args []types.Value) (types.Value, error) {
		if err := binary("-", args); err != nil {
			return nil, err
		}
		nums, err := numbers("-", args)
		if err != nil {
			return nil, err
		}
		return types.NumberValue(nums[0] - nums[1]), nil
	})

	add("*", func(args []types.Value) (types.Value, error) {
		if err := binary("*", args); err != nil {
			return nil, err
		}
		nums, err := numbers("*", args)
		if err != nil {
			return nil, err
		}
		return types.NumberValue(nums[0] * nums[1]), nil
	})

	add("/", func(args []types.Value) (types.Value, error) {
		if err := binary("/", args); err != nil {
			return nil, err
		}
		nums, err := numbers("/", args)
		if err != nil {
			return nil, err
		}
		if nums[1] == 0 {
			return nil, types.NewEvalError("division by zero")
		}
		return types.NumberValue(nums[0] / nums[1]), nil
	})

	cmp := func(name string, ok func(a, b float64) bool) func([]types.Value) (types.Value, error) {
		return func(args []types.Value) (types.Value, error) {
			if err := binary(name, args); err != nil {
				return nil, err
			}
			nums, err := numbers(name, args)
			if err != nil {
				return nil, err
			}
			return types.BooleanValue(ok(nums[0], nums[1])), nil
		}
	}
	add("<", cmp("<", func(a, b float64) bool { return a < b }))
	add("<=", cmp("<=", func(a, b float64) bool { return a <= b }))
	add(">", cmp(">", func(a, b float64) bool { return a > b }))
	add(">=", cmp(">=", func(a, b float64) bool { return a >= b }))

	add("=", func(args []types.Value) (types.Value, error) {
		if err := binary("=", args); err != nil {
			return nil, err
		}
		return types.BooleanValue(types.Equal(args[0], args[1])), nil
	})
}

func numbers(name string, args []types.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(types.NumberValue)
		if !ok {
			return nil, types.NewEvalError("%s requires numbers, got %s", name, a.String())
		}
		out[i] = float64(n)
	}
	return out, nil
}
