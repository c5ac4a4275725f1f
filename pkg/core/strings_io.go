package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/malcore/golisp/pkg/reader"
	"github.com/malcore/golisp/pkg/types"
)

func registerStringsAndIO(add func(string, func([]types.Value) (types.Value, error))) {
	add("pr-str", func(args []types.Value) (types.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = reader.PrStr(a, true)
		}
		return types.StringValue(strings.Join(parts, " ")), nil
	})

	add("str", func(args []types.Value) (types.Value, error) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(reader.PrStr(a, false))
		}
		return types.StringValue(sb.String()), nil
	})

	add("prn", func(args []types.Value) (types.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = reader.PrStr(a, true)
		}
		fmt.Println(strings.Join(parts, " "))
		return types.Nil{}, nil
	})

	add("println", func(args []types.Value) (types.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = reader.PrStr(a, false)
		}
		fmt.Println(strings.Join(parts, " "))
		return types.Nil{}, nil
	})

	add("read-string", func(args []types.Value) (types.Value, error) {
		if err := unary("read-string", args); err != nil {
			return nil, err
		}
		s, ok := args[0].(types.StringValue)
		if !ok {
			return nil, types.NewEvalError("read-string requires a string, got %s", args[0].String())
		}
		form, ok, err := reader.Read(string(s))
		if err != nil {
			return nil, err
		}
		if !ok {
			return types.Nil{}, nil
		}
		return form, nil
	})

	add("slurp", func(args []types.Value) (types.Value, error) {
		if err := unary("slurp", args); err != nil {
			return nil, err
		}
		path, ok := args[0].(types.StringValue)
		if !ok {
			return nil, types.NewEvalError("slurp requires a string path, got %s", args[0].String())
		}
		data, err := os.ReadFile(string(path))
		if err != nil {
			return types.Nil{}, nil
		}
		return types.StringValue(data), nil
	})
}
