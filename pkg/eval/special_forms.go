package eval

import (
	"github.com/malcore/golisp/pkg/env"
	"github.com/malcore/golisp/pkg/types"
)

// evalSpecialForm dispatches the special forms named in sym. When handled
// is false, sym is an ordinary symbol and the caller should fall through to
// function application. When handled is true and nextForm is non-nil, the
// caller continues the TCO trampoline with (nextForm, nextEnv); otherwise
// result (and err) is the final answer.
func (ev *Evaluator) evalSpecialForm(sym types.SymbolValue, list *types.ListValue, environment *env.Env) (handled bool, result types.Value, nextForm types.Value, nextEnv *env.Env, err error) {
	args := list.Items[1:]

	switch sym {
	case "def!":
		if len(args) != 2 {
			return true, nil, nil, nil, types.NewEvalError("def! requires exactly 2 arguments, got %d", len(args))
		}
		name, ok := args[0].(types.SymbolValue)
		if !ok {
			return true, nil, nil, nil, types.NewEvalError("def! requires a symbol, got %s", args[0].String())
		}
		val, err := ev.Eval(args[1], environment)
		if err != nil {
			return true, nil, nil, nil, err
		}
		environment.Set(name, val)
		return true, val, nil, nil, nil

	case "let*":
		if len(args) != 2 {
			return true, nil, nil, nil, types.NewEvalError("let* requires exactly 2 arguments, got %d", len(args))
		}
		pairs, err := bindingPairs(args[0])
		if err != nil {
			return true, nil, nil, nil, err
		}
		child := env.NewChild(environment)
		for i := 0; i < len(pairs); i += 2 {
			name, ok := pairs[i].(types.SymbolValue)
			if !ok {
				return true, nil, nil, nil, types.NewEvalError("let* binding names must be symbols, got %s", pairs[i].String())
			}
			val, err := ev.Eval(pairs[i+1], child)
			if err != nil {
				return true, nil, nil, nil, err
			}
			child.Set(name, val)
		}
		return true, nil, args[1], child, nil

	case "do":
		if len(args) == 0 {
			return true, types.Nil{}, nil, nil, nil
		}
		for _, f := range args[:len(args)-1] {
			if _, err := ev.Eval(f, environment); err != nil {
				return true, nil, nil, nil, err
			}
		}
		return true, nil, args[len(args)-1], environment, nil

	case "if":
		if len(args) != 2 && len(args) != 3 {
			return true, nil, nil, nil, types.NewEvalError("if requires 2 or 3 arguments, got %d", len(args))
		}
		cond, err := ev.Eval(args[0], environment)
		if err != nil {
			return true, nil, nil, nil, err
		}
		if types.IsTruthy(cond) {
			return true, nil, args[1], environment, nil
		}
		if len(args) == 3 {
			return true, nil, args[2], environment, nil
		}
		return true, types.Nil{}, nil, nil, nil

	case "fn*":
		if len(args) != 2 {
			return true, nil, nil, nil, types.NewEvalError("fn* requires exactly 2 arguments, got %d", len(args))
		}
		rawParams, err := bindingPairs(args[0])
		if err != nil {
			return true, nil, nil, nil, err
		}
		params, rest, err := parseParams(rawParams)
		if err != nil {
			return true, nil, nil, nil, err
		}
		closure := &env.ClosureValue{Params: params, Rest: rest, Body: args[1], Env: environment}
		return true, closure, nil, nil, nil

	case "quote":
		if len(args) != 1 {
			return true, nil, nil, nil, types.NewEvalError("quote requires exactly 1 argument, got %d", len(args))
		}
		return true, args[0], nil, nil, nil

	case "quasiquote":
		if len(args) != 1 {
			return true, nil, nil, nil, types.NewEvalError("quasiquote requires exactly 1 argument, got %d", len(args))
		}
		return true, nil, quasiquoteExpand(args[0]), environment, nil

	case "defmacro!":
		if len(args) != 2 {
			return true, nil, nil, nil, types.NewEvalError("defmacro! requires exactly 2 arguments, got %d", len(args))
		}
		name, ok := args[0].(types.SymbolValue)
		if !ok {
			return true, nil, nil, nil, types.NewEvalError("defmacro! requires a symbol, got %s", args[0].String())
		}
		val, err := ev.Eval(args[1], environment)
		if err != nil {
			return true, nil, nil, nil, err
		}
		closure, ok := val.(*env.ClosureValue)
		if !ok {
			return true, nil, nil, nil, types.NewEvalError("defmacro! requires a function, got %s", val.String())
		}
		macro := &env.ClosureValue{Params: closure.Params, Rest: closure.Rest, Body: closure.Body, Env: closure.Env, IsMacro: true}
		environment.Set(name, macro)
		return true, macro, nil, nil, nil

	case "macroexpand":
		if len(args) != 1 {
			return true, nil, nil, nil, types.NewEvalError("macroexpand requires exactly 1 argument, got %d", len(args))
		}
		expanded, err := ev.macroexpand(args[0], environment)
		return true, expanded, nil, nil, err

	case "try*":
		return ev.evalTry(args, environment)
	}

	return false, nil, nil, nil, nil
}

// bindingPairs accepts either a list or a vector for let* bindings and fn*
// parameter lists.
func bindingPairs(form types.Value) ([]types.Value, error) {
	switch v := form.(type) {
	case *types.ListValue:
		return v.Items, nil
	case *types.VectorValue:
		return v.Items, nil
	default:
		return nil, types.NewEvalError("expected a list or vector, got %s", form.String())
	}
}

// parseParams splits a raw parameter list into fixed params and an optional
// '&' rest binding.
func parseParams(raw []types.Value) ([]types.SymbolValue, types.SymbolValue, error) {
	params := make([]types.SymbolValue, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		sym, ok := raw[i].(types.SymbolValue)
		if !ok {
			return nil, "", types.NewEvalError("parameter names must be symbols, got %s", raw[i].String())
		}
		if sym == "&" {
			if i+1 >= len(raw) {
				return nil, "", types.NewEvalError("'&' must be followed by a rest parameter name")
			}
			rest, ok := raw[i+1].(types.SymbolValue)
			if !ok {
				return nil, "", types.NewEvalError("rest parameter name must be a symbol, got %s", raw[i+1].String())
			}
			return params, rest, nil
		}
		params = append(params, sym)
	}
	return params, "", nil
}

// evalTry implements try*/catch*: (try* A) or (try* A (catch* sym B)).
func (ev *Evaluator) evalTry(args []types.Value, environment *env.Env) (bool, types.Value, types.Value, *env.Env, error) {
	if len(args) == 0 {
		return true, nil, nil, nil, types.NewEvalError("try* requires at least 1 argument")
	}
	if len(args) == 1 {
		result, err := ev.Eval(args[0], environment)
		return true, result, nil, nil, err
	}

	catchList, ok := args[1].(*types.ListValue)
	if !ok || len(catchList.Items) != 3 {
		return true, nil, nil, nil, types.NewEvalError("try*'s second argument must be (catch* symbol body)")
	}
	catchSym, ok := catchList.Items[0].(types.SymbolValue)
	if !ok || catchSym != "catch*" {
		return true, nil, nil, nil, types.NewEvalError("try*'s second argument must be (catch* symbol body)")
	}
	caughtName, ok := catchList.Items[1].(types.SymbolValue)
	if !ok {
		return true, nil, nil, nil, types.NewEvalError("catch* requires a symbol to bind, got %s", catchList.Items[1].String())
	}

	result, err := ev.Eval(args[0], environment)
	if err == nil {
		return true, result, nil, nil, nil
	}

	caught, ok := err.(types.Caught)
	if !ok {
		// ParseError and any other non-catchable error propagate untouched.
		return true, nil, nil, nil, err
	}

	child := env.NewChild(environment)
	child.Set(caughtName, caught.AsCaught())
	return true, nil, catchList.Items[2], child, nil
}
