// Package eval implements the evaluator: Eval walks a form, dispatching
// special forms and applying functions with tail-call elimination so that
// recursion expressed through self-application runs in constant Go stack
// depth.
package eval

import (
	"github.com/malcore/golisp/pkg/core"
	"github.com/malcore/golisp/pkg/env"
	"github.com/malcore/golisp/pkg/types"
)

// Evaluator owns the root environment that (eval form) always evaluates
// against, regardless of the lexical scope eval itself was called from.
type Evaluator struct {
	Root *env.Env
}

// New builds an evaluator with the primitive table and bootstrap program
// installed in its root environment.
func New() *Evaluator {
	ev := &Evaluator{Root: env.New()}
	for name, val := range core.NS(ev.Apply, ev.EvalTop) {
		ev.Root.Set(types.SymbolValue(name), val)
	}
	ev.bootstrap()
	return ev
}

// EvalTop evaluates form in the root environment, regardless of caller.
// This backs the eval primitive per the design note that eval always runs
// at top level.
func (ev *Evaluator) EvalTop(form types.Value) (types.Value, error) {
	return ev.Eval(form, ev.Root)
}

// Apply calls fn with args, reused by the core apply/map primitives so that
// higher-order calls go through the exact same path as ordinary function
// application.
func (ev *Evaluator) Apply(fn types.Value, args []types.Value) (types.Value, error) {
	switch f := fn.(type) {
	case *types.PrimitiveValue:
		return f.Fn(args)
	case *env.ClosureValue:
		child := env.NewChild(f.Env)
		if err := env.Bind(child, f.Params, f.Rest, args); err != nil {
			return nil, err
		}
		return ev.Eval(f.Body, child)
	default:
		return nil, types.NewEvalError("cannot call non-function: %s", fn.String())
	}
}

// Eval evaluates form in environment. The for loop is the tail-call trampoline:
// special forms and function application that are in tail position reassign
// form/environment and loop instead of recursing.
func (ev *Evaluator) Eval(form types.Value, environment *env.Env) (types.Value, error) {
	for {
		expanded, err := ev.macroexpand(form, environment)
		if err != nil {
			return nil, err
		}
		form = expanded

		list, ok := form.(*types.ListValue)
		if !ok {
			return ev.evalAST(form, environment)
		}
		if len(list.Items) == 0 {
			return form, nil
		}

		if sym, ok := list.Items[0].(types.SymbolValue); ok {
			if handled, result, nextForm, nextEnv, err := ev.evalSpecialForm(sym, list, environment); handled {
				if err != nil {
					return nil, err
				}
				if nextForm == nil {
					return result, nil
				}
				form, environment = nextForm, nextEnv
				continue
			}
		}

		evaluated, err := ev.evalList(list.Items, environment)
		if err != nil {
			return nil, err
		}
		fn, args := evaluated[0], evaluated[1:]

		switch f := fn.(type) {
		case *types.PrimitiveValue:
			return f.Fn(args)
		case *env.ClosureValue:
			if f.IsMacro {
				return nil, types.NewEvalError("cannot call macro %s directly", fn.String())
			}
			child := env.NewChild(f.Env)
			if err := env.Bind(child, f.Params, f.Rest, args); err != nil {
				return nil, err
			}
			form, environment = f.Body, child
			continue
		default:
			return nil, types.NewEvalError("cannot call non-function: %s", fn.String())
		}
	}
}

// evalAST evaluates every value that is not itself a special-form-headed or
// callable list: symbols resolve against environment, vectors and maps
// evaluate their elements, and every other form (numbers, strings,
// keywords, nil, booleans) is self-evaluating.
func (ev *Evaluator) evalAST(form types.Value, environment *env.Env) (types.Value, error) {
	switch v := form.(type) {
	case types.SymbolValue:
		return environment.Get(v)
	case *types.VectorValue:
		items, err := ev.evalList(v.Items, environment)
		if err != nil {
			return nil, err
		}
		return types.NewVector(items...), nil
	case *types.MapValue:
		out := types.NewMap()
		for _, k := range v.Keys {
			val, _ := v.Get(k)
			evaluated, err := ev.Eval(val, environment)
			if err != nil {
				return nil, err
			}
			out, err = out.Assoc(k, evaluated)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case *types.ListValue:
		items, err := ev.evalList(v.Items, environment)
		if err != nil {
			return nil, err
		}
		return types.NewList(items...), nil
	default:
		return form, nil
	}
}

func (ev *Evaluator) evalList(items []types.Value, environment *env.Env) ([]types.Value, error) {
	out := make([]types.Value, len(items))
	for i, it := range items {
		v, err := ev.Eval(it, environment)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
