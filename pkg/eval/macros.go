package eval

import (
	"github.com/malcore/golisp/pkg/env"
	"github.com/malcore/golisp/pkg/types"
)

// macroexpand repeatedly expands form while it is a list whose head names a
// macro, stopping at the fixpoint: a form that either isn't a list or whose
// head isn't bound to a macro.
func (ev *Evaluator) macroexpand(form types.Value, environment *env.Env) (types.Value, error) {
	for {
		closure, args, ok := macroCall(form, environment)
		if !ok {
			return form, nil
		}
		expanded, err := ev.Apply(closure, args)
		if err != nil {
			return nil, err
		}
		form = expanded
	}
}

func macroCall(form types.Value, environment *env.Env) (*env.ClosureValue, []types.Value, bool) {
	list, ok := form.(*types.ListValue)
	if !ok || len(list.Items) == 0 {
		return nil, nil, false
	}
	sym, ok := list.Items[0].(types.SymbolValue)
	if !ok {
		return nil, nil, false
	}
	found := environment.Find(sym)
	if found == nil {
		return nil, nil, false
	}
	val, _ := found.Get(sym)
	closure, ok := val.(*env.ClosureValue)
	if !ok || !closure.IsMacro {
		return nil, nil, false
	}
	return closure, list.Items[1:], true
}
