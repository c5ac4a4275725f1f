package eval

import "github.com/malcore/golisp/pkg/types"

// quasiquoteExpand rewrites a quasiquoted form into an ordinary form made of
// cons/concat/quote calls, per the syntactic (not eval-based) expansion:
// unquote yields its argument verbatim, splice-unquote heads splice their
// argument in with concat, and everything else recurses with cons. Lists
// and vectors are treated uniformly and both produce a List: quasiquoting
// a vector does not preserve its vector-ness.
func quasiquoteExpand(form types.Value) types.Value {
	switch v := form.(type) {
	case *types.ListValue:
		if sym, ok := isUnquote(v.Items); ok {
			return sym
		}
		return quasiquoteList(v.Items)
	case *types.VectorValue:
		return quasiquoteList(v.Items)
	default:
		return types.NewList(types.SymbolValue("quote"), form)
	}
}

func isUnquote(items []types.Value) (types.Value, bool) {
	if len(items) != 2 {
		return nil, false
	}
	sym, ok := items[0].(types.SymbolValue)
	if !ok || sym != "unquote" {
		return nil, false
	}
	return items[1], true
}

func isSpliceUnquote(v types.Value) (types.Value, bool) {
	list, ok := v.(*types.ListValue)
	if !ok || len(list.Items) != 2 {
		return nil, false
	}
	sym, ok := list.Items[0].(types.SymbolValue)
	if !ok || sym != "splice-unquote" {
		return nil, false
	}
	return list.Items[1], true
}

func quasiquoteList(items []types.Value) types.Value {
	result := types.Value(types.NewList())
	for i := len(items) - 1; i >= 0; i-- {
		if spliced, ok := isSpliceUnquote(items[i]); ok {
			result = types.NewList(types.SymbolValue("concat"), spliced, result)
			continue
		}
		result = types.NewList(types.SymbolValue("cons"), quasiquoteExpand(items[i]), result)
	}
	return result
}
