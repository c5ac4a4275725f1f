package core_test

import (
	"testing"

	"github.com/malcore/golisp/pkg/core"
	"github.com/malcore/golisp/pkg/types"
)

func noopApply(fn types.Value, args []types.Value) (types.Value, error) {
	p := fn.(*types.PrimitiveValue)
	return p.Fn(args)
}

func noopEval(form types.Value) (types.Value, error) {
	return form, nil
}

func ns(t *testing.T) map[string]types.Value {
	t.Helper()
	return core.NS(noopApply, noopEval)
}

func call(t *testing.T, table map[string]types.Value, name string, args ...types.Value) types.Value {
	t.Helper()
	prim, ok := table[name].(*types.PrimitiveValue)
	if !ok {
		t.Fatalf("%s is not registered as a primitive", name)
	}
	v, err := prim.Fn(args)
	if err != nil {
		t.Fatalf("%s%v: %v", name, args, err)
	}
	return v
}

func TestArithmetic(t *testing.T) {
	table := ns(t)
	if got := call(t, table, "+", types.NumberValue(1), types.NumberValue(2)); got.String() != "3" {
		t.Errorf("+ = %s, want 3", got.String())
	}
	if got := call(t, table, "-", types.NumberValue(5), types.NumberValue(2)); got.String() != "3" {
		t.Errorf("- = %s, want 3", got.String())
	}
	if got := call(t, table, "*", types.NumberValue(2), types.NumberValue(3)); got.String() != "6" {
		t.Errorf("* = %s, want 6", got.String())
	}
	if got := call(t, table, "/", types.NumberValue(6), types.NumberValue(2)); got.String() != "3" {
		t.Errorf("/ = %s, want 3", got.String())
	}
}

func TestDivisionByZero(t *testing.T) {
	table := ns(t)
	prim := table["/"].(*types.PrimitiveValue)
	if _, err := prim.Fn([]types.Value{types.NumberValue(1), types.NumberValue(0)}); err == nil {
		t.Error("expected division by zero error")
	}
}

func TestSequenceOps(t *testing.T) {
	table := ns(t)
	list := types.NewList(types.NumberValue(1), types.NumberValue(2), types.NumberValue(3))

	if got := call(t, table, "count", list); got.String() != "3" {
		t.Errorf("count = %s, want 3", got.String())
	}
	if got := call(t, table, "first", list); got.String() != "1" {
		t.Errorf("first = %s, want 1", got.String())
	}
	if got := call(t, table, "rest", list); got.String() != "(2 3)" {
		t.Errorf("rest = %s, want (2 3)", got.String())
	}
	if got := call(t, table, "first", types.Nil{}); got.String() != "nil" {
		t.Errorf("first of nil = %s, want nil", got.String())
	}
	if got := call(t, table, "rest", types.Nil{}); got.String() != "()" {
		t.Errorf("rest of nil = %s, want ()", got.String())
	}
	if got := call(t, table, "cons", types.NumberValue(0), list); got.String() != "(0 1 2 3)" {
		t.Errorf("cons = %s, want (0 1 2 3)", got.String())
	}
	if got := call(t, table, "concat", list, list); got.String() != "(1 2 3 1 2 3)" {
		t.Errorf("concat = %s, want (1 2 3 1 2 3)", got.String())
	}
}

func TestNthOutOfRange(t *testing.T) {
	table := ns(t)
	prim := table["nth"].(*types.PrimitiveValue)
	list := types.NewList(types.NumberValue(1))
	if _, err := prim.Fn([]types.Value{list, types.NumberValue(5)}); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestPredicates(t *testing.T) {
	table := ns(t)
	if got := call(t, table, "nil?", types.Nil{}); got.String() != "true" {
		t.Errorf("nil? = %s, want true", got.String())
	}
	if got := call(t, table, "symbol?", types.SymbolValue("x")); got.String() != "true" {
		t.Errorf("symbol? = %s, want true", got.String())
	}
	if got := call(t, table, "keyword?", types.StringValue("x")); got.String() != "false" {
		t.Errorf("keyword? of string = %s, want false", got.String())
	}
}

func TestAtoms(t *testing.T) {
	table := ns(t)
	a := call(t, table, "atom", types.NumberValue(1))
	if got := call(t, table, "atom?", a); got.String() != "true" {
		t.Errorf("atom? = %s, want true", got.String())
	}
	if got := call(t, table, "deref", a); got.String() != "1" {
		t.Errorf("deref = %s, want 1", got.String())
	}
	call(t, table, "reset!", a, types.NumberValue(5))
	if got := call(t, table, "deref", a); got.String() != "5" {
		t.Errorf("deref after reset! = %s, want 5", got.String())
	}
}

func TestMaps(t *testing.T) {
	table := ns(t)
	m := call(t, table, "hash-map", types.StringValue("a"), types.NumberValue(1))
	if got := call(t, table, "get", m, types.StringValue("a")); got.String() != "1" {
		t.Errorf("get = %s, want 1", got.String())
	}
	if got := call(t, table, "contains?", m, types.StringValue("a")); got.String() != "true" {
		t.Errorf("contains? = %s, want true", got.String())
	}
	if got := call(t, table, "contains?", m, types.StringValue("b")); got.String() != "false" {
		t.Errorf("contains? missing = %s, want false", got.String())
	}
}
