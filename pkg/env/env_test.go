package env

import (
	"testing"

	"github.com/malcore/golisp/pkg/types"
)

func TestSetGetFind(t *testing.T) {
	root := New()
	root.Set(types.SymbolValue("x"), types.NumberValue(1))

	child := NewChild(root)
	child.Set(types.SymbolValue("y"), types.NumberValue(2))

	if v, err := child.Get(types.SymbolValue("x")); err != nil || v != types.NumberValue(1) {
		t.Fatalf("child.Get(x) = %v, %v; want 1, nil", v, err)
	}
	if v, err := child.Get(types.SymbolValue("y")); err != nil || v != types.NumberValue(2) {
		t.Fatalf("child.Get(y) = %v, %v; want 2, nil", v, err)
	}
	if _, err := root.Get(types.SymbolValue("y")); err == nil {
		t.Fatalf("root.Get(y) should fail, y is only bound in child")
	}
}

func TestSetShadowsOuter(t *testing.T) {
	root := New()
	root.Set(types.SymbolValue("x"), types.NumberValue(1))
	child := NewChild(root)
	child.Set(types.SymbolValue("x"), types.NumberValue(2))

	if v, _ := child.Get(types.SymbolValue("x")); v != types.NumberValue(2) {
		t.Errorf("child shadow: got %v, want 2", v)
	}
	if v, _ := root.Get(types.SymbolValue("x")); v != types.NumberValue(1) {
		t.Errorf("root unaffected: got %v, want 1", v)
	}
}

func TestGetUndefinedSymbol(t *testing.T) {
	root := New()
	_, err := root.Get(types.SymbolValue("nope"))
	if err == nil {
		t.Fatal("expected error for undefined symbol")
	}
}

func TestBindFixedArity(t *testing.T) {
	e := New()
	params := []types.SymbolValue{"a", "b"}
	args := []types.Value{types.NumberValue(1), types.NumberValue(2)}
	if err := Bind(e, params, "", args); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if v, _ := e.Get("a"); v != types.NumberValue(1) {
		t.Errorf("a = %v, want 1", v)
	}
	if v, _ := e.Get("b"); v != types.NumberValue(2) {
		t.Errorf("b = %v, want 2", v)
	}
}

func TestBindArityMismatch(t *testing.T) {
	e := New()
	params := []types.SymbolValue{"a", "b"}
	args := []types.Value{types.NumberValue(1)}
	if err := Bind(e, params, "", args); err == nil {
		t.Fatal("expected arity error")
	}
}

func TestBindVariadic(t *testing.T) {
	e := New()
	params := []types.SymbolValue{"a"}
	args := []types.Value{types.NumberValue(1), types.NumberValue(2), types.NumberValue(3)}
	if err := Bind(e, params, "rest", args); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	rest, _ := e.Get("rest")
	list, ok := rest.(*types.ListValue)
	if !ok || len(list.Items) != 2 {
		t.Fatalf("rest = %v, want a 2-element list", rest)
	}
}

func TestBindVariadicZeroExtra(t *testing.T) {
	e := New()
	params := []types.SymbolValue{"a"}
	args := []types.Value{types.NumberValue(1)}
	if err := Bind(e, params, "rest", args); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	rest, _ := e.Get("rest")
	list, ok := rest.(*types.ListValue)
	if !ok || len(list.Items) != 0 {
		t.Fatalf("rest = %v, want an empty list", rest)
	}
}
