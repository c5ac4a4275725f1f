package eval

import (
	"testing"

	"github.com/malcore/golisp/pkg/reader"
	"github.com/malcore/golisp/pkg/types"
)

// mustEval reads and evaluates a single top-level form against ev's root
// environment, failing the test on any error.
func mustEval(t *testing.T, ev *Evaluator, src string) types.Value {
	t.Helper()
	form, ok, err := reader.Read(src)
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	if !ok {
		t.Fatalf("Read(%q) produced no form", src)
	}
	v, err := ev.Eval(form, ev.Root)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return v
}

func TestConcreteScenarios(t *testing.T) {
	t.Run("addition", func(t *testing.T) {
		ev := New()
		got := mustEval(t, ev, "(+ 1 2)")
		if got.String() != "3" {
			t.Errorf("got %s, want 3", got.String())
		}
	})

	t.Run("let* scoping and arithmetic", func(t *testing.T) {
		ev := New()
		got := mustEval(t, ev, "(let* (a 1 b (+ a 1)) (* a b))")
		if got.String() != "2" {
			t.Errorf("got %s, want 2", got.String())
		}
	})

	t.Run("atom swap", func(t *testing.T) {
		ev := New()
		mustEval(t, ev, "(def! x (atom 0))")
		if got := mustEval(t, ev, "(deref x)"); got.String() != "0" {
			t.Errorf("initial deref = %s, want 0", got.String())
		}
		if got := mustEval(t, ev, "(swap! x (fn* (v) (+ v 10)))"); got.String() != "10" {
			t.Errorf("swap! result = %s, want 10", got.String())
		}
		if got := mustEval(t, ev, "(deref x)"); got.String() != "10" {
			t.Errorf("final deref = %s, want 10", got.String())
		}
	})

	t.Run("quasiquote with unquote and splice-unquote", func(t *testing.T) {
		ev := New()
		got := mustEval(t, ev, "`(1 ~(+ 1 1) ~@(list 3 4))")
		if got.String() != "(1 2 3 4)" {
			t.Errorf("got %s, want (1 2 3 4)", got.String())
		}
	})

	t.Run("try catch on thrown map", func(t *testing.T) {
		ev := New()
		got := mustEval(t, ev, "(try* (throw {:code 42}) (catch* e e))")
		if got.String() != "{:code 42}" {
			t.Errorf("got %s, want {:code 42}", got.String())
		}
	})

	t.Run("variadic count", func(t *testing.T) {
		ev := New()
		got := mustEval(t, ev, "((fn* (& xs) (count xs)) 1 2 3)")
		if got.String() != "3" {
			t.Errorf("got %s, want 3", got.String())
		}
	})
}

func TestTailCallOptimization(t *testing.T) {
	ev := New()
	mustEval(t, ev, "(def! f (fn* (n) (if (= n 0) :done (f (- n 1)))))")
	got := mustEval(t, ev, "(f 100000)")
	if got.String() != ":done" {
		t.Errorf("got %s, want :done", got.String())
	}
}

func TestMacroExpandFixpoint(t *testing.T) {
	ev := New()
	mustEval(t, ev, "(defmacro! twice (fn* (x) (list 'do x x)))")
	expanded := mustEval(t, ev, "(macroexpand (twice (println 1)))")
	reExpanded, err := ev.macroexpand(expanded, ev.Root)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	if reExpanded.String() != expanded.String() {
		t.Errorf("macroexpand is not idempotent at its fixpoint: %s != %s", reExpanded.String(), expanded.String())
	}
}

func TestLetStarScopingIsLocal(t *testing.T) {
	ev := New()
	mustEval(t, ev, "(let* (a 99) a)")
	if _, err := ev.Root.Get(types.SymbolValue("a")); err == nil {
		t.Error("let* binding leaked into the enclosing environment")
	}
}

func TestDefInsideFunctionBodyStaysLocal(t *testing.T) {
	ev := New()
	if v := mustEval(t, ev, "((fn* () (def! leaked 1)))"); v.String() != "1" {
		t.Errorf("def! result = %s, want 1", v.String())
	}
	if _, err := ev.Root.Get(types.SymbolValue("leaked")); err == nil {
		t.Error("def! inside a function body leaked into the root environment")
	}
}

func TestUndefinedSymbolError(t *testing.T) {
	ev := New()
	_, ok, err := reader.Read("undefined-symbol")
	if err != nil || !ok {
		t.Fatalf("Read: %v", err)
	}
	form, _, _ := reader.Read("undefined-symbol")
	if _, err := ev.Eval(form, ev.Root); err == nil {
		t.Error("expected an error for an undefined symbol")
	}
}

func TestDivisionByZero(t *testing.T) {
	ev := New()
	form, _, _ := reader.Read("(/ 1 0)")
	if _, err := ev.Eval(form, ev.Root); err == nil {
		t.Error("expected division by zero error")
	}
}

func TestCallingNonFunction(t *testing.T) {
	ev := New()
	form, _, _ := reader.Read("(1 2 3)")
	if _, err := ev.Eval(form, ev.Root); err == nil {
		t.Error("expected an error calling a non-function")
	}
}

func TestBootstrapNot(t *testing.T) {
	ev := New()
	if got := mustEval(t, ev, "(not false)"); got.String() != "true" {
		t.Errorf("(not false) = %s, want true", got.String())
	}
	if got := mustEval(t, ev, "(not nil)"); got.String() != "true" {
		t.Errorf("(not nil) = %s, want true", got.String())
	}
	if got := mustEval(t, ev, "(not 0)"); got.String() != "false" {
		t.Errorf("(not 0) = %s, want false", got.String())
	}
}

func TestBootstrapCondAndOr(t *testing.T) {
	ev := New()
	if got := mustEval(t, ev, "(cond false 1 true 2)"); got.String() != "2" {
		t.Errorf("cond = %s, want 2", got.String())
	}
	if got := mustEval(t, ev, "(or nil false 3)"); got.String() != "3" {
		t.Errorf("or = %s, want 3", got.String())
	}
}

func TestApplyAndMap(t *testing.T) {
	ev := New()
	if got := mustEval(t, ev, "(apply + 4 (list 6))"); got.String() != "10" {
		t.Errorf("apply = %s, want 10", got.String())
	}
	if got := mustEval(t, ev, "(map (fn* (x) (* x 2)) (list 1 2 3))"); got.String() != "(2 4 6)" {
		t.Errorf("map = %s, want (2 4 6)", got.String())
	}
}

func TestEvalPrimitiveUsesRootEnv(t *testing.T) {
	ev := New()
	mustEval(t, ev, "(def! global-value 42)")
	got := mustEval(t, ev, "((fn* () (eval 'global-value)))")
	if got.String() != "42" {
		t.Errorf("eval inside closure saw %s, want 42 from the root env", got.String())
	}
}
