package interp

import (
	"context"
	"testing"

	"github.com/ken-morel/shellsy/lang"
)

func TestExprEvaluator_Arithmetic(t *testing.T) {
	eval := NewExprEvaluator()
	scope := NewScope()

	v, err := eval(context.Background(), scope, "1 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != lang.KindInt || v.Int == nil || v.Int.Int64() != 3 {
		t.Fatalf("expected Int(3), got %+v", v)
	}
}

func TestExprEvaluator_SeesScopeVariables(t *testing.T) {
	eval := NewExprEvaluator()
	scope := NewScope()
	scope.Set("x", lang.NewInt("4", bigFromInt(4)))

	v, err := eval(context.Background(), scope, "x * x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Int == nil || v.Int.Int64() != 16 {
		t.Fatalf("expected 16, got %+v", v)
	}
}

func TestExprEvaluator_CompileError(t *testing.T) {
	eval := NewExprEvaluator()
	scope := NewScope()

	_, err := eval(context.Background(), scope, "1 +")

	se, ok := err.(*lang.ShellError)
	if !ok || se.Kind != lang.KindSyntax {
		t.Fatalf("expected KindSyntax error, got %v", err)
	}
}

func TestEvaluators_RegisterAndLookup(t *testing.T) {
	table := NewEvaluators()

	called := false
	table.Register("py", func(_ context.Context, _ *Scope, body string) (lang.Value, error) {
		called = true

		return lang.NewStr(body), nil
	})

	fn, ok := table.Lookup("py")
	if !ok {
		t.Fatal("expected \"py\" evaluator to be registered")
	}

	if _, err := fn(context.Background(), NewScope(), "whatever"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !called {
		t.Fatal("expected registered evaluator to run")
	}

	if _, ok := table.Lookup("missing"); ok {
		t.Fatal("expected no evaluator registered for \"missing\"")
	}
}
