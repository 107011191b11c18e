package interp

import (
	"context"
	"math/big"
	"testing"

	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

func bigFromInt(n int) *big.Int { return big.NewInt(int64(n)) }

func newTestRoot() *shell.Shell {
	root := shell.New("")
	root.Register("echo",
		shell.Func(func(_ context.Context, args struct{ Value int }) (lang.Value, error) {
			return lang.NewInt("", bigFromInt(args.Value)), nil
		}),
	)

	root.Register("add",
		shell.Func(func(_ context.Context, args struct {
			A int
			B int
		},
		) (lang.Value, error) {
			return lang.NewInt("", bigFromInt(args.A+args.B)), nil
		}),
	)

	return root
}

func TestInterpreter_EvalPlainCall(t *testing.T) {
	it := NewInterpreter(newTestRoot(), nil)
	sess := NewContext()

	v, err := it.Eval(context.Background(), sess, "echo 3", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != lang.KindInt {
		t.Fatalf("expected Int result, got %+v", v)
	}

	last, ok := sess.Root.Get("_")
	if !ok || !last.Equal(v) {
		t.Fatalf("expected %%_ updated to result, got %+v", last)
	}
}

func TestInterpreter_VarAssignAndBareRead(t *testing.T) {
	it := NewInterpreter(newTestRoot(), nil)
	sess := NewContext()

	if _, err := it.Eval(context.Background(), sess, "$x = 7", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := it.Eval(context.Background(), sess, "$x", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != lang.KindInt || v.Raw != "7" {
		t.Fatalf("unexpected value for $x: %+v", v)
	}
}

func TestInterpreter_UndefinedVariable(t *testing.T) {
	it := NewInterpreter(newTestRoot(), nil)
	sess := NewContext()

	_, err := it.Eval(context.Background(), sess, "$missing", 1)
	if err == nil {
		t.Fatal("expected an error for an undefined variable")
	}

	se, ok := err.(*lang.ShellError)
	if !ok || se.Kind != lang.KindUndefinedVariable {
		t.Fatalf("expected KindUndefinedVariable, got %v", err)
	}

	if se.Stack.Len() == 0 {
		// bare-variable errors don't push a call frame, only commands do;
		// this just exercises that fail() doesn't panic on an empty stack.
		_ = se.Stack.Render()
	}
}

func TestInterpreter_NoSuchCommand(t *testing.T) {
	it := NewInterpreter(newTestRoot(), nil)
	sess := NewContext()

	_, err := it.Eval(context.Background(), sess, "bogus 1", 1)
	if err == nil {
		t.Fatal("expected an error")
	}

	se, ok := err.(*lang.ShellError)
	if !ok || se.Kind != lang.KindNoSuchCommand {
		t.Fatalf("expected KindNoSuchCommand, got %v", err)
	}

	if se.Stack.Len() != 1 {
		t.Fatalf("expected one surviving frame on failure, got %d", se.Stack.Len())
	}
}

func TestInterpreter_OverloadFallback(t *testing.T) {
	root := shell.New("")
	root.Register("put",
		shell.Func(func(_ context.Context, args struct{ A, B int }) (lang.Value, error) {
			return lang.NewInt("", bigFromInt(args.A+args.B)), nil
		}),
		shell.Func(func(_ context.Context, args struct{ A int }) (lang.Value, error) {
			return lang.NewInt("", bigFromInt(args.A)), nil
		}),
	)

	it := NewInterpreter(root, nil)
	sess := NewContext()

	v, err := it.Eval(context.Background(), sess, "put 5", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Raw == "" || v.Int == nil || v.Int.Int64() != 5 {
		t.Fatalf("expected fallback overload to bind A=5, got %+v", v)
	}
}

func TestInterpreter_DeferredVariableRealizedAgainstDeclaredKind(t *testing.T) {
	root := shell.New("")
	root.Register("square",
		shell.Func(func(_ context.Context, args struct{ N int }) (lang.Value, error) {
			return lang.NewInt("", bigFromInt(args.N*args.N)), nil
		}),
	)

	it := NewInterpreter(root, nil)
	sess := NewContext()
	sess.Root.Set("x", lang.NewInt("4", bigFromInt(4)))

	v, err := it.Eval(context.Background(), sess, "square $x", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Int == nil || v.Int.Int64() != 16 {
		t.Fatalf("expected 16, got %+v", v)
	}
}

func TestInterpreter_ContextMonotonicOnFailure(t *testing.T) {
	it := NewInterpreter(newTestRoot(), nil)
	sess := NewContext()

	if _, err := it.Eval(context.Background(), sess, "echo 1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := it.Eval(context.Background(), sess, "bogus", 2); err == nil {
		t.Fatal("expected an error")
	}

	last, ok := sess.Root.Get("_")
	if !ok || last.Int == nil || last.Int.Int64() != 1 {
		t.Fatalf("expected failed line to leave %%_ untouched, got %+v", last)
	}

	if len(sess.Out) != 1 {
		t.Fatalf("expected Out history to only record the successful line, got %d entries", len(sess.Out))
	}
}

func TestInterpreter_Passthrough(t *testing.T) {
	it := NewInterpreter(newTestRoot(), nil)
	sess := NewContext()

	_, err := it.Eval(context.Background(), sess, "!ls -la", 1)

	pe, ok := err.(*PassthroughError)
	if !ok {
		t.Fatalf("expected *PassthroughError, got %v (%T)", err, err)
	}

	if pe.Command != "ls -la" {
		t.Fatalf("unexpected passthrough command: %q", pe.Command)
	}
}
