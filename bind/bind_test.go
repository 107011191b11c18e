package bind

import (
	"context"
	"testing"

	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

func parseCall(t *testing.T, line string) *lang.CommandCall {
	t.Helper()

	call, err := lang.ParseCall(line, 1)
	if err != nil {
		t.Fatalf("ParseCall(%q): %v", line, err)
	}

	return call
}

func TestBind_PositionalAndDefault(t *testing.T) {
	def := lang.NewBool(false)
	overload := shell.Overload{
		Params: []shell.Param{
			{Name: "name", Kind: lang.KindStr, HasKind: true, Mode: shell.ModePositional},
			{Name: "verbose", Kind: lang.KindBool, HasKind: true, Mode: shell.ModeKeyword, Default: &def},
		},
	}

	call := parseCall(t, "cmd bob")

	result := Bind(overload, call)
	if result.Outcome != Bound {
		t.Fatalf("expected Bound, got %v (%v)", result.Outcome, result.Err)
	}

	if result.Values["name"].Str != "bob" {
		t.Errorf("unexpected name value: %+v", result.Values["name"])
	}

	if result.Values["verbose"].Bool != false {
		t.Errorf("expected default false, got %+v", result.Values["verbose"])
	}
}

func TestBind_ExtraPositionalIsWrongShape(t *testing.T) {
	overload := shell.Overload{
		Params: []shell.Param{{Name: "name", Mode: shell.ModePositional}},
	}

	call := parseCall(t, "cmd bob alice")

	result := Bind(overload, call)
	if result.Outcome != WrongShape {
		t.Fatalf("expected WrongShape, got %v", result.Outcome)
	}
}

func TestBind_MissingRequiredIsWrongShape(t *testing.T) {
	overload := shell.Overload{
		Params: []shell.Param{{Name: "name", Mode: shell.ModePositional}},
	}

	call := parseCall(t, "cmd")

	result := Bind(overload, call)
	if result.Outcome != WrongShape {
		t.Fatalf("expected WrongShape, got %v", result.Outcome)
	}
}

func TestBind_ConcreteKindMismatchIsWrongShape(t *testing.T) {
	overload := shell.Overload{
		Params: []shell.Param{
			{Name: "name", Kind: lang.KindStr, HasKind: true, Mode: shell.ModePositional},
		},
	}

	call := parseCall(t, "cmd 5")

	result := Bind(overload, call)
	if result.Outcome != WrongShape {
		t.Fatalf("expected WrongShape for Int passed to a Str parameter, got %v", result.Outcome)
	}

	if result.Err == nil || result.Err.Kind != lang.KindTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %+v", result.Err)
	}
}

func TestDispatch_OverloadFallback(t *testing.T) {
	cmd := &shell.Command{
		Name: "put",
		Overload: []shell.Overload{
			{
				Params: []shell.Param{
					{Name: "a", Kind: lang.KindInt, HasKind: true, Mode: shell.ModePositional},
					{Name: "b", Kind: lang.KindInt, HasKind: true, Mode: shell.ModePositional},
				},
				Handler: func(_ context.Context, _ map[string]lang.Value) (lang.Value, error) {
					return lang.NewStr("two-arg"), nil
				},
			},
			{
				Params: []shell.Param{
					{Name: "a", Kind: lang.KindInt, HasKind: true, Mode: shell.ModePositional},
				},
				Handler: func(_ context.Context, _ map[string]lang.Value) (lang.Value, error) {
					return lang.NewStr("one-arg"), nil
				},
			},
		},
	}

	call := parseCall(t, "put 5")

	v, err := Dispatch(context.Background(), cmd, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Str != "one-arg" {
		t.Fatalf("expected fallback to one-arg overload, got %+v", v)
	}
}

func TestDispatch_NoMatchingOverload(t *testing.T) {
	cmd := &shell.Command{
		Name: "put",
		Overload: []shell.Overload{
			{Params: []shell.Param{{Name: "a", Mode: shell.ModePositional}}},
		},
	}

	call := parseCall(t, "put 1 2 3")

	_, err := Dispatch(context.Background(), cmd, call)
	if err == nil {
		t.Fatal("expected NoMatchingOverload error")
	}

	se, ok := err.(*lang.ShellError)
	if !ok || se.Kind != lang.KindNoMatchingOverload {
		t.Fatalf("expected NoMatchingOverload, got %v", err)
	}
}
