package shell

import (
	"context"
	"testing"

	"github.com/ken-morel/shellsy/lang"
)

func echoHandler(_ context.Context, args map[string]lang.Value) (lang.Value, error) {
	return args["msg"], nil
}

func TestShell_ResolveTopLevelCommand(t *testing.T) {
	root := New("")
	root.Register("echo", Overload{
		Params:  []Param{{Name: "msg", Mode: ModePositional}},
		Handler: echoHandler,
	})

	call, err := lang.ParseCall("echo hi", 1)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	cmd, rest, err := root.Resolve(call)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if cmd.Name != "echo" || rest.Path != "echo" {
		t.Fatalf("unexpected resolve result: %+v %+v", cmd, rest)
	}
}

func TestShell_ResolveNestedSubshell(t *testing.T) {
	root := New("")
	fs := New("fs")
	fs.Register("list", Overload{Handler: echoHandler})
	root.Mount("fs", fs)

	call, err := lang.ParseCall("fs.list", 1)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	cmd, _, err := root.Resolve(call)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if cmd.Name != "list" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestShell_ResolveNoSuchCommand(t *testing.T) {
	root := New("")

	call, err := lang.ParseCall("nope", 1)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	_, _, err = root.Resolve(call)
	if err == nil {
		t.Fatal("expected a no-such-command error")
	}
}

func TestShell_ResolveEntrypoint(t *testing.T) {
	root := New("")
	fs := New("fs")
	fs.SetEntrypoint(Overload{Handler: echoHandler})
	root.Mount("fs", fs)

	call, err := lang.ParseCall("fs", 1)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	cmd, _, err := root.Resolve(call)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if cmd != fs.Entrypoint {
		t.Fatalf("expected fs's entrypoint, got %+v", cmd)
	}
}

func TestShell_EnumerateCompletions(t *testing.T) {
	root := New("")
	root.Register("echo", Overload{})
	fs := New("fs")
	fs.Register("list", Overload{})
	fs.Register("remove", Overload{})
	root.Mount("fs", fs)

	got := root.EnumerateCompletions()
	want := map[string]bool{"echo": true, "fs.list": true, "fs.remove": true}

	if len(got) != len(want) {
		t.Fatalf("unexpected completions: %v", got)
	}

	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected completion %q", c)
		}
	}
}
