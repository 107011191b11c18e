package lang

import "testing"

func TestParseCall_PositionalAndFlags(t *testing.T) {
	call, err := ParseCall(`shell.sub echo 1 2 -name "bob" -verbose`, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if call.Path != "shell.sub" {
		t.Fatalf("unexpected path: %q", call.Path)
	}

	if len(call.Args) != 3 {
		t.Fatalf("expected 3 positional args, got %d: %+v", len(call.Args), call.Args)
	}

	name, ok := call.KwValues["name"]
	if !ok || name.Kind != KindStr || name.Str != "bob" {
		t.Fatalf("expected -name bob, got %+v", name)
	}

	// -verbose is immediately followed by nothing, so it binds Nil.
	verbose, ok := call.KwValues["verbose"]
	if !ok || verbose.Kind != KindValueNil {
		t.Fatalf("expected -verbose to bind Nil, got %+v", verbose)
	}
}

func TestParseCall_FlagFollowedByFlagBindsNil(t *testing.T) {
	call, err := ParseCall("cmd -a -b 5", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, ok := call.KwValues["a"]
	if !ok || a.Kind != KindValueNil {
		t.Fatalf("expected -a to bind Nil when followed by another flag, got %+v", a)
	}

	b, ok := call.KwValues["b"]
	if !ok || b.Kind != KindInt {
		t.Fatalf("expected -b to bind 5, got %+v", b)
	}
}

func TestCommandCall_Inner(t *testing.T) {
	call, err := ParseCall("fs.dir.list", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	head, rest, ok := call.Inner()
	if !ok || head != "fs" || rest.Path != "dir.list" {
		t.Fatalf("unexpected Inner() result: head=%q rest=%+v ok=%v", head, rest, ok)
	}

	_, _, ok = rest.Inner()
	if !ok {
		t.Fatal("expected another Inner() split")
	}
}
