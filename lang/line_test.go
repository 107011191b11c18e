package lang

import "testing"

func TestParseLine_Comment(t *testing.T) {
	for _, raw := range []string{"# a comment", "   # indented", ""} {
		line, err := ParseLine(raw, 1)
		if err != nil {
			t.Fatalf("ParseLine(%q) error: %v", raw, err)
		}

		if line.Kind != LineComment {
			t.Fatalf("ParseLine(%q).Kind = %v, want LineComment", raw, line.Kind)
		}
	}
}

func TestParseLine_Bang(t *testing.T) {
	line, err := ParseLine("!ls -la", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Kind != LineBang || line.Passthrough != "ls -la" {
		t.Fatalf("unexpected bang line: %+v", line)
	}
}

func TestParseLine_VarAssign(t *testing.T) {
	line, err := ParseLine("$x = 7", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Kind != LineVarAssign || line.Name != "x" {
		t.Fatalf("unexpected var-assign line: %+v", line)
	}

	if line.Literal.Kind != KindInt {
		t.Fatalf("expected Int literal, got %+v", line.Literal)
	}
}

func TestParseLine_VarCommand(t *testing.T) {
	line, err := ParseLine("$x : echo 3", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Kind != LineVarCommand || line.Name != "x" || line.RHSLine != "echo 3" {
		t.Fatalf("unexpected var-command line: %+v", line)
	}
}

func TestParseLine_VarBare(t *testing.T) {
	line, err := ParseLine("$x", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Kind != LineVarBare || line.Name != "x" {
		t.Fatalf("unexpected var-bare line: %+v", line)
	}
}

func TestParseLine_PlainCall(t *testing.T) {
	line, err := ParseLine("echo 3", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Kind != LineCall || line.Call.Path != "echo" {
		t.Fatalf("unexpected call line: %+v", line)
	}
}
