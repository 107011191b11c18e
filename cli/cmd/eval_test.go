package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestEvalRunLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr bool
	}{
		{name: "echo a string", line: `echo "hello"`, wantErr: false},
		{name: "add two ints", line: "add 1 2", wantErr: false},
		{name: "undefined command", line: "does.not.exist", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := &Eval{Line: tt.line}

			err := eval.Run(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Eval.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEvalRunSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "script.shellsy")

	if err := os.WriteFile(file, []byte("echo 1\necho 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	eval := &Eval{Source: []string{file}}

	if err := eval.Run(context.Background()); err != nil {
		t.Errorf("Eval.Run() with source file unexpected error = %v", err)
	}
}

func TestEvalRunNoLineNoSource(t *testing.T) {
	eval := &Eval{}

	if err := eval.Run(context.Background()); err == nil {
		t.Error("Eval.Run() with neither line nor source: want error, got nil")
	}
}
