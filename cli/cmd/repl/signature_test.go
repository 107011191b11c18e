package repl

import (
	"context"
	"testing"

	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

func testRoot() *shell.Shell {
	root := shell.New("shellsy")

	root.Register("greeting", shell.Overload{
		Handler: func(context.Context, map[string]lang.Value) (lang.Value, error) {
			return lang.NewStr("hello"), nil
		},
	})

	root.Register("add", shell.Overload{
		Params: []shell.Param{
			{Name: "x", Mode: shell.ModeEither},
			{Name: "y", Mode: shell.ModeEither},
		},
		Handler: func(context.Context, map[string]lang.Value) (lang.Value, error) {
			return lang.Value{}, nil
		},
	})

	nested := shell.New("nested")
	nested.Register("multiply", shell.Overload{
		Params: []shell.Param{
			{Name: "a", Mode: shell.ModeEither},
			{Name: "b", Mode: shell.ModeEither},
		},
		Handler: func(context.Context, map[string]lang.Value) (lang.Value, error) {
			return lang.Value{}, nil
		},
	})
	root.Mount("nested", nested)

	path := shell.New("path")
	path.Register("cat", shell.Overload{
		Params: []shell.Param{
			{Name: "file", Kind: lang.KindPath, HasKind: true, Mode: shell.ModeEither},
		},
		Handler: func(context.Context, map[string]lang.Value) (lang.Value, error) {
			return lang.Value{}, nil
		},
	})
	root.Mount("path", path)

	return root
}

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{
			name:       "typing the leading word",
			input:      "greeting",
			cursor:     8,
			wantName:   "",
			wantIndex:  0,
			wantInCall: false,
		},
		{
			name:       "first arg just started",
			input:      "add ",
			cursor:     4,
			wantName:   "add",
			wantIndex:  0,
			wantInCall: true,
		},
		{
			name:       "typing first arg",
			input:      "add 1",
			cursor:     5,
			wantName:   "add",
			wantIndex:  0,
			wantInCall: true,
		},
		{
			name:       "second arg just started",
			input:      "add 1 ",
			cursor:     6,
			wantName:   "add",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "typing second arg",
			input:      "add 1 2",
			cursor:     7,
			wantName:   "add",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "dotted command name, first arg",
			input:      "nested.multiply 5",
			cursor:     17,
			wantName:   "nested.multiply",
			wantIndex:  0,
			wantInCall: true,
		},
		{
			name:       "dotted command name, second arg started",
			input:      "nested.multiply 5 ",
			cursor:     18,
			wantName:   "nested.multiply",
			wantIndex:  1,
			wantInCall: true,
		},
		{
			name:       "builtin path.cat",
			input:      "path.cat ",
			cursor:     9,
			wantName:   "path.cat",
			wantIndex:  0,
			wantInCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)

			if got.name != tt.wantName {
				t.Errorf("detectFunctionCall().name = %q, want %q", got.name, tt.wantName)
			}

			if got.argIndex != tt.wantIndex {
				t.Errorf("detectFunctionCall().argIndex = %d, want %d", got.argIndex, tt.wantIndex)
			}

			if got.inCall != tt.wantInCall {
				t.Errorf("detectFunctionCall().inCall = %v, want %v", got.inCall, tt.wantInCall)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	root := testRoot()

	tests := []struct {
		name          string
		path          string
		wantSignature string
		wantParams    []string
	}{
		{
			name:          "command without params",
			path:          "greeting",
			wantSignature: "greeting()",
			wantParams:    []string{},
		},
		{
			name:          "command with params",
			path:          "add",
			wantSignature: "add(x, y)",
			wantParams:    []string{"x", "y"},
		},
		{
			name:          "nested command",
			path:          "nested.multiply",
			wantSignature: "nested.multiply(a, b)",
			wantParams:    []string{"a", "b"},
		},
		{
			name:          "nested path command",
			path:          "path.cat",
			wantSignature: "path.cat(file)",
			wantParams:    []string{"file"},
		},
		{
			name:          "nonexistent command",
			path:          "doesnotexist",
			wantSignature: "",
			wantParams:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSig, gotParams := getSignature(root, tt.path)

			if gotSig != tt.wantSignature {
				t.Errorf("getSignature().signature = %q, want %q", gotSig, tt.wantSignature)
			}

			if len(gotParams) != len(tt.wantParams) {
				t.Errorf("getSignature().params length = %d, want %d", len(gotParams), len(tt.wantParams))
				return
			}

			for i := range gotParams {
				if gotParams[i] != tt.wantParams[i] {
					t.Errorf("getSignature().params[%d] = %q, want %q", i, gotParams[i], tt.wantParams[i])
				}
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	tests := []struct {
		name       string
		signature  string
		params     []string
		currentArg int
	}{
		{
			name:       "no params",
			signature:  "greeting()",
			params:     []string{},
			currentArg: 0,
		},
		{
			name:       "first param highlighted",
			signature:  "add(x, y)",
			params:     []string{"x", "y"},
			currentArg: 0,
		},
		{
			name:       "second param highlighted",
			signature:  "add(x, y)",
			params:     []string{"x", "y"},
			currentArg: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSignatureHint(tt.signature, tt.params, tt.currentArg)

			if got == "" && tt.signature != "" {
				t.Errorf("renderSignatureHint() returned empty string for signature %q", tt.signature)
			}
		})
	}
}
