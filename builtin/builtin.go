// Package builtin assembles the demonstration command tree mounted by the
// eval and repl front ends: a handful of small commands that exercise
// Shellsy's overload dispatch, parameter modes, and Path literal without
// touching anything outside the process (no host-shell execution, no
// network, no writes). Grounded on ardnew-aenv/cli/cmd's registration style
// and shell/func.go's reflection-based Overload builder.
package builtin

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

// New builds the root Shell mounted by the eval and repl commands. It is
// rebuilt fresh per process (Shell carries no persistent state of its own
// beyond the command tree), so there is no shared mutable global here.
func New() *shell.Shell {
	root := shell.New("shellsy")
	root.Doc = "Extensible interactive command shell"

	registerEcho(root)
	registerArith(root)
	registerPath(root)

	return root
}

// registerEcho mounts a single-overload "echo" command: an identity
// function over one argument of any kind, demonstrating a bare ModeEither
// parameter with no declared Kind.
func registerEcho(root *shell.Shell) {
	root.Register("echo", shell.Overload{
		Params: []shell.Param{
			{Name: "value", Mode: shell.ModeEither},
		},
		Handler: func(_ context.Context, args map[string]lang.Value) (lang.Value, error) {
			return args["value"], nil
		},
	})
}

// addArgs is the argument struct for "add", reflected into two Int
// parameters by shell.Func.
type addArgs struct {
	A int64 `shellsy:"a"`
	B int64 `shellsy:"b"`
}

// sumArgs2/sumArgs1 back "sum"'s two overloads, demonstrating arity-based
// overload fallback: a two-argument call binds the first overload, a
// one-argument call falls through to the second.
type sumArgs2 struct {
	A int64 `shellsy:"a"`
	B int64 `shellsy:"b"`
}

type sumArgs1 struct {
	A int64 `shellsy:"a"`
}

// registerArith mounts "add" and "sum", both demonstrating keyword/
// positional dispatch over Int parameters (ModeEither, via shell.Func).
func registerArith(root *shell.Shell) {
	root.Register("add", shell.Func(func(_ context.Context, args addArgs) (lang.Value, error) {
		return lang.NewInt(fmt.Sprintf("%d", args.A+args.B), big.NewInt(args.A+args.B)), nil
	}))

	root.Register("sum",
		shell.Func(func(_ context.Context, args sumArgs2) (lang.Value, error) {
			return lang.NewInt(fmt.Sprintf("%d", args.A+args.B), big.NewInt(args.A+args.B)), nil
		}),
		shell.Func(func(_ context.Context, args sumArgs1) (lang.Value, error) {
			return lang.NewInt(fmt.Sprintf("%d", args.A), big.NewInt(args.A)), nil
		}),
	)
}

// registerPath mounts the "path" subshell: read-only filesystem commands
// (pwd, ls, cat) that exercise the Path value kind without ever writing to
// or executing anything on disk.
func registerPath(root *shell.Shell) {
	sub := shell.New("path")
	sub.Doc = "Read-only filesystem inspection"

	sub.Register("pwd", shell.Overload{
		Handler: func(_ context.Context, _ map[string]lang.Value) (lang.Value, error) {
			wd, err := os.Getwd()
			if err != nil {
				return lang.Value{}, err
			}

			return lang.NewPath(wd, wd), nil
		},
	})

	sub.Register("ls", shell.Overload{
		Params: []shell.Param{
			{
				Name: "dir", Kind: lang.KindPath, HasKind: true, Mode: shell.ModeEither,
				Default: &dotPath,
			},
		},
		Handler: func(_ context.Context, args map[string]lang.Value) (lang.Value, error) {
			dir := pathOf(args["dir"])

			entries, err := os.ReadDir(dir)
			if err != nil {
				return lang.Value{}, err
			}

			items := make([]lang.Value, len(entries))
			for i, e := range entries {
				name := e.Name()
				if e.IsDir() {
					name += "/"
				}

				items[i] = lang.NewStr(name)
			}

			return lang.NewList(items), nil
		},
	})

	sub.Register("cat", shell.Overload{
		Params: []shell.Param{
			{Name: "file", Kind: lang.KindPath, HasKind: true, Mode: shell.ModeEither},
		},
		Handler: func(_ context.Context, args map[string]lang.Value) (lang.Value, error) {
			data, err := os.ReadFile(pathOf(args["file"]))
			if err != nil {
				return lang.Value{}, err
			}

			return lang.NewStr(string(data)), nil
		},
	})

	root.Mount("path", sub)
}

// dotPath is ls's default directory argument, the current directory.
var dotPath = lang.NewPath(".", ".")

// pathOf extracts the filesystem path from a Path value; a value of any
// other kind falls back to its String form.
func pathOf(v lang.Value) string {
	if v.Kind == lang.KindPath {
		return filepath.Clean(v.Path)
	}

	return v.String()
}
