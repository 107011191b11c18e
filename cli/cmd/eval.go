package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ken-morel/shellsy/builtin"
	"github.com/ken-morel/shellsy/interp"
	"github.com/ken-morel/shellsy/lang"
)

// Eval evaluates a single line, or a batch of source files, non-interactively.
type Eval struct {
	Line   string   `arg:""  help:"Command line to evaluate (omit to read --source instead)" optional:""`
	Source []string `        help:"Source files to evaluate as a batch ('-' for stdin)"       optional:"" short:"f"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	root := builtin.New()

	evaluators := interp.NewEvaluators()
	defaultEval := interp.NewExprEvaluator()
	evaluators.Register("", defaultEval)
	evaluators.Register("expr", defaultEval)

	it := interp.NewInterpreter(root, evaluators)
	sess := interp.NewContext()

	if e.Line != "" {
		return e.runLine(ctx, it, sess)
	}

	return e.runSource(ctx, it, sess)
}

// runLine evaluates e.Line directly, printing its result in native format.
func (e *Eval) runLine(ctx context.Context, it *interp.Interpreter, sess *interp.Context) error {
	result, err := it.Eval(ctx, sess, e.Line, 1)
	if err != nil {
		return e.report(err)
	}

	return printResult(result)
}

// runSource parses every configured source file as a batch of command
// calls and evaluates them in order, printing each call's result.
func (e *Eval) runSource(ctx context.Context, it *interp.Interpreter, sess *interp.Context) error {
	src := buildSourceFiles(e.Source)
	if src == nil || src.IsZero() {
		return lang.NewError(lang.KindSyntax, "no line or source given to evaluate")
	}

	calls, err := lang.NewCache().ParseReader(src)
	if err != nil {
		return err
	}

	for _, call := range calls {
		result, err := it.EvalCall(ctx, sess, call)
		if err != nil {
			return e.report(err)
		}

		if err := printResult(result); err != nil {
			return err
		}
	}

	return nil
}

// report prints a ShellError's Report (message plus stack trace) to stderr
// and returns the error; any other error is returned unchanged.
func (e *Eval) report(err error) error {
	if se, ok := err.(*lang.ShellError); ok {
		fmt.Fprintln(os.Stderr, se.Report())

		return se
	}

	return err
}

// printResult renders v in its native format and writes it to stdout.
func printResult(v lang.Value) error {
	formatted, err := lang.FormatValue(v, lang.FormatNative)
	if err != nil {
		return err
	}

	fmt.Println(formatted)

	return nil
}
