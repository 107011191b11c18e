package cmd

import (
	"context"

	"github.com/ken-morel/shellsy/builtin"
	"github.com/ken-morel/shellsy/cli/cmd/repl"
	"github.com/ken-morel/shellsy/interp"
	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/log"
)

// Repl starts the interactive shell.
type Repl struct {
	Source  []string `arg:""  help:"Source files to evaluate before entering the prompt ('-' for stdin)" optional:""`
	History string   `        help:"Directory holding the command history file"                          default:"${cacheDir}"`
}

// Run executes the repl command: it preloads any source files given on the
// command line against a fresh session, then hands off to the interactive
// bubbletea program.
func (r *Repl) Run(ctx context.Context) error {
	root := builtin.New()

	evaluators := interp.NewEvaluators()
	defaultEval := interp.NewExprEvaluator()
	evaluators.Register("", defaultEval)
	evaluators.Register("expr", defaultEval)

	it := interp.NewInterpreter(root, evaluators)
	sess := interp.NewContext()

	if src := sourceFilesFrom(ctx); src != nil && !src.IsZero() {
		calls, err := lang.NewCache().ParseReader(src)
		if err != nil {
			return err
		}

		for _, call := range calls {
			if _, err := it.EvalCall(ctx, sess, call); err != nil {
				return err
			}
		}
	}

	return repl.Run(ctx, root, r.History, log.With(), sess)
}
