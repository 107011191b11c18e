package interp

import (
	"context"

	"github.com/ken-morel/shellsy/lang"
)

// EvalCall evaluates a single already-parsed command call against sess,
// clearing sess's diagnostic stack first the same way Eval does for a raw
// line. It exists for hosts (the eval subcommand's file-batch mode) that
// parse a whole source ahead of time via [lang.Cache.ParseReader] instead of
// line-by-line through Eval.
func (it *Interpreter) EvalCall(ctx context.Context, sess *Context, call *lang.CommandCall) (lang.Value, error) {
	sess.Stack.Clear()

	return it.evalCall(ctx, sess, call)
}
