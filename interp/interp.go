package interp

import (
	"context"
	"errors"
	"fmt"

	"github.com/ken-morel/shellsy/bind"
	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

// PassthroughError signals a leading-'!' line (§6.1's bang form). The
// core never spawns a host shell itself; it only extracts the text
// following '!' and hands it back wrapped in this error so a host (the
// REPL, the eval subcommand) can decide what "run it on the host shell"
// means in its own environment.
type PassthroughError struct {
	Command string
}

func (e *PassthroughError) Error() string {
	return fmt.Sprintf("passthrough command: %s", e.Command)
}

// Interpreter evaluates parsed input lines against a command tree,
// realizing deferred arguments through a table of embedded-expression
// evaluators. Grounded on original_source/shellsy/interpreter.py's
// S_Interpreter.eval_line / eval_command.
type Interpreter struct {
	Root       *shell.Shell
	Evaluators *Evaluators
}

// NewInterpreter constructs an Interpreter rooted at root. A nil
// evaluators table is replaced with an empty one, so an Expression
// literal fails with a HandlerError instead of a nil-pointer panic until
// the host registers one.
func NewInterpreter(root *shell.Shell, evaluators *Evaluators) *Interpreter {
	if evaluators == nil {
		evaluators = NewEvaluators()
	}

	return &Interpreter{Root: root, Evaluators: evaluators}
}

// FormatResult renders v for display, delegating to [lang.FormatValue].
// It exists in this package only so a host need import just this package
// to both evaluate and format a result.
func FormatResult(v lang.Value, format lang.OutputFormat) (string, error) {
	return lang.FormatValue(v, format)
}

// Eval parses raw as one input line and evaluates it against sess,
// clearing sess's diagnostic stack first: each top-level line starts a
// fresh trace, which accumulates frames for that line's own nested calls
// (block bodies, embedded expressions) and is snapshotted onto any
// returned [lang.ShellError].
func (it *Interpreter) Eval(ctx context.Context, sess *Context, raw string, lineNo int) (lang.Value, error) {
	sess.Stack.Clear()

	line, err := lang.ParseLine(raw, lineNo)
	if err != nil {
		return lang.Value{}, err
	}

	return it.evalLine(ctx, sess, line)
}

// evalLine dispatches on a parsed Line's Kind.
func (it *Interpreter) evalLine(ctx context.Context, sess *Context, line *lang.Line) (lang.Value, error) {
	switch line.Kind {
	case lang.LineComment:
		return lang.None, nil

	case lang.LineBang:
		return lang.Value{}, &PassthroughError{Command: line.Passthrough}

	case lang.LineVarAssign:
		sess.Root.Set(line.Name, line.Literal)
		sess.Record(line.Literal)

		return line.Literal, nil

	case lang.LineVarBare:
		v, ok := sess.Root.Get(line.Name)
		if !ok {
			return it.fail(sess, lang.NewError(
				lang.KindUndefinedVariable, "undefined variable %q", line.Name,
			))
		}

		sess.Record(v)

		return v, nil

	case lang.LineVarCommand:
		rhs, err := lang.ParseLine(line.RHSLine, line.Span.Start.Line)
		if err != nil {
			return lang.Value{}, err
		}

		v, err := it.evalLine(ctx, sess, rhs)
		if err != nil {
			return lang.Value{}, err
		}

		sess.Root.Set(line.Name, v)
		sess.Record(v)

		return v, nil

	case lang.LineCall:
		return it.evalCall(ctx, sess, line.Call)

	default:
		return lang.Value{}, lang.NewError(lang.KindSyntax, "unrecognized line kind")
	}
}

// evalCall resolves call against the command tree rooted at it.Root,
// dispatches it, and manages the diagnostic stack frame for the call
// (C1's contract: pushed before resolution, popped only when the whole
// call succeeds, left in place so the frame survives into the returned
// error on failure).
func (it *Interpreter) evalCall(ctx context.Context, sess *Context, call *lang.CommandCall) (lang.Value, error) {
	sess.Stack.Push(lang.Frame{Span: call.Span, Label: call.Path})

	cmd, leaf, err := it.Root.Resolve(call)
	if err != nil {
		return it.fail(sess, err)
	}

	v, err := it.dispatch(ctx, sess, cmd, leaf)
	if err != nil {
		return it.fail(sess, err)
	}

	sess.Stack.Pop()
	sess.Record(v)

	return v, nil
}

// fail snapshots sess's current diagnostic stack onto err (if it is a
// *lang.ShellError) and returns it as the evaluation result.
func (it *Interpreter) fail(sess *Context, err error) (lang.Value, error) {
	if se, ok := err.(*lang.ShellError); ok {
		var trace lang.Stack
		for _, f := range sess.Stack.Frames() {
			trace.Push(f)
		}

		se.Stack = trace
	}

	return lang.Value{}, err
}

// dispatch tries each of cmd's overloads in order, realizing any deferred
// argument a bound overload actually wants coerced to a concrete kind.
// This is bind.Dispatch's dispatch loop plus the realize step bind itself
// cannot perform, since realizing a Variable/Expression/Block requires a
// session scope and evaluator table.
func (it *Interpreter) dispatch(
	ctx context.Context,
	sess *Context,
	cmd *shell.Command,
	call *lang.CommandCall,
) (lang.Value, error) {
	var attempts []error

	for _, overload := range cmd.Overload {
		result := bind.Bind(overload, call)

		switch result.Outcome {
		case bind.Bound:
			values, shapeErr, err := it.realizeParams(ctx, sess, overload, result.Values)
			if err != nil {
				return lang.Value{}, err
			}

			if shapeErr != nil {
				attempts = append(attempts, shapeErr)

				continue
			}

			v, err := overload.Handler(ctx, values)
			if err != nil {
				if se, ok := err.(*lang.ShellError); ok {
					return lang.Value{}, se
				}

				return lang.Value{}, lang.NewError(
					lang.KindHandlerError, "command %q failed", cmd.Name,
				).Wrap(err)
			}

			return v, nil

		case bind.WrongShape:
			attempts = append(attempts, result.Err)

			continue

		case bind.Fatal:
			return lang.Value{}, result.Err
		}
	}

	if len(attempts) > 0 {
		return lang.Value{}, lang.NewError(
			lang.KindNoMatchingOverload,
			"no overload of %q matches the given arguments", cmd.Name,
		).Wrap(errors.Join(attempts...))
	}

	return lang.Value{}, lang.NewError(
		lang.KindNoMatchingOverload, "%q has no overloads", cmd.Name,
	)
}

// realizeParams resolves every deferred parameter value Bind left
// untouched (a Variable/Expression/Block bound to a param declaring a
// different concrete Kind), then re-applies bind's coercion rules to the
// realized value.
//
// A non-nil error return is a genuine failure (undefined variable, an
// evaluator error, a failed block call) that should propagate directly,
// never trigger overload fallback — which overload was chosen has no
// bearing on whether evaluating the user's own expression succeeded. A
// non-nil shapeErr return, by contrast, means realization succeeded but
// the result's kind still does not fit this overload, which is exactly
// the WrongShape case the caller should try the next overload for.
func (it *Interpreter) realizeParams(
	ctx context.Context,
	sess *Context,
	overload shell.Overload,
	bound map[string]lang.Value,
) (map[string]lang.Value, *lang.ShellError, error) {
	out := make(map[string]lang.Value, len(bound))

	for name, v := range bound {
		out[name] = v
	}

	for _, p := range overload.Params {
		v, ok := out[p.Name]
		if !ok || !p.HasKind || !v.IsDeferred() || v.Kind == p.Kind {
			continue
		}

		realized, err := it.realize(ctx, sess, v)
		if err != nil {
			return nil, nil, err
		}

		if realized.Kind == p.Kind {
			out[p.Name] = realized

			continue
		}

		coerced, ok := bind.Coerce(realized, p.Kind)
		if !ok {
			return nil, lang.NewError(
				lang.KindTypeMismatch,
				"argument %q: expected %s, got %s", p.Name, p.Kind, realized.Kind,
			), nil
		}

		out[p.Name] = coerced
	}

	return out, nil, nil
}

// realize evaluates a deferred Value to a concrete one: a Variable looks
// itself up in sess's current scope, an Expression is handed to the
// evaluator registered for its prefix, and a Block runs its calls in
// sequence in a child scope.
func (it *Interpreter) realize(ctx context.Context, sess *Context, v lang.Value) (lang.Value, error) {
	switch v.Kind {
	case lang.KindVariable:
		val, ok := sess.Root.Get(v.Variable)
		if !ok {
			return lang.Value{}, lang.NewError(
				lang.KindUndefinedVariable, "undefined variable %q", v.Variable,
			)
		}

		return val, nil

	case lang.KindExpression:
		eval, ok := it.Evaluators.Lookup(v.Expr.Prefix)
		if !ok {
			return lang.Value{}, lang.NewError(
				lang.KindHandlerError,
				"no evaluator registered for expression prefix %q", v.Expr.Prefix,
			)
		}

		return eval(ctx, sess.Root, v.Expr.Body)

	case lang.KindBlock:
		return it.evalBlock(ctx, sess, v.Block)

	default:
		return v, nil
	}
}

// evalBlock runs block's calls in order inside a child scope, so
// assignments made within the block do not leak into the caller, and
// returns the value of the last call (None if the block is empty).
func (it *Interpreter) evalBlock(ctx context.Context, sess *Context, block *lang.Block) (lang.Value, error) {
	saved := sess.Root
	sess.Root = saved.Child()

	defer func() { sess.Root = saved }()

	result := lang.None

	for _, call := range block.Calls {
		v, err := it.evalCall(ctx, sess, call)
		if err != nil {
			return lang.Value{}, err
		}

		result = v
	}

	return result, nil
}
