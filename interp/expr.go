package interp

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ken-morel/shellsy/lang"
)

// Evaluator realizes the body of an [lang.Expression] into a [lang.Value].
// The engine (C9) never calls an Evaluator directly with a privileged
// implementation of its own; every evaluator, including the default one a
// host installs under the empty prefix, goes through the same
// [Evaluators] registry.
type Evaluator func(ctx context.Context, scope *Scope, body string) (lang.Value, error)

// Evaluators is the open table C9 dispatches embedded-expression prefixes
// through. The zero value is usable; register entries with Register before
// any Expression literal using that prefix is bound.
type Evaluators struct {
	mu    sync.RWMutex
	table map[string]Evaluator
}

// NewEvaluators constructs an empty evaluator table.
func NewEvaluators() *Evaluators {
	return &Evaluators{table: map[string]Evaluator{}}
}

// Register installs fn as the evaluator for prefix (the empty string is
// the default evaluator, selected when an Expression literal carries no
// explicit "prefix#" marker).
func (e *Evaluators) Register(prefix string, fn Evaluator) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.table == nil {
		e.table = map[string]Evaluator{}
	}

	e.table[prefix] = fn
}

// Lookup returns the evaluator registered for prefix, if any.
func (e *Evaluators) Lookup(prefix string) (Evaluator, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	fn, ok := e.table[prefix]

	return fn, ok
}

// programCache memoizes compiled expr-lang programs by source text, so a
// Block or Expression re-evaluated inside a loop does not recompile every
// time. Grounded on ardnew-aenv/lang/eval.go's programCache, which caches
// expr-lang programs the same way for the teacher's own config-expression
// fields.
type programCache struct {
	mu    sync.RWMutex
	cache map[string]*vm.Program
}

func newProgramCache() *programCache {
	return &programCache{cache: map[string]*vm.Program{}}
}

func (c *programCache) compile(body string, opts ...expr.Option) (*vm.Program, error) {
	c.mu.RLock()
	if p, ok := c.cache[body]; ok {
		c.mu.RUnlock()

		return p, nil
	}
	c.mu.RUnlock()

	p, err := expr.Compile(body, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[body] = p
	c.mu.Unlock()

	return p, nil
}

// NewExprEvaluator constructs the default C9 evaluator this module ships:
// it compiles body as an expr-lang program (github.com/expr-lang/expr) and
// runs it against an environment built from every variable visible in
// scope, converting the result back to a [lang.Value]. This is the
// concrete, host-defined default the specification leaves open (§9); the
// engine itself never calls NewExprEvaluator — the eval and repl commands
// (cli/cmd, cli/cmd/repl) register it explicitly under the "" and "expr"
// prefixes, like any other evaluator.
func NewExprEvaluator() Evaluator {
	cache := newProgramCache()

	return func(_ context.Context, scope *Scope, body string) (lang.Value, error) {
		env := exprEnv(scope)

		program, err := cache.compile(body, expr.Env(env))
		if err != nil {
			return lang.Value{}, lang.NewError(
				lang.KindSyntax, "expression compile failed: %v", err,
			)
		}

		result, err := vm.Run(program, env)
		if err != nil {
			return lang.Value{}, lang.NewError(
				lang.KindHandlerError, "expression evaluation failed: %v", err,
			)
		}

		return nativeToValue(result), nil
	}
}

// exprEnv converts scope's visible variables into the map[string]any
// environment expr-lang compiles and runs against.
func exprEnv(scope *Scope) map[string]any {
	vars := scope.All()
	env := make(map[string]any, len(vars))

	for name, v := range vars {
		env[name] = valueToNative(v)
	}

	return env
}

// valueToNative converts a Value to the plain Go type expr-lang's VM
// understands, mirroring lang.FormatValue's YAML-facing toPlain but aimed
// at expr-lang's environment instead of a marshaler.
func valueToNative(v lang.Value) any {
	switch v.Kind {
	case lang.KindInt:
		if v.Int != nil && v.Int.IsInt64() {
			return v.Int.Int64()
		}

		return v.Raw
	case lang.KindDec:
		if v.Dec != nil {
			f, _ := v.Dec.Float64()

			return f
		}

		return v.Raw
	case lang.KindStr:
		return v.Str
	case lang.KindPath:
		return v.Path
	case lang.KindBool:
		return v.Bool
	case lang.KindValueNil, lang.KindNone:
		return nil
	case lang.KindList:
		out := make([]any, len(v.List))
		for i, e := range v.List {
			out[i] = valueToNative(e)
		}

		return out
	case lang.KindMap:
		out := make(map[string]any, len(v.Map))
		for k, e := range v.Map {
			out[k] = valueToNative(e)
		}

		return out
	default:
		return v.String()
	}
}

// nativeToValue converts an expr-lang result back into a Value.
func nativeToValue(x any) lang.Value {
	switch v := x.(type) {
	case nil:
		return lang.None
	case bool:
		return lang.NewBool(v)
	case string:
		return lang.NewStr(v)
	case int:
		return lang.NewInt(fmt.Sprint(v), big.NewInt(int64(v)))
	case int64:
		return lang.NewInt(fmt.Sprint(v), big.NewInt(v))
	case float64:
		raw := fmt.Sprint(v)

		return lang.NewDec(raw, new(big.Rat).SetFloat64(v))
	case []any:
		items := make([]lang.Value, len(v))
		for i, e := range v {
			items[i] = nativeToValue(e)
		}

		return lang.NewList(items)
	case map[string]any:
		items := make(map[string]lang.Value, len(v))
		for k, e := range v {
			items[k] = nativeToValue(e)
		}

		return lang.NewMap(items)
	default:
		return lang.NewStr(fmt.Sprint(v))
	}
}
