package bind

import (
	"math/big"

	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

// Outcome classifies the result of [Bind].
type Outcome int

const (
	// Bound means every parameter was satisfied; Values is ready to pass
	// to the overload's Handler.
	Bound Outcome = iota // bound
	// WrongShape means this overload does not fit the call (wrong arity,
	// unresolvable keyword, missing required argument, or an
	// uncoercible type) — the caller should try the next overload.
	WrongShape // wrong-shape
	// Fatal means binding itself cannot proceed for a reason no
	// alternate overload would fix (currently unused by Bind itself, but
	// reserved for callers that wrap bind errors from deeper evaluation).
	Fatal // fatal
)

// String returns the linecomment name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Bound:
		return "bound"
	case WrongShape:
		return "wrong-shape"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Result is the outcome of attempting to bind one [shell.Overload].
type Result struct {
	Outcome Outcome
	Values  map[string]lang.Value
	Err     *lang.ShellError
}

// Bind attempts to satisfy overload's parameters from call's positional
// and keyword arguments.
//
// Positional arguments fill ModePositional/ModeEither parameters in
// declaration order, skipping any parameter already claimed by a keyword
// argument of the same name. Remaining keyword arguments must each name an
// existing, not-yet-bound, ModeKeyword/ModeEither parameter. Any parameter
// left unbound after that falls back to its Default if one was given
// (the default Value is reused by reference, so no coercion is ever run
// over a default — it is already of the correct static type by
// construction) or else yields a MissingArgument WrongShape result.
func Bind(overload shell.Overload, call *lang.CommandCall) Result {
	bound := make(map[string]lang.Value, len(overload.Params))
	claimed := make(map[string]bool, len(overload.Params))

	for name := range call.KwValues {
		claimed[name] = true
	}

	positional := call.Args
	posIdx := 0

	for _, p := range overload.Params {
		if claimed[p.Name] {
			continue
		}

		if p.Mode == shell.ModeKeyword {
			continue
		}

		if posIdx >= len(positional) {
			continue
		}

		bound[p.Name] = positional[posIdx]
		posIdx++
	}

	if posIdx < len(positional) {
		return wrongShape(lang.KindExtraPositional, "too many positional arguments")
	}

	for name, v := range call.KwValues {
		p, ok := findParam(overload.Params, name)
		if !ok {
			return wrongShape(lang.KindExtraKeyword, "unexpected keyword argument %q", name)
		}

		if p.Mode == shell.ModePositional {
			return wrongShape(lang.KindExtraKeyword, "parameter %q is positional-only", name)
		}

		if _, already := bound[name]; already {
			return wrongShape(lang.KindDuplicateArgument, "argument %q bound more than once", name)
		}

		bound[name] = v
	}

	for _, p := range overload.Params {
		if _, ok := bound[p.Name]; ok {
			continue
		}

		if p.Default != nil {
			// Referential identity: reuse the stored default Value as-is,
			// never re-coerced.
			bound[p.Name] = *p.Default

			continue
		}

		return wrongShape(lang.KindMissingArgument, "missing required argument %q", p.Name)
	}

	for _, p := range overload.Params {
		v, ok := bound[p.Name]
		if !ok || !p.HasKind {
			continue
		}

		if p.Default != nil && sameValue(v, *p.Default) {
			continue // default values are never coerced
		}

		if v.IsDeferred() && p.Kind != v.Kind {
			continue // deferred values resolve later, in interp
		}

		if v.Kind != p.Kind {
			// A concrete (non-deferred) value must already satisfy the
			// declared kind; spec.md §4.7 step 4 only prescribes
			// evaluation/coercion for a value that was deferred, and that
			// case was already skipped above. Anything else is a strict
			// kind mismatch, giving other overloads a chance to match.
			return wrongShape(
				lang.KindTypeMismatch,
				"argument %q: expected %s, got %s", p.Name, p.Kind, v.Kind,
			)
		}
	}

	return Result{Outcome: Bound, Values: bound}
}

func wrongShape(kind lang.Kind, format string, args ...any) Result {
	return Result{Outcome: WrongShape, Err: lang.NewError(kind, format, args...)}
}

func findParam(params []shell.Param, name string) (shell.Param, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}

	return shell.Param{}, false
}

// sameValue reports whether a and b look like the same default instance
// (same Kind and Raw), used only to skip re-coercing an already-applied
// default.
func sameValue(a, b lang.Value) bool {
	return a.Kind == b.Kind && a.Raw == b.Raw
}

// Coerce is the exported form of coerce, used by the interp package to
// apply the same best-effort conversion to a value that was just realized
// from a deferred (Variable/Expression/Block) argument — a step Bind
// itself cannot perform, since realizing a deferred value requires a
// session scope and an evaluator table that bind intentionally does not
// depend on.
func Coerce(v lang.Value, kind lang.ValueKind) (lang.Value, bool) {
	return coerce(v, kind)
}

// coerce attempts a best-effort conversion of v to kind, covering the
// conversions a user would expect to "just work" (e.g. an Int literal
// supplied where a Dec is wanted).
func coerce(v lang.Value, kind lang.ValueKind) (lang.Value, bool) {
	switch kind {
	case lang.KindDec:
		if v.Kind == lang.KindInt && v.Int != nil {
			return lang.NewDec(v.Raw, new(big.Rat).SetInt(v.Int)), true
		}
	case lang.KindStr:
		return lang.NewStr(v.String()), true
	case lang.KindBool:
		return lang.NewBool(v.Truthy()), true
	}

	return lang.Value{}, false
}
