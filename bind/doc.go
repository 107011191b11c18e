// Package bind implements Shellsy's argument binder: given a
// shell.Overload and a parsed lang.CommandCall, it distributes positional
// and keyword arguments onto the overload's parameters, applies defaults,
// and reports one of three outcomes so that a Command with several
// Overloads can try each in turn.
//
// Grounded on original_source/shellsy/args.py's
// CommandParameters.bind, including its ShouldDispatch-style fallback: a
// shape mismatch (wrong arity, unresolvable keyword, missing required
// argument, or a type that cannot be coerced) does not abort the whole
// call — it only rules out the current overload.
package bind
