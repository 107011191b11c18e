// Package interp ties the lang, shell, and bind packages together: it
// resolves a command call against a Shell tree, binds its arguments,
// resolves any deferred (Variable/Expression/Block) values the bound
// overload actually wants evaluated, and invokes the handler.
//
// Grounded on original_source/shellsy/interpreter.py's S_Interpreter.
package interp
