// Package lang implements Shellsy's front end: the literal grammar, the
// argument tokenizer, the command-call parser, the closed Value sum type,
// and the diagnostic stack used to report errors against source positions.
//
// # Literals
//
// A [Value] is produced by parsing a single token with [ParseLiteral].
// Three kinds are deferred rather than evaluated at parse time: Variable,
// Expression, and Block. They are resolved later by the interp package,
// against a scope that did not exist yet when the literal was parsed.
//
// # Diagnostics
//
// Parse and evaluation errors carry a [Stack] of [Frame] values describing
// the nested source positions that led to the failure, stored outermost
// first and rendered innermost first.
// Adjacent frames that point at the same source line are coalesced before
// rendering.
package lang
