package lang

import "strings"

// LineKind classifies the shape of one raw input line, per the surface
// grammar's top-level alternation (comment | bang | var-form | call).
type LineKind int

const (
	// LineCall is an ordinary command invocation.
	LineCall LineKind = iota // call
	// LineComment is a blank line or one whose first non-blank character is
	// '#'; the interpreter returns None for these without touching context.
	LineComment // comment
	// LineBang is a leading-'!' host-shell passthrough; the core only
	// extracts the passthrough text, the host decides what to do with it.
	LineBang // bang
	// LineVarAssign is `$name = <literal>`.
	LineVarAssign // var-assign
	// LineVarCommand is `$name : <command-line>`; the right-hand side is a
	// full command line that must be recursively evaluated by the
	// interpreter before the assignment is made.
	LineVarCommand // var-command
	// LineVarBare is a bare `$name`, read-only reference to a variable.
	LineVarBare // var-bare
)

// Line is the parsed shape of one input line, dispatched by [ParseLine].
// Exactly one of Literal/RHSLine/Call is meaningful, depending on Kind.
type Line struct {
	Kind LineKind

	// Name is the variable name for the three Var* kinds.
	Name string

	// Literal is the parsed right-hand side of a LineVarAssign.
	Literal Value

	// RHSLine is the unparsed command-line text of a LineVarCommand,
	// recursively handed back to ParseLine/the interpreter.
	RHSLine string

	// Passthrough is the text following '!' for a LineBang.
	Passthrough string

	// Call is the parsed invocation for a LineCall.
	Call *CommandCall

	Span Span
}

// ParseLine classifies and parses one raw input line per §6.1 of the
// surface grammar, dispatching to [ParseCall] for the plain-call case.
// Grounded on original_source/shellsy/interpreter.py's line-dispatch (the
// leading-character checks for '#', '!', '$' before falling through to a
// full CommandCall parse).
func ParseLine(raw string, lineNo int) (*Line, error) {
	trimmed := strings.TrimLeft(raw, " \t")
	leadWS := len(raw) - len(trimmed)

	span := Span{
		Start: Position{Line: lineNo, Column: 1, Offset: 0},
		End:   Position{Line: lineNo, Column: len(raw) + 1, Offset: len(raw)},
		Text:  raw,
	}

	if strings.TrimSpace(trimmed) == "" || strings.HasPrefix(trimmed, "#") {
		return &Line{Kind: LineComment, Span: span}, nil
	}

	if strings.HasPrefix(trimmed, "!") {
		return &Line{Kind: LineBang, Passthrough: trimmed[1:], Span: span}, nil
	}

	if strings.HasPrefix(trimmed, "$") {
		return parseVarForm(trimmed[1:], leadWS, raw, lineNo, span)
	}

	call, err := ParseCall(raw, lineNo)
	if err != nil {
		return nil, err
	}

	return &Line{Kind: LineCall, Call: call, Span: span}, nil
}

// parseVarForm parses the text following a leading '$': a variable name
// followed by '=', ':', or end-of-input.
func parseVarForm(rest string, leadWS int, raw string, lineNo int, span Span) (*Line, error) {
	i := 0
	for i < len(rest) && isIdentifierContinue(rune(rest[i])) {
		i++
	}

	if i == 0 {
		return nil, NewError(
			KindSyntax, "expected a variable name after '$' at %d:%d", lineNo, leadWS+2,
		)
	}

	name := rest[:i]
	remainder := strings.TrimLeft(rest[i:], " \t")

	switch {
	case remainder == "":
		return &Line{Kind: LineVarBare, Name: name, Span: span}, nil

	case strings.HasPrefix(remainder, "="):
		litText := strings.TrimSpace(remainder[1:])

		toks := Tokenize(litText, lineNo)
		if len(toks) == 0 {
			return nil, NewError(KindSyntax, "expected a literal after '=' at %d", lineNo)
		}

		v, err := ParseLiteral(toks[0].Text, toks[0].Span)
		if err != nil {
			return nil, err
		}

		return &Line{Kind: LineVarAssign, Name: name, Literal: v, Span: span}, nil

	case strings.HasPrefix(remainder, ":"):
		cmdLine := strings.TrimSpace(remainder[1:])
		if cmdLine == "" {
			return nil, NewError(KindSyntax, "expected a command after ':' at %d", lineNo)
		}

		return &Line{Kind: LineVarCommand, Name: name, RHSLine: cmdLine, Span: span}, nil

	default:
		return nil, NewError(
			KindSyntax, "expected '=', ':', or end of line after variable name %q", name,
		)
	}
}
