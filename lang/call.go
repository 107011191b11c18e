package lang

import "strings"

// CommandCall is a parsed invocation: a dotted command path plus its
// positional and keyword arguments. Grounded on
// original_source/shellsy/args.py's CommandCall.
type CommandCall struct {
	Path     string
	Args     []Value
	Kwargs   map[string]string // flag name -> literal token (resolved later)
	KwValues map[string]Value
	Span     Span
}

// String renders the call the way it was written, used by Block's String
// and for diagnostic context lines.
func (c *CommandCall) String() string {
	var b strings.Builder

	b.WriteString(c.Path)

	for _, a := range c.Args {
		b.WriteString(" ")
		b.WriteString(a.String())
	}

	for name, v := range c.KwValues {
		b.WriteString(" -")
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(v.String())
	}

	return b.String()
}

// Inner peels the first dotted component off the call's path, returning it
// together with a copy of the call whose Path is the remainder. ok is
// false if Path has no '.' separator (the call is already at a leaf).
//
// Grounded on original_source/shellsy/args.py's CommandCall.inner.
func (c *CommandCall) Inner() (head string, rest *CommandCall, ok bool) {
	idx := strings.IndexByte(c.Path, '.')
	if idx < 0 {
		return c.Path, nil, false
	}

	restCall := *c
	restCall.Path = c.Path[idx+1:]

	return c.Path[:idx], &restCall, true
}

// ParseCall parses one source line into a [CommandCall]. The command path
// is the maximal leading run of identifier characters and '.', after which
// the rest of the line is tokenized into arguments. A token recognized by
// [IsFlag] introduces a keyword argument; if the next token is itself a
// flag (or there is no next token), the flag's value is Nil, matching the
// resolved Open Question in DESIGN.md.
func ParseCall(line string, startLine int) (*CommandCall, error) {
	trimmed := strings.TrimLeft(line, " \t")
	leadWS := len(line) - len(trimmed)

	end := 0
	for end < len(trimmed) && isPathRune(rune(trimmed[end])) {
		end++
	}

	if end == 0 {
		return nil, NewError(KindSyntax, "expected a command path at %d:%d", startLine, leadWS+1)
	}

	path := trimmed[:end]
	rest := trimmed[end:]

	call := &CommandCall{
		Path:     path,
		Kwargs:   map[string]string{},
		KwValues: map[string]Value{},
		Span: Span{
			Start: Position{Line: startLine, Column: leadWS + 1, Offset: leadWS},
			End:   Position{Line: startLine, Column: leadWS + end + 1, Offset: leadWS + end},
			Text:  line,
		},
	}

	tokens := Tokenize(rest, startLine)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if IsFlag(tok.Text) {
			name := tok.Text[1:]

			if i+1 < len(tokens) && IsFlag(tokens[i+1].Text) {
				call.Kwargs[name] = "nil"
				call.KwValues[name] = Nil

				continue
			}

			if i+1 >= len(tokens) {
				call.Kwargs[name] = "nil"
				call.KwValues[name] = Nil

				continue
			}

			i++
			valTok := tokens[i]

			v, err := ParseLiteral(valTok.Text, valTok.Span)
			if err != nil {
				return nil, err
			}

			call.Kwargs[name] = valTok.Text
			call.KwValues[name] = v

			continue
		}

		v, err := ParseLiteral(tok.Text, tok.Span)
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, v)
	}

	return call, nil
}

func isPathRune(r rune) bool {
	return isIdentifierContinue(r) || r == '.'
}
