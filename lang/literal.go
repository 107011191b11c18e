package lang

import (
	"math/big"
	"os"
	"strings"
	"unicode"
)

// ParseLiteral parses a single raw token (as produced by [Tokenize]) into a
// [Value]. The dispatch order is load-bearing and mirrors
// original_source/shellsy/lang.py's evaluate_literal exactly: boolean/nil/
// none/word keywords are checked before anything else can shadow them,
// variables before numbers (both start with punctuation/digits that would
// otherwise collide), integers before decimals, and so on down to the
// bracketed compound literals.
func ParseLiteral(raw string, span Span) (Value, error) {
	v, err := parseLiteral(raw, span)
	if err != nil {
		return Value{}, err
	}

	v.Span = span

	return v, nil
}

func parseLiteral(raw string, span Span) (Value, error) {
	switch raw {
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	case "nil":
		return Nil, nil
	case "none":
		return None, nil
	}

	if w, ok := LookupWord(raw); ok {
		return NewWord(w), nil
	}

	if strings.HasPrefix(raw, "$") && len(raw) > 1 && isIdentifierStart(rune(raw[1])) {
		return NewVariable(raw[1:]), nil
	}

	if isAllDigits(raw) {
		n, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return Value{}, NewError(KindSyntax, "malformed integer literal %q", raw).With()
		}

		return NewInt(raw, n), nil
	}

	if isDecimalCharset(raw) && strings.ContainsAny(raw, ".") {
		r, ok := new(big.Rat).SetString(raw)
		if ok {
			return NewDec(raw, r), nil
		}
	}

	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return NewStr(raw[1 : len(raw)-1]), nil
	}

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return NewStr(unescapeDouble(raw[1 : len(raw)-1])), nil
	}

	if len(raw) >= 2 && raw[0] == '/' && raw[len(raw)-1] == '/' {
		inner := raw[1 : len(raw)-1]

		return NewPath(inner, os.ExpandEnv(inner)), nil
	}

	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		return parseBracket(raw[1:len(raw)-1], span)
	}

	if isSliceCharset(raw) && strings.Contains(raw, ":") {
		sl, ok := parseSlice(raw)
		if ok {
			return Value{Kind: KindSlice, Raw: raw, Slice: sl}, nil
		}
	}

	if isPointCharset(raw) && strings.Contains(raw, ",") {
		pt, ok := parsePoint(raw)
		if ok {
			return Value{Kind: KindPoint, Raw: raw, Point: pt}, nil
		}
	}

	if len(raw) >= 2 && raw[0] == '(' && raw[len(raw)-1] == ')' {
		return parseExpression(raw[1:len(raw)-1], span), nil
	}

	if len(raw) >= 2 && raw[0] == '{' && raw[len(raw)-1] == '}' {
		calls, err := parseBlockBody(raw[1:len(raw)-1], span)
		if err != nil {
			return Value{}, err
		}

		return NewBlock(&Block{Calls: calls, Span: span}), nil
	}

	// Anything else is a bare word token: treated as a string, matching the
	// original's fallback of returning the raw string when nothing else
	// matches.
	return NewStr(raw), nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		start = 1
	}

	if start == len(s) {
		return false
	}

	for _, r := range s[start:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func isDecimalCharset(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+' {
			return false
		}
	}

	return s != ""
}

func isSliceCharset(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ':' && r != '-' {
			return false
		}
	}

	return s != ""
}

func isPointCharset(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ',' && r != '.' && r != '-' {
			return false
		}
	}

	return s != ""
}

func parseSlice(s string) (SliceValue, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return SliceValue{}, false
	}

	parse := func(p string) *big.Int {
		if p == "" {
			return nil
		}

		n, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil
		}

		return n
	}

	sl := SliceValue{Start: parse(parts[0]), Stop: parse(parts[1])}
	if len(parts) == 3 && parts[2] != "" {
		sl.Step = parse(parts[2])
	}

	return sl, true
}

func parsePoint(s string) (PointValue, bool) {
	parts := strings.Split(s, ",")
	comps := make([]*big.Rat, 0, len(parts))

	for _, p := range parts {
		r, ok := new(big.Rat).SetString(p)
		if !ok {
			return PointValue{}, false
		}

		comps = append(comps, r)
	}

	return PointValue{Components: comps}, true
}

// exprPrefixRe-equivalent: a prefix must be [A-Za-z][A-Za-z0-9_]* followed
// immediately by '#'. Decided as an Open Question in DESIGN.md, grounded
// on original_source/shellsy/lang.py's isalpha() prefix check.
func parseExpression(body string, span Span) Value {
	if idx := strings.IndexByte(body, '#'); idx > 0 {
		prefix := body[:idx]
		first := prefix[0]
		asciiStart := (first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')
		asciiRest := strings.IndexFunc(prefix, func(r rune) bool { return r > unicode.MaxASCII }) < 0

		if asciiStart && asciiRest && isIdentifier(prefix) {
			return NewExpression(&Expression{Prefix: prefix, Body: body[idx+1:], Span: span})
		}
	}

	return NewExpression(&Expression{Prefix: "", Body: body, Span: span})
}

func isIdentifier(s string) bool {
	if s == "" || !isIdentifierStart(rune(s[0])) {
		return false
	}

	for _, r := range s[1:] {
		if !isIdentifierContinue(r) {
			return false
		}
	}

	return true
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// parseBracket parses the interior of a List or Map literal per spec
// §4.2/§6.1: the interior is handed to [Tokenize] (C3), the same recursive
// argument tokenization used for a command's top-level arguments, so nested
// brackets/flags (e.g. `[1 2 [3] [] [-] [-a 3 -b 5]]`) parse exactly the way
// command arguments do. The result is a Map if any flag token ([IsFlag])
// appears, otherwise a List. `[]` is the empty list; `[-]` is the empty map,
// special-cased since a lone "-" is one character too short to satisfy
// IsFlag's own "-letter" rule.
func parseBracket(inner string, span Span) (Value, error) {
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		return NewList(nil), nil
	}

	if trimmed == "-" {
		return NewMap(map[string]Value{}), nil
	}

	tokens := Tokenize(inner, span.Start.Line)

	hasFlag := false

	for _, t := range tokens {
		if IsFlag(t.Text) {
			hasFlag = true

			break
		}
	}

	if hasFlag {
		m := map[string]Value{}

		for i := 0; i < len(tokens); i++ {
			tok := tokens[i]
			if !IsFlag(tok.Text) {
				continue
			}

			name := tok.Text[1:]

			if i+1 < len(tokens) && !IsFlag(tokens[i+1].Text) {
				i++

				v, err := ParseLiteral(tokens[i].Text, tokens[i].Span)
				if err != nil {
					return Value{}, err
				}

				m[name] = v

				continue
			}

			m[name] = Nil
		}

		return NewMap(m), nil
	}

	list := make([]Value, 0, len(tokens))

	for _, tok := range tokens {
		v, err := ParseLiteral(tok.Text, tok.Span)
		if err != nil {
			return Value{}, err
		}

		list = append(list, v)
	}

	return NewList(list), nil
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// (), [], {}, or quotes.
func splitTopLevel(s string, sep byte) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	parts = append(parts, s[start:])

	return parts
}

// parseBlockBody splits a Block literal's body into CommandCalls on
// top-level ';', grounded on original_source/shellsy/lang.py's
// CommandBlock.from_string.
func parseBlockBody(body string, span Span) ([]*CommandCall, error) {
	pieces := splitTopLevel(body, ';')

	calls := make([]*CommandCall, 0, len(pieces))

	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		call, err := ParseCall(p, span.Start.Line)
		if err != nil {
			return nil, err
		}

		calls = append(calls, call)
	}

	return calls, nil
}

func unescapeDouble(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++

			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte('\\')
				b.WriteByte(s[i])
			}

			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
