package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ken-morel/shellsy/shell"
)

// signatureHintStyle styles for parameter hints.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
	signatureSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// functionCall represents a detected command invocation in the input: the
// command word (Shellsy's grammar is space-separated, not comma/paren-
// delimited, so "in a call" just means "the cursor is past the leading
// word of a non-blank line") and which positional argument slot the
// cursor currently sits in.
type functionCall struct {
	name     string // command path, e.g. "path.cat"
	argIndex int    // current argument index (0-based)
	inCall   bool
}

// detectFunctionCall splits input on whitespace up to cursor and reports
// the leading word plus how many further words precede the cursor.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	head := input[:cursor]

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return functionCall{inCall: false}
	}

	// Still typing the leading word itself: not yet "in" the call unless a
	// trailing space has moved the cursor into argument territory.
	endsInSpace := cursor > 0 && isWordBoundary(rune(head[cursor-1]))
	if len(fields) == 1 && !endsInSpace {
		return functionCall{inCall: false}
	}

	argIndex := len(fields) - 1
	if !endsInSpace {
		// Cursor sits inside the last field; that field is the argument
		// being typed, not yet a completed one.
		argIndex--
	}

	return functionCall{name: fields[0], argIndex: argIndex, inCall: true}
}

// getSignature looks up cmd's Params by dotted path and renders them as a
// "name(param1, param2)" signature string alongside their bare names.
func getSignature(root *shell.Shell, path string) (signature string, params []string) {
	cmd, ok := root.Lookup(path)
	if !ok || len(cmd.Overload) == 0 {
		return "", nil
	}

	// Overloads may disagree on arity; show the first one, which is the
	// common case for the demonstration commands this module ships.
	names := extractParamNames(cmd.Overload[0].Params)

	return formatSignature(path, names), names
}

// formatSignature formats a function signature with parameter names.
func formatSignature(name string, paramNames []string) string {
	if len(paramNames) == 0 {
		return name + "()"
	}

	return name + "(" + strings.Join(paramNames, ", ") + ")"
}

// extractParamNames extracts parameter names from an overload's Params.
func extractParamNames(params []shell.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	return names
}

// renderSignatureHint renders the function signature with the current
// parameter highlighted.
func renderSignatureHint(
	signature string,
	params []string,
	currentArgIdx int,
) string {
	if signature == "" {
		return ""
	}

	openParen := strings.Index(signature, "(")
	if openParen == -1 {
		return signatureStyle.Render(signature)
	}

	funcName := signature[:openParen]

	if len(params) == 0 {
		return signatureNameStyle.Render(funcName) +
			signatureStyle.Render("()")
	}

	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(funcName))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureSeparatorStyle.Render(", "))
		}

		if currentArgIdx == i {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
