package lang

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind classifies a [ShellError] for programmatic dispatch (e.g. deciding
// whether a REPL loop should keep reading or abort).
type Kind int

const (
	// KindSyntax reports a malformed literal, call, or block.
	KindSyntax Kind = iota // syntax
	// KindNoSuchCommand reports that a dotted path did not resolve to a
	// registered command or sub-shell.
	KindNoSuchCommand // no-such-command
	// KindExtraPositional reports more positional arguments than a command
	// accepts.
	KindExtraPositional // extra-positional
	// KindExtraKeyword reports a keyword argument with no matching
	// parameter.
	KindExtraKeyword // extra-keyword
	// KindDuplicateArgument reports a parameter bound more than once.
	KindDuplicateArgument // duplicate-argument
	// KindMissingArgument reports a required parameter left unbound.
	KindMissingArgument // missing-argument
	// KindTypeMismatch reports an argument value that cannot be coerced to
	// its parameter's declared type.
	KindTypeMismatch // type-mismatch
	// KindNoMatchingOverload reports that no overload of a command accepted
	// the given arguments.
	KindNoMatchingOverload // no-matching-overload
	// KindHandlerError reports an error returned by a command's own
	// handler function.
	KindHandlerError // handler-error
	// KindUndefinedVariable reports a Variable literal that did not
	// resolve against the current scope.
	KindUndefinedVariable // undefined-variable
)

// String returns the linecomment name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindNoSuchCommand:
		return "no-such-command"
	case KindExtraPositional:
		return "extra-positional"
	case KindExtraKeyword:
		return "extra-keyword"
	case KindDuplicateArgument:
		return "duplicate-argument"
	case KindMissingArgument:
		return "missing-argument"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindNoMatchingOverload:
		return "no-matching-overload"
	case KindHandlerError:
		return "handler-error"
	case KindUndefinedVariable:
		return "undefined-variable"
	default:
		return "unknown"
	}
}

// ShellError is the single error taxonomy root for the lang, shell, bind,
// and interp packages. Grounded on ardnew-aenv/lang/error.go's
// msg/err/attrs struct pattern.
type ShellError struct {
	Kind  Kind
	msg   string
	err   error
	attrs []slog.Attr
	Stack Stack
}

// NewError constructs a [ShellError] of the given kind with a formatted
// message.
func NewError(kind Kind, format string, args ...any) *ShellError {
	return &ShellError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ShellError) Error() string {
	if e == nil {
		return ""
	}

	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap returns the wrapped error, if any, so errors.Is/As can see through
// a ShellError to its cause.
func (e *ShellError) Unwrap() error { return e.err }

// Wrap attaches a causing error, returning e for chaining.
func (e *ShellError) Wrap(err error) *ShellError {
	e.err = err

	return e
}

// With attaches structured attributes for logging, returning e for
// chaining.
func (e *ShellError) With(attrs ...slog.Attr) *ShellError {
	e.attrs = append(e.attrs, attrs...)

	return e
}

// LogValue implements slog.LogValuer so a ShellError logs as a structured
// group instead of a flat string.
func (e *ShellError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	attrs = append(attrs, slog.String("kind", e.Kind.String()), slog.String("message", e.msg))

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	attrs = append(attrs, e.attrs...)

	return slog.GroupValue(attrs...)
}

// Report renders the error message followed by its coalesced stack trace,
// matching original_source/shellsy/exceptions.py's Stack.show layout.
func (e *ShellError) Report() string {
	s := e.Error()
	if trace := e.Stack.Render(); trace != "" {
		s += "\n" + trace
	}

	return s
}

// Is reports whether target is a *ShellError with the same Kind, enabling
// errors.Is(err, lang.NewError(lang.KindSyntax, "")) style checks.
func (e *ShellError) Is(target error) bool {
	var other *ShellError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}

	return false
}
