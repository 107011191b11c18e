package shell

import (
	"context"
	"sort"

	"github.com/ken-morel/shellsy/lang"
)

// ParamMode describes how a [Param] may be supplied by a caller.
type ParamMode int

const (
	// ModePositional accepts the parameter only by position.
	ModePositional ParamMode = iota // positional
	// ModeKeyword accepts the parameter only by name (a `-name value` flag).
	ModeKeyword // keyword
	// ModeEither accepts the parameter either positionally or by name.
	ModeEither // either
)

// String returns the linecomment name of the mode.
func (m ParamMode) String() string {
	switch m {
	case ModePositional:
		return "positional"
	case ModeKeyword:
		return "keyword"
	case ModeEither:
		return "either"
	default:
		return "unknown"
	}
}

// Param describes one formal parameter of an [Overload].
type Param struct {
	Name    string
	Kind    lang.ValueKind
	HasKind bool // false means "any" — accepts any Value.Kind
	Default *lang.Value
	Mode    ParamMode
}

// Handler is invoked once an [Overload]'s parameters have been bound. args
// maps parameter name to its bound value, including defaults.
type Handler func(ctx context.Context, args map[string]lang.Value) (lang.Value, error)

// Overload is one callable shape of a [Command]. A Command may carry
// several overloads; the binder tries each in order and falls back to the
// next only on a WrongShape result (see the bind package).
type Overload struct {
	Params  []Param
	Handler Handler
}

// Command is a named, possibly overloaded leaf of the command tree.
type Command struct {
	Name     string
	Doc      string
	Overload []Overload
}

// Shell is a node of the command tree: it owns directly registered
// Commands plus nested Shells reachable through a dotted path, plus an
// optional Entrypoint invoked when the path addressing this shell has no
// further component. Grounded on original_source/shellsy/shell.py's Shell
// class, including its leading-underscore-stripped attribute-discovery
// convention (modeled here as explicit Register/Mount calls instead of
// reflection over struct fields, since Go has no equivalent of Python's
// dynamic instance attributes).
type Shell struct {
	Name       string
	Doc        string
	Parent     *Shell
	Commands   map[string]*Command
	Subshells  map[string]*Shell
	Entrypoint *Command
}

// New constructs an empty Shell node named name.
func New(name string) *Shell {
	return &Shell{
		Name:      name,
		Commands:  map[string]*Command{},
		Subshells: map[string]*Shell{},
	}
}

// Register adds a Command to s, returning it for chaining (e.g. to attach
// a Doc string).
func (s *Shell) Register(name string, overloads ...Overload) *Command {
	cmd := &Command{Name: name, Overload: overloads}
	s.Commands[name] = cmd

	return cmd
}

// SetEntrypoint registers cmd as the command invoked when s is addressed
// with no further dotted component (e.g. a bare sub-shell name typed at
// the prompt), returning cmd for chaining.
func (s *Shell) SetEntrypoint(overloads ...Overload) *Command {
	cmd := &Command{Name: s.Name, Overload: overloads}
	s.Entrypoint = cmd

	return cmd
}

// Mount attaches sub as a nested sub-shell reachable as name.
func (s *Shell) Mount(name string, sub *Shell) *Shell {
	sub.Parent = s
	s.Subshells[name] = sub

	return sub
}

// Resolve peels call.Path one dotted component at a time, descending into
// sub-shells, until it reaches a leaf Command or the current shell's
// Entrypoint. Grounded on original_source/shellsy/args.py's
// CommandCall.inner together with shell.py's call() dispatch.
func (s *Shell) Resolve(call *lang.CommandCall) (*Command, *lang.CommandCall, error) {
	if call.Path == "" {
		if s.Entrypoint != nil {
			return s.Entrypoint, call, nil
		}

		return nil, nil, lang.NewError(lang.KindNoSuchCommand, "sub-shell %q has no entrypoint", s.Name)
	}

	if head, rest, ok := call.Inner(); ok {
		if sub, ok := s.Subshells[head]; ok {
			return sub.Resolve(rest)
		}

		return nil, nil, lang.NewError(lang.KindNoSuchCommand, "no such sub-shell %q", head)
	}

	if cmd, ok := s.Commands[call.Path]; ok {
		return cmd, call, nil
	}

	if sub, ok := s.Subshells[call.Path]; ok {
		if sub.Entrypoint != nil {
			return sub.Entrypoint, call, nil
		}

		return nil, nil, lang.NewError(
			lang.KindNoSuchCommand,
			"%q is a sub-shell, not a command", call.Path,
		)
	}

	return nil, nil, lang.NewError(lang.KindNoSuchCommand, "no such command %q", call.Path)
}

// Path returns the dotted path from the root shell down to s.
func (s *Shell) Path() string {
	if s.Parent == nil || s.Parent.Name == "" {
		return s.Name
	}

	parent := s.Parent.Path()
	if parent == "" {
		return s.Name
	}

	return parent + "." + s.Name
}

// names returns the sorted union of command and sub-shell names directly
// under s.
func (s *Shell) names() []string {
	out := make([]string, 0, len(s.Commands)+len(s.Subshells))
	for name := range s.Commands {
		out = append(out, name)
	}

	for name := range s.Subshells {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
