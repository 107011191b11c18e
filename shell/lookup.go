package shell

import "strings"

// Lookup finds the Command addressed by a dotted path, without requiring a
// parsed call the way Resolve does. It exists for hosts (the repl's
// signature-hint line) that need a command's Params while the user is
// still typing, before there is a full CommandCall to resolve.
func (s *Shell) Lookup(path string) (*Command, bool) {
	if path == "" {
		return nil, false
	}

	head, rest, ok := strings.Cut(path, ".")
	if !ok {
		if cmd, ok := s.Commands[path]; ok {
			return cmd, true
		}

		if sub, ok := s.Subshells[path]; ok {
			return sub.Entrypoint, sub.Entrypoint != nil
		}

		return nil, false
	}

	if sub, ok := s.Subshells[head]; ok {
		return sub.Lookup(rest)
	}

	return nil, false
}
