package shell

import "strings"

// EnumerateCompletions recursively lists every dotted command path
// reachable from s, matching original_source/shellsy/shell.py's
// get_possible_subcommands. The REPL host (cli/cmd/repl) narrows this
// list with github.com/sahilm/fuzzy against the word under the cursor.
func (s *Shell) EnumerateCompletions() []string {
	return s.enumerate("")
}

func (s *Shell) enumerate(prefix string) []string {
	var out []string

	for _, name := range s.names() {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		if _, ok := s.Commands[name]; ok {
			out = append(out, path)
		}

		if sub, ok := s.Subshells[name]; ok {
			out = append(out, sub.enumerate(path)...)
		}
	}

	return out
}

// CompletionsForPrefix returns every enumerated path that starts with
// prefix, used as a cheap pre-filter before the REPL's fuzzy ranking.
func (s *Shell) CompletionsForPrefix(prefix string) []string {
	all := s.EnumerateCompletions()
	if prefix == "" {
		return all
	}

	out := make([]string, 0, len(all))

	for _, c := range all {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}

	return out
}
