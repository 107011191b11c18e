package lang

import "sync"

// Word is a singleton keyword literal such as `as` or `else`. Two Words
// with the same name always compare equal as the same pointer, so command
// handlers can switch on identity rather than string comparison.
//
// Grounded on original_source/shellsy/lang.py's _WordsMeta/Word.add, which
// keeps a dynamically-growing registry of recognized keyword identifiers.
type Word struct {
	Name string
}

var (
	wordMu    sync.Mutex
	wordTable = map[string]*Word{}
)

// registerWord returns the canonical *Word for name, creating it on first
// use.
func registerWord(name string) *Word {
	wordMu.Lock()
	defer wordMu.Unlock()

	if w, ok := wordTable[name]; ok {
		return w
	}

	w := &Word{Name: name}
	wordTable[name] = w

	return w
}

// AddWord registers name as a recognized keyword literal and returns its
// canonical Word, so that callers (command packages) can extend the
// keyword vocabulary the same way original_source/shellsy/lang.py's
// Word.add does.
func AddWord(name string) *Word { return registerWord(name) }

// LookupWord returns the canonical Word for name if it has already been
// registered, and false otherwise. It does not register new words.
func LookupWord(name string) (*Word, bool) {
	wordMu.Lock()
	defer wordMu.Unlock()

	w, ok := wordTable[name]

	return w, ok
}

//nolint:gochecknoinits
func init() {
	for _, name := range []string{"as", "else", "in", "and", "or", "not"} {
		registerWord(name)
	}
}
