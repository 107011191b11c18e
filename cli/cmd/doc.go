// Package cmd provides shellsy's subcommands: Repl (the interactive shell),
// Eval (non-interactive evaluation of a line or source files), and Version.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cacheDir"

	// ConfigIdentifier is the kong variable identifier containing the name of
	// the default configuration namespace parsed from the configuration file.
	ConfigIdentifier = "config"
)
