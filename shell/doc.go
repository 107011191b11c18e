// Package shell implements the command tree Shellsy resolves dotted paths
// against: a Shell node holds Commands and nested sub-Shells, and resolves
// a lang.CommandCall by peeling its path one component at a time.
//
// Grounded on original_source/shellsy/shell.py's Shell class.
package shell
