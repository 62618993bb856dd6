// Package operations provides the link operations that materialize files
// into a server directory, and the executor that applies them.
//
// mineflake only does four things to a file:
//
//   - Copy: byte-copy a source file, leaving the copy writable
//   - Raw: write text content after {{NAME}} environment substitution
//   - MergeJSON: deep-merge a fragment into an existing JSON file
//   - MergeYAML: deep-merge a fragment into an existing YAML file
//
// Operation is a closed set: the variants above are the only types that
// satisfy it, and the executor dispatches on them in a single type switch.
// Everything else (which files a server needs, where they come from) is
// decided by the server and config packages.
package operations
