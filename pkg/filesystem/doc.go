// Package filesystem provides filesystem implementations for mineflake.
//
// This package defines the FS interface used by the linker, the pruner and
// the state store, together with the OS implementation used at runtime and
// an afero-backed implementation for in-memory tests.
package filesystem
