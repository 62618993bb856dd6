// Package state records which paths a run of mineflake wrote and computes
// the stale paths left behind by a previous run.
//
// A ServerState is an insertion-ordered set of absolute destination paths.
// Diff(current, previous) returns the paths of previous that current no
// longer produces; Store persists a state inside the server directory so the
// next run can diff against it.
package state
