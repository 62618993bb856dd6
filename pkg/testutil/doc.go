// Package testutil provides helpers for building server and configuration
// directories in tests, on disk or in a filesystem.FS.
package testutil
