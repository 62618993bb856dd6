// Package paths provides centralized path handling for mineflake.
//
// It owns the names of the files mineflake keeps inside a server directory
// and the validation used to keep link destinations inside that directory.
package paths
