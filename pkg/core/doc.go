// Package core ties the other packages together into the two things
// mineflake does: apply a configuration to a server directory and start the
// server that lives there.
//
// # Apply
//
// An apply run is:
//
//  1. load the configuration (defaults, file, MINEFLAKE_ environment)
//  2. build the substitution environment from the env file and the process
//     environment, the process winning
//  3. ask the server implementation for its operations
//  4. materialize them into the server directory, recording each destination
//  5. diff the new state against the state of the previous run
//  6. prune the paths that are no longer produced, never leaving the server
//     directory
//  7. save the new state
//
// A failure in step 4 aborts the run before any pruning, so the previous
// state stays on disk and the next successful run cleans up. In dry-run mode
// steps 4, 6 and 7 only compute what would happen.
package core
