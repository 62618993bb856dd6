// Package prune removes stale files and the directories they leave empty.
//
// Pruning is best effort. Failure to delete a file is logged and ignored; a
// leftover file is not corruption, it simply survives until the next run.
// The upward walk only ever removes directories with zero entries, so any
// file at all, managed or not, stops it.
package prune

import (
	"path/filepath"

	"github.com/arthur-debert/mineflake/pkg/filesystem"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/arthur-debert/mineflake/pkg/paths"
)

// Pruner deletes files and their empty ancestors.
type Pruner struct {
	fs filesystem.FS

	// Boundary, when set, is never removed and the walk stops there.
	// Paths outside the boundary are left alone entirely.
	Boundary string
}

// New returns a Pruner without a boundary.
func New(fs filesystem.FS) *Pruner {
	return &Pruner{fs: fs}
}

// NewBounded returns a Pruner that never walks past boundary.
func NewBounded(fs filesystem.FS, boundary string) *Pruner {
	return &Pruner{fs: fs, Boundary: filepath.Clean(boundary)}
}

// Prune removes the file at path, then removes each parent directory while
// it is empty.
func Prune(fs filesystem.FS, path string) {
	New(fs).Prune(path)
}

// Prune removes the file at path, then removes each parent directory while
// it is empty. It stops at the first non-empty or unreadable directory, at
// the filesystem root, or at the boundary.
func (p *Pruner) Prune(path string) {
	logger := logging.GetLogger("prune")

	if p.Boundary != "" && !p.within(path) {
		logger.Warn().
			Str("path", path).
			Str("boundary", p.Boundary).
			Msg("refusing to prune path outside boundary")
		return
	}

	logger.Debug().Str("path", path).Msg("Removing file")
	if err := p.fs.Remove(path); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("could not remove file")
	}

	current := filepath.Clean(path)
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return
		}
		if p.Boundary != "" && !p.within(parent) {
			return
		}

		entries, err := p.fs.ReadDir(parent)
		if err != nil || len(entries) > 0 {
			return
		}

		logger.Debug().Str("path", parent).Msg("Removing empty directory")
		if err := p.fs.Remove(parent); err != nil {
			logger.Debug().Err(err).Str("path", parent).Msg("could not remove directory")
			return
		}
		current = parent
	}
}

// All prunes every path in order.
func (p *Pruner) All(stale []string) {
	for _, path := range stale {
		p.Prune(path)
	}
}

// within reports whether path lies strictly below the boundary.
func (p *Pruner) within(path string) bool {
	cleaned := filepath.Clean(path)
	return cleaned != p.Boundary && paths.ContainsPath(p.Boundary, cleaned)
}
