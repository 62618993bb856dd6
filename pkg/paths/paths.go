package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mineflake/pkg/errors"
)

// Default directories and files.
// These names are part of the on-disk layout of a managed server directory
// and must stay stable across releases.
const (
	// DefaultConfigFile is the configuration file looked up when none is given
	DefaultConfigFile = "mineflake.yml"

	// StateDirName is the directory inside the server directory holding mineflake state
	StateDirName = ".mineflake"

	// StateFileName is the name of the persisted server state
	StateFileName = "state.toml"

	// EnvConfigPrefix prefixes environment variables that override configuration
	EnvConfigPrefix = "MINEFLAKE_"
)

// StateDir returns the state directory of a server directory.
func StateDir(root string) string {
	return filepath.Join(root, StateDirName)
}

// StatePath returns the path of the persisted state of a server directory.
func StatePath(root string) string {
	return filepath.Join(root, StateDirName, StateFileName)
}

// ResolveDestination joins a link destination onto root.
// The destination must be relative and must stay inside root after
// cleaning; "a/../b" is accepted, "../b" and "/etc/passwd" are not.
// The state directory is reserved and cannot be a destination.
func ResolveDestination(root, destination string) (string, error) {
	if err := ValidatePath(destination); err != nil {
		return "", err
	}
	if filepath.IsAbs(destination) || filepath.VolumeName(destination) != "" {
		return "", errors.Newf(errors.ErrInvalidInput,
			"destination %q must be relative to the server directory", destination).
			WithDetail("destination", destination)
	}

	cleaned := filepath.Clean(destination)
	if cleaned == "." {
		return "", errors.Newf(errors.ErrInvalidInput,
			"destination %q resolves to the server directory itself", destination).
			WithDetail("destination", destination)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput,
			"destination %q escapes the server directory", destination).
			WithDetail("destination", destination)
	}

	if cleaned == StateDirName || strings.HasPrefix(cleaned, StateDirName+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput,
			"destination %q is inside the reserved %s directory", destination, StateDirName).
			WithDetail("destination", destination)
	}

	return filepath.Join(root, cleaned), nil
}
