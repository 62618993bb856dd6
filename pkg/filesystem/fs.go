package filesystem

import (
	"io/fs"
)

// FS is the filesystem interface required for mineflake operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Remove deletes a file or an empty directory.
	Remove(name string) error
	Rename(oldpath, newpath string) error
}
