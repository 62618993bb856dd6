package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mineflake/pkg/filesystem"
)

// FileTree represents a nested file structure for declarative test setup.
// Values are either file content (string) or a nested FileTree.
type FileTree map[string]interface{}

// CreateFileTree writes tree below basePath in fs.
func CreateFileTree(t *testing.T, fs filesystem.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fs.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
