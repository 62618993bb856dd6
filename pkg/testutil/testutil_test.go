package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mineflake/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndReadFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, filepath.Join("plugins", "a.jar"), "jar")
	assert.Equal(t, filepath.Join(dir, "plugins", "a.jar"), path)
	assert.Equal(t, "jar", ReadFile(t, path))
}

func TestCreateFileTree(t *testing.T) {
	fs := filesystem.NewMemory()

	CreateFileTree(t, fs, "/srv", FileTree{
		"server.properties": "motd=hi",
		"plugins": FileTree{
			"Essentials": FileTree{"config.yml": "a: 1"},
		},
	})

	data, err := fs.ReadFile("/srv/plugins/Essentials/config.yml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1", string(data))

	data, err = fs.ReadFile("/srv/server.properties")
	require.NoError(t, err)
	assert.Equal(t, "motd=hi", string(data))
}
