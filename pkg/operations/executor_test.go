// Test Type: Integration Test
// Description: Tests for materializing link operations into a directory

package operations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/filesystem"
	"github.com/arthur-debert/mineflake/pkg/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExecutor(env map[string]string) *operations.Executor {
	return operations.NewExecutor(filesystem.NewOS(), env, false)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMaterializeCopyClearsReadOnly(t *testing.T) {
	src := filepath.Join(t.TempDir(), "Essentials.jar")
	require.NoError(t, os.WriteFile(src, []byte("jar bytes"), 0444))
	root := t.TempDir()

	ops := []operations.Operation{
		operations.Copy{Mapping: operations.NewFileMapping(src, "plugins/Essentials.jar")},
	}
	st, err := newExecutor(nil).Materialize(root, ops)
	require.NoError(t, err)

	dest := filepath.Join(root, "plugins", "Essentials.jar")
	assert.Equal(t, []string{dest}, st.Paths())
	assert.Equal(t, "jar bytes", readFile(t, dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0200, "destination must be writable by owner")

	// A second run overwrites the now-writable copy.
	require.NoError(t, os.Chmod(src, 0644))
	require.NoError(t, os.WriteFile(src, []byte("new jar"), 0644))
	_, err = newExecutor(nil).Materialize(root, ops)
	require.NoError(t, err)
	assert.Equal(t, "new jar", readFile(t, dest))
}

func TestMaterializeRawSubstitutesEnvironment(t *testing.T) {
	root := t.TempDir()
	env := map[string]string{"USER": "alice"}

	st, err := newExecutor(env).Materialize(root, []operations.Operation{
		operations.Raw{Content: "user={{USER}}", Path: "user.txt"},
		operations.Raw{Content: "secret={{UNSET_XYZ}}", Path: "conf/secret.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t, "user=alice", readFile(t, filepath.Join(root, "user.txt")))
	assert.Equal(t, "secret={{UNSET_XYZ}}", readFile(t, filepath.Join(root, "conf", "secret.txt")))
	assert.Equal(t, 2, st.Len())
}

func TestMaterializeRawReplacesContent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "eula.txt")
	require.NoError(t, os.WriteFile(path, []byte("eula=false\n# a much longer previous content\n"), 0644))

	_, err := newExecutor(nil).Materialize(root, []operations.Operation{
		operations.Raw{Content: "eula=true\n", Path: "eula.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "eula=true\n", readFile(t, path))
}

func TestMaterializeMergeJSON(t *testing.T) {
	root := t.TempDir()

	_, err := newExecutor(nil).Materialize(root, []operations.Operation{
		operations.Raw{Content: `{"a":0,"b":2,"nested":{"keep":true}}`, Path: "config.json"},
		operations.MergeJSON{
			Fragment: map[string]any{"a": 1, "nested": map[string]any{"added": "yes"}},
			Path:     "config.json",
		},
	})
	require.NoError(t, err)

	want := "{\n  \"a\": 1,\n  \"b\": 2,\n  \"nested\": {\n    \"added\": \"yes\",\n    \"keep\": true\n  }\n}\n"
	assert.JSONEq(t, want, readFile(t, filepath.Join(root, "config.json")))
}

func TestMaterializeMergeYAML(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bukkit.yml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  allow-end: true\n  spawn-radius: 16\n"), 0644))

	_, err := newExecutor(nil).Materialize(root, []operations.Operation{
		operations.MergeYAML{
			Fragment: map[string]any{"settings": map[string]any{"allow-end": false}},
			Path:     "bukkit.yml",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "settings:\n  allow-end: false\n  spawn-radius: 16\n", readFile(t, path))
}

func TestMaterializeMergeRequiresExistingFile(t *testing.T) {
	for _, op := range []operations.Operation{
		operations.MergeJSON{Fragment: map[string]any{"a": 1}, Path: "missing.json"},
		operations.MergeYAML{Fragment: map[string]any{"a": 1}, Path: "missing.yml"},
	} {
		t.Run(op.Kind().String(), func(t *testing.T) {
			_, err := newExecutor(nil).Materialize(t.TempDir(), []operations.Operation{op})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		})
	}
}

func TestMaterializeMergeInvalidExistingFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.json"), []byte("{nope"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.yml"), []byte("a: [nope"), 0644))

	_, err := newExecutor(nil).Materialize(root, []operations.Operation{
		operations.MergeJSON{Fragment: map[string]any{}, Path: "bad.json"},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))

	_, err = newExecutor(nil).Materialize(root, []operations.Operation{
		operations.MergeYAML{Fragment: map[string]any{}, Path: "bad.yml"},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestMaterializeMergeLeavesMalformedFileUntouched(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		op      operations.Operation
	}{
		{
			name:    "json key without value",
			file:    "ops.json",
			content: `{"keep":1,"broken":}`,
			op:      operations.MergeJSON{Fragment: map[string]any{"x": int64(2)}, Path: "ops.json"},
		},
		{
			name:    "yaml with several documents",
			file:    "config.yml",
			content: "a: 1\n---\nb: 2\n",
			op:      operations.MergeYAML{Fragment: map[string]any{"c": int64(3)}, Path: "config.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := newExecutor(nil).Materialize(root, []operations.Operation{tt.op})

			assert.True(t, errors.HasErrorCode(err, errors.ErrParse))
			assert.Equal(t, tt.content, readFile(t, path))
		})
	}
}

func TestMaterializeFailsFast(t *testing.T) {
	root := t.TempDir()

	st, err := newExecutor(nil).Materialize(root, []operations.Operation{
		operations.Raw{Content: "first", Path: "first.txt"},
		operations.Copy{Mapping: operations.NewFileMapping(filepath.Join(root, "nope.jar"), "server.jar")},
		operations.Raw{Content: "third", Path: "third.txt"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Equal(t, filepath.Join(root, "server.jar"), errors.GetErrorDetails(err)["destination"])
	assert.FileExists(t, filepath.Join(root, "first.txt"), "earlier operations are not rolled back")
	assert.NoFileExists(t, filepath.Join(root, "third.txt"))
	assert.False(t, st.Contains(filepath.Join(root, "third.txt")))
}

func TestMaterializeRejectsEscapingDestinations(t *testing.T) {
	outer := t.TempDir()
	root := filepath.Join(outer, "server")

	for _, dest := range []string{"../escape.txt", "/etc/escape.txt", "a/../../escape.txt"} {
		_, err := newExecutor(nil).Materialize(root, []operations.Operation{
			operations.Raw{Content: "x", Path: dest},
		})
		require.Error(t, err, dest)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), dest)
	}
	assert.NoFileExists(t, filepath.Join(outer, "escape.txt"))
}

func TestMaterializeIsIdempotent(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(t.TempDir(), "server.jar")
	require.NoError(t, os.WriteFile(src, []byte("jar"), 0644))

	ops := []operations.Operation{
		operations.Copy{Mapping: operations.NewFileMapping(src, "server.jar")},
		operations.Raw{Content: `{"ops":[]}`, Path: "ops.json"},
		operations.MergeJSON{Fragment: map[string]any{"whitelist": true}, Path: "ops.json"},
		operations.Raw{Content: "a: 1\n", Path: "config.yml"},
		operations.MergeYAML{Fragment: map[string]any{"b": []any{"x"}}, Path: "config.yml"},
	}

	first, err := newExecutor(nil).Materialize(root, ops)
	require.NoError(t, err)
	firstJSON := readFile(t, filepath.Join(root, "ops.json"))
	firstYAML := readFile(t, filepath.Join(root, "config.yml"))

	second, err := newExecutor(nil).Materialize(root, ops)
	require.NoError(t, err)

	assert.Equal(t, first.Paths(), second.Paths())
	assert.Equal(t, firstJSON, readFile(t, filepath.Join(root, "ops.json")))
	assert.Equal(t, firstYAML, readFile(t, filepath.Join(root, "config.yml")))
	assert.Equal(t, 3, second.Len(), "repeated destinations are recorded once")
}

func TestMaterializeDryRun(t *testing.T) {
	root := t.TempDir()
	exec := operations.NewExecutor(filesystem.NewOS(), nil, true)

	st, err := exec.Materialize(root, []operations.Operation{
		operations.Raw{Content: "x", Path: "deep/dir/file.txt"},
		operations.MergeJSON{Fragment: map[string]any{}, Path: "missing.json"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "deep", "dir", "file.txt"),
		filepath.Join(root, "missing.json"),
	}, st.Paths())
	assert.NoDirExists(t, filepath.Join(root, "deep"))
}

func TestMaterializeInMemory(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/src", 0755))
	require.NoError(t, fs.WriteFile("/src/server.jar", []byte("jar"), 0444))

	exec := operations.NewExecutor(fs, map[string]string{"PORT": "25566"}, false)
	st, err := exec.Materialize("/srv/mc", []operations.Operation{
		operations.Copy{Mapping: operations.NewFileMapping("/src/server.jar", "server.jar")},
		operations.Raw{Content: "server-port={{PORT}}\n", Path: "server.properties"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/mc/server.jar", "/srv/mc/server.properties"}, st.Paths())
	data, err := fs.ReadFile("/srv/mc/server.properties")
	require.NoError(t, err)
	assert.Equal(t, "server-port=25566\n", string(data))
}
