package operations_test

import (
	"testing"

	"github.com/arthur-debert/mineflake/pkg/operations"
	"github.com/stretchr/testify/assert"
)

func TestOperationDestinations(t *testing.T) {
	tests := []struct {
		op   operations.Operation
		kind operations.Kind
		dest string
	}{
		{operations.Copy{Mapping: operations.NewFileMapping("/src/a.jar", "plugins/a.jar")}, operations.KindCopy, "plugins/a.jar"},
		{operations.Raw{Content: "eula=true", Path: "eula.txt"}, operations.KindRaw, "eula.txt"},
		{operations.MergeJSON{Fragment: map[string]any{}, Path: "ops.json"}, operations.KindMergeJSON, "ops.json"},
		{operations.MergeYAML{Fragment: map[string]any{}, Path: "spigot.yml"}, operations.KindMergeYAML, "spigot.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.op.Kind())
			assert.Equal(t, tt.dest, tt.op.Destination())
			assert.NotEmpty(t, operations.Describe(tt.op))
		})
	}
}

func TestFileMapping(t *testing.T) {
	m := operations.NewFileMapping("/nix/store/server.jar", "server.jar")
	assert.Equal(t, "/nix/store/server.jar", m.Source())
	assert.Equal(t, "server.jar", m.Destination())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "copy", operations.KindCopy.String())
	assert.Equal(t, "raw", operations.KindRaw.String())
	assert.Equal(t, "merge-json", operations.KindMergeJSON.String())
	assert.Equal(t, "merge-yaml", operations.KindMergeYAML.String())
	assert.Equal(t, "kind(42)", operations.Kind(42).String())
}
