package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"configuration.md":   {Data: []byte("# Configuration\n\nserver.type selects the server")},
		"option-dry-run.txt": {Data: []byte("Information about dry-run mode")},
		"nested/state.txt":   {Data: []byte("state lives in .mineflake")},
		"ignore.json":        {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	tm := New(testSource(), Options{})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"configuration", "option-dry-run", "state"}, tm.ListTopics())

	topic, ok := tm.GetTopic("state")
	require.True(t, ok)
	assert.Equal(t, "state lives in .mineflake", topic.Content)

	_, ok = tm.GetTopic("ignore")
	assert.False(t, ok)
}

func TestScanCustomExtensions(t *testing.T) {
	tm := New(testSource(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"ignore"}, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testSource(), Options{})
	require.NoError(t, tm.Scan())

	for _, name := range []string{"dry-run", "--dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

func TestPlainRenderer(t *testing.T) {
	tm := New(testSource(), Options{})
	require.NoError(t, tm.Scan())

	topic, _ := tm.GetTopic("configuration")
	assert.Equal(t, topic.Content, tm.Render(topic))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := &GlamourRenderer{Width: 60}
	out := r.Render("# Title\n\nbody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}

func runHelp(t *testing.T, args ...string) string {
	t.Helper()
	root := &cobra.Command{Use: "app"}
	root.AddCommand(&cobra.Command{Use: "apply", Short: "Apply things", Run: func(*cobra.Command, []string) {}})
	require.NoError(t, Initialize(root, testSource(), Options{}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "state lives in .mineflake", runHelp(t, "state"))
	})

	t.Run("topic list", func(t *testing.T) {
		out := runHelp(t, "topics")
		assert.Contains(t, out, "General topics:")
		assert.Contains(t, out, "  configuration")
		assert.Contains(t, out, "  --dry-run")
		assert.Contains(t, out, "Use 'app help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		assert.Contains(t, runHelp(t, "apply"), "Apply things")
	})
}
