package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/mineflake/pkg/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic-aware help command. Markdown is rendered
// with glamour on a terminal and shown as-is otherwise.
func initTopics(rootCmd *cobra.Command) error {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	return topics.Initialize(rootCmd, source, topics.Options{Renderer: renderer})
}
