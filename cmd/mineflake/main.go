package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/mineflake/internal/cli"
	"github.com/arthur-debert/mineflake/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
			_ = renderer.RenderError(err)
		}
		stop()
		os.Exit(1)
	}
}
