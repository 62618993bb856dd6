package core

import (
	"context"

	"github.com/arthur-debert/mineflake/pkg/config"
	"github.com/arthur-debert/mineflake/pkg/server"
)

// RunOptions controls starting a server.
type RunOptions struct {
	ConfigPath string
	Directory  string
}

// Run starts the configured server in its directory and blocks until it
// exits or ctx is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	dir, cfgPath, err := resolveLocations(opts.Directory, opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	return server.Run(ctx, cfg, dir)
}
