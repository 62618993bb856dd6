// Package server knows which files each supported server type needs and how
// to launch it.
package server

import (
	"context"
	"os"
	"os/exec"

	"github.com/arthur-debert/mineflake/pkg/config"
	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/arthur-debert/mineflake/pkg/operations"
)

// Server describes one server implementation.
type Server interface {
	// Name returns the server type as written in server.type.
	Name() string

	// Operations returns the link operations that prepare a server
	// directory, in the order they must be applied.
	Operations(cfg *config.Config) ([]operations.Operation, error)

	// Command returns the process that runs the server from dir.
	Command(ctx context.Context, cfg *config.Config, dir string) (*exec.Cmd, error)
}

var registry = map[string]Server{
	SpigotName: Spigot{},
}

// For returns the server implementation selected by cfg.
func For(cfg *config.Config) (Server, error) {
	s, ok := registry[cfg.Server.Type]
	if !ok {
		return nil, errors.Newf(errors.ErrServerUnsupported,
			"unsupported server type %q", cfg.Server.Type).
			WithDetail("type", cfg.Server.Type)
	}
	return s, nil
}

// Run starts the server in dir and waits for it to exit. The process shares
// the caller's standard streams; cancelling ctx kills it.
func Run(ctx context.Context, cfg *config.Config, dir string) error {
	s, err := For(cfg)
	if err != nil {
		return err
	}

	cmd, err := s.Command(ctx, cfg, dir)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger := logging.GetLogger("server")
	logger.Info().
		Str("server", s.Name()).
		Str("dir", dir).
		Strs("args", cmd.Args).
		Msg("starting server")

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrServerRun, "%s server exited with an error", s.Name()).
			WithDetail("dir", dir)
	}

	logger.Info().Str("server", s.Name()).Msg("server stopped")
	return nil
}
