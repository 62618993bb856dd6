package core

import (
	"path/filepath"

	"github.com/arthur-debert/mineflake/pkg/config"
	"github.com/arthur-debert/mineflake/pkg/envsubst"
	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/filesystem"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/arthur-debert/mineflake/pkg/operations"
	"github.com/arthur-debert/mineflake/pkg/paths"
	"github.com/arthur-debert/mineflake/pkg/prune"
	"github.com/arthur-debert/mineflake/pkg/server"
	"github.com/arthur-debert/mineflake/pkg/state"
)

// ApplyOptions controls an apply run.
type ApplyOptions struct {
	// ConfigPath is the configuration file. Defaults to mineflake.yml in
	// the server directory.
	ConfigPath string

	// Directory is the server directory. Defaults to the current directory.
	Directory string

	DryRun bool

	// FS is used for every server directory access. Defaults to the OS.
	FS filesystem.FS
}

// ApplyResult reports what an apply run did, or would do in dry-run mode.
type ApplyResult struct {
	Directory string
	Server    string

	// Written lists the destinations produced by this run, in order.
	Written []string

	// Removed lists the destinations of the previous run that were pruned.
	Removed []string

	DryRun bool
}

// Apply provisions a server directory from its configuration.
func Apply(opts ApplyOptions) (*ApplyResult, error) {
	logger := logging.GetLogger("core.apply")

	dir, cfgPath, err := resolveLocations(opts.Directory, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	logger.Info().
		Str("directory", dir).
		Str("config", cfgPath).
		Bool("dry_run", opts.DryRun).
		Msg("Starting apply")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	env, err := buildEnv(cfg)
	if err != nil {
		return nil, err
	}

	srv, err := server.For(cfg)
	if err != nil {
		return nil, err
	}
	ops, err := srv.Operations(cfg)
	if err != nil {
		return nil, err
	}

	store := state.NewStore(fs, dir)
	previous, err := store.Load()
	if err != nil {
		return nil, err
	}

	current, err := operations.NewExecutor(fs, env, opts.DryRun).Materialize(dir, ops)
	if err != nil {
		return nil, err
	}

	stale := state.Diff(current, previous)
	result := &ApplyResult{
		Directory: dir,
		Server:    srv.Name(),
		Written:   current.Paths(),
		Removed:   stale,
		DryRun:    opts.DryRun,
	}

	if opts.DryRun {
		logger.Info().
			Int("written", len(result.Written)).
			Int("stale", len(stale)).
			Msg("Dry run complete")
		return result, nil
	}

	prune.NewBounded(fs, dir).All(stale)

	if err := store.Save(current); err != nil {
		return nil, err
	}

	logger.Info().
		Int("written", len(result.Written)).
		Int("removed", len(stale)).
		Msg("Apply complete")
	return result, nil
}

// buildEnv snapshots the process environment on top of the configured env
// file.
func buildEnv(cfg *config.Config) (map[string]string, error) {
	if cfg.EnvFile == "" {
		return envsubst.Environ(), nil
	}

	fileEnv, err := envsubst.LoadEnvFile(cfg.ResolveSource(cfg.EnvFile))
	if err != nil {
		return nil, err
	}
	return envsubst.Merge(fileEnv, envsubst.Environ()), nil
}

// resolveLocations makes the server directory absolute and defaults the
// configuration path to mineflake.yml inside it.
func resolveLocations(directory, configPath string) (string, string, error) {
	if directory == "" {
		directory = "."
	}
	dir, err := filepath.Abs(directory)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot resolve server directory %s", directory)
	}

	if configPath == "" {
		configPath = filepath.Join(dir, paths.DefaultConfigFile)
	}
	return dir, configPath, nil
}
