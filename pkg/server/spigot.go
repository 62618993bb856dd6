package server

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/mineflake/pkg/config"
	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/operations"
)

const (
	// SpigotName is the server.type of Spigot servers.
	SpigotName = "spigot"

	// ServerJar is the name of the server jar inside the server directory.
	ServerJar = "server.jar"

	// EULAFile records acceptance of the Minecraft EULA.
	EULAFile = "eula.txt"
)

// Spigot prepares and runs Spigot servers.
type Spigot struct{}

// Name returns "spigot".
func (Spigot) Name() string { return SpigotName }

// Operations copies the server jar, accepts the EULA when configured, copies
// the plugins and then applies the declared files in order.
func (Spigot) Operations(cfg *config.Config) ([]operations.Operation, error) {
	if cfg.Server.Jar == "" {
		return nil, errors.New(errors.ErrConfigValid, "server.jar is required for spigot")
	}

	ops := []operations.Operation{
		operations.Copy{
			Mapping: operations.NewFileMapping(cfg.ResolveSource(cfg.Server.Jar), ServerJar),
		},
	}

	if cfg.Server.EULA {
		ops = append(ops, operations.Raw{Content: "eula=true\n", Path: EULAFile})
	}

	for i, p := range cfg.Plugins {
		op, err := cfg.PluginOperation(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "plugins[%d]", i)
		}
		ops = append(ops, op)
	}

	for i, f := range cfg.Files {
		op, err := cfg.Operation(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "files[%d]", i)
		}
		ops = append(ops, op)
	}

	return ops, nil
}

// Command builds `java [jvm args] -jar server.jar [nogui]`.
func (Spigot) Command(ctx context.Context, cfg *config.Config, dir string) (*exec.Cmd, error) {
	java := cfg.Server.Java
	if java == "" {
		java = "java"
	}

	args := append([]string{}, cfg.Server.JVMArgs...)
	args = append(args, "-jar", ServerJar)
	if cfg.Server.NoGUI {
		args = append(args, "nogui")
	}

	cmd := exec.CommandContext(ctx, java, args...)
	cmd.Dir = dir
	return cmd, nil
}
