package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mineflake/pkg/document"
	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/operations"
)

// File types accepted in the files section.
const (
	FileTypeCopy      = "copy"
	FileTypeRaw       = "raw"
	FileTypeMergeJSON = "merge-json"
	FileTypeMergeYAML = "merge-yaml"
)

// PluginsDir is where plugins are copied inside the server directory.
const PluginsDir = "plugins"

// Config is the typed form of mineflake.yml.
type Config struct {
	Server  ServerSpec `koanf:"server"`
	EnvFile string     `koanf:"env_file"`
	Plugins []Plugin   `koanf:"plugins"`
	Files   []FileSpec `koanf:"files"`

	// Dir is the directory of the configuration file. Relative sources are
	// resolved against it.
	Dir string `koanf:"-"`
}

// ServerSpec describes the server software and how to launch it.
type ServerSpec struct {
	Type    string   `koanf:"type"`
	Jar     string   `koanf:"jar"`
	Java    string   `koanf:"java"`
	JVMArgs []string `koanf:"jvm_args"`
	EULA    bool     `koanf:"eula"`
	NoGUI   bool     `koanf:"nogui"`
}

// Plugin is a plugin jar copied into the plugins directory.
type Plugin struct {
	Name   string `koanf:"name"`
	Source string `koanf:"source"`
}

// FileSpec declares a single file of the server directory.
//
//	type: copy        source + destination
//	type: raw         content (string) + destination
//	type: merge-json  content (mapping) + destination
//	type: merge-yaml  content (mapping) + destination
type FileSpec struct {
	Type        string `koanf:"type"`
	Source      string `koanf:"source"`
	Destination string `koanf:"destination"`
	Content     any    `koanf:"content"`
}

// Validate checks the parts of the configuration that do not depend on the
// server type.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Type) == "" {
		return errors.New(errors.ErrConfigValid, "server.type is required")
	}

	for i, p := range c.Plugins {
		if p.Source == "" {
			return errors.Newf(errors.ErrConfigValid, "plugins[%d]: source is required", i).
				WithDetail("index", i)
		}
	}

	for i, f := range c.Files {
		if err := f.validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "files[%d]", i).
				WithDetail("index", i)
		}
	}
	return nil
}

func (f FileSpec) validate() error {
	if f.Destination == "" {
		return errors.New(errors.ErrConfigValid, "destination is required")
	}

	switch f.Type {
	case FileTypeCopy:
		if f.Source == "" {
			return errors.New(errors.ErrConfigValid, "copy requires a source")
		}
	case FileTypeRaw:
		if _, ok := f.Content.(string); !ok {
			return errors.Newf(errors.ErrConfigValid, "raw content must be a string, got %T", f.Content)
		}
	case FileTypeMergeJSON, FileTypeMergeYAML:
		if f.Content == nil {
			return errors.Newf(errors.ErrConfigValid, "%s requires content", f.Type)
		}
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown file type %q", f.Type).
			WithDetail("type", f.Type)
	}
	return nil
}

// ResolveSource makes a source path absolute relative to the configuration
// directory.
func (c *Config) ResolveSource(source string) string {
	if filepath.IsAbs(source) {
		return filepath.Clean(source)
	}
	return filepath.Join(c.Dir, source)
}

// Operation converts a file declaration into a link operation.
func (c *Config) Operation(f FileSpec) (operations.Operation, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	switch f.Type {
	case FileTypeCopy:
		return operations.Copy{
			Mapping: operations.NewFileMapping(c.ResolveSource(f.Source), f.Destination),
		}, nil
	case FileTypeRaw:
		return operations.Raw{Content: f.Content.(string), Path: f.Destination}, nil
	case FileTypeMergeJSON:
		return operations.MergeJSON{Fragment: document.Normalize(f.Content), Path: f.Destination}, nil
	case FileTypeMergeYAML:
		return operations.MergeYAML{Fragment: document.Normalize(f.Content), Path: f.Destination}, nil
	}
	return nil, errors.Newf(errors.ErrInternal, "unhandled file type %q", f.Type)
}

// PluginOperation converts a plugin declaration into a copy into PluginsDir.
// The destination name is the plugin name, or the source file name when the
// name is empty.
func (c *Config) PluginOperation(p Plugin) (operations.Operation, error) {
	if p.Source == "" {
		return nil, errors.New(errors.ErrConfigValid, "plugin source is required")
	}

	name := p.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(p.Source), ".jar")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, errors.Newf(errors.ErrConfigValid, "invalid plugin name %q", name)
	}

	dest := filepath.Join(PluginsDir, fmt.Sprintf("%s.jar", name))
	return operations.Copy{
		Mapping: operations.NewFileMapping(c.ResolveSource(p.Source), dest),
	}, nil
}
