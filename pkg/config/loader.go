package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/arthur-debert/mineflake/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads the configuration file at path on top of the built-in defaults,
// applies MINEFLAKE_* environment overrides and validates the result.
//
// Environment keys use a double underscore for nesting:
// MINEFLAKE_SERVER__JAR sets server.jar, MINEFLAKE_ENV_FILE sets env_file.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config").With().Str("path", path).Logger()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to resolve config path %s", path)
	}

	if _, err := os.Stat(absPath); err != nil {
		code := errors.ErrConfigLoad
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, code, "configuration file %s is not readable", absPath).
			WithDetail("path", absPath)
	}

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Configuration file
	if err := k.Load(file.Provider(absPath), parserFor(absPath)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", absPath).
			WithDetail("path", absPath)
	}

	// 3. Environment overrides
	err = k.Load(env.Provider(paths.EnvConfigPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, paths.EnvConfigPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration").
			WithDetail("path", absPath)
	}
	cfg.Dir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("server", cfg.Server.Type).
		Int("plugins", len(cfg.Plugins)).
		Int("files", len(cfg.Files)).
		Msg("configuration loaded")
	return &cfg, nil
}

// parserFor picks a koanf parser from the file extension. YAML is the
// default format.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	default:
		return yaml.Parser()
	}
}
