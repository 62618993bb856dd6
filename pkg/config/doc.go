// Package config handles configuration management for mineflake.
// It loads the server description from built-in defaults, a YAML (or TOML)
// configuration file and MINEFLAKE_* environment variables, and turns the
// declared plugins and files into link operations.
package config
