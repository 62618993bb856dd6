package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Provision Minecraft server directories from a declarative config"
	MsgApplyShort   = "Provision a server directory from its configuration"
	MsgRunShort     = "Start the configured server"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgServerStarting = "Starting server in %s"
	MsgRunSkipped     = "Dry run: not starting the server"
	MsgWatching       = "Watching the configuration for changes (Ctrl-C to stop)"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagConfig  = "Configuration file (default <directory>/mineflake.yml)"
	MsgFlagRun     = "Start the server after a successful apply"
	MsgFlagWatch   = "Re-apply whenever the configuration file changes"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
