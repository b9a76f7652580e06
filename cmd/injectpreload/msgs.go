package injectpreload

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Inject preload links for build assets into HTML"
	MsgInjectShort     = "Write preload tags into the build's HTML documents"
	MsgTagsShort       = "Print the preload tags for a build"
	MsgInitShort       = "Write a starter configuration file"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten     = "Wrote %s"
	MsgConfigExists      = "%s already exists, use --force to overwrite"
	MsgVersionFormat     = "injectpreload version %s\n  commit: %s\n  built:  %s\n"
	MsgNoCommandProvided = "no command specified"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default: injectpreload.toml in the current directory)"
	MsgFlagNoColor      = "Disable colored output"
	MsgFlagHTML         = "HTML documents to transform, relative to dist (repeatable)"
	MsgFlagBase         = "Public base path prepended to asset names"
	MsgFlagInjectTo     = "Where tags go: head-prepend, head or custom"
	MsgFlagMatch        = "Extra rule pattern, added after configured rules (repeatable); /body/flags is a regex literal, write \\/ for a leading slash"
	MsgFlagManifest     = "Asset source: dir, vite or esbuild"
	MsgFlagManifestPath = "Manifest file for vite and esbuild sources"
	MsgFlagDryRun       = "Preview changes without writing them"
	MsgFlagFormat       = "Output format: auto, term, text, table, json or yaml"
	MsgFlagForce        = "Overwrite an existing configuration file"
	MsgFlagPrint        = "Print the configuration instead of writing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/inject-long.txt
	msgInjectLongRaw string
	MsgInjectLong    = strings.TrimSpace(msgInjectLongRaw)

	//go:embed msgs/inject-example.txt
	msgInjectExampleRaw string
	MsgInjectExample    = strings.TrimRight(msgInjectExampleRaw, "\n")

	//go:embed msgs/tags-long.txt
	msgTagsLongRaw string
	MsgTagsLong    = strings.TrimSpace(msgTagsLongRaw)

	//go:embed msgs/tags-example.txt
	msgTagsExampleRaw string
	MsgTagsExample    = strings.TrimRight(msgTagsExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
