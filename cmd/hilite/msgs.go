package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Highlight text files with configurable regex rules"
	MsgCheckShort      = "Validate a configuration file"
	MsgRulesShort      = "List the effective highlight rules"
	MsgRulesLong       = "Rules displays every highlight rule in effect, in precedence order, with its origin and decorations."
	MsgScanShort       = "Scan a directory tree and report matches per rule"
	MsgWatchShort      = "Watch files and re-highlight them on change"
	MsgExportShort     = "Export the effective rules to an editor format"
	MsgImportShort     = "Import rules from a VSCode settings file"
	MsgGenConfigShort  = "Write a starter configuration file"
	MsgDocsShort       = "Display documentation topics"
	MsgDocsLong        = "Docs renders a documentation topic to the terminal. Run without arguments to list the available topics."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgConfigValid     = "configuration is valid"
	MsgConfigWritten   = "Wrote %s\n"
	MsgNoRules         = "No rules configured."
	MsgNoMatches       = "No matches found."
	MsgWatchingFormat  = "Watching %d file(s), press Ctrl-C to stop\n"
	MsgAvailableTopics = "Available topics:"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrNoConfig    = "no configuration file found; pass a path or run from a directory containing one"
	MsgErrConfigCheck = "%d problem(s) found in %s"
	MsgErrFileExists  = "%s already exists (use --force to overwrite)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to a configuration file (overrides discovery)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagRule    = "Apply only the named rule (repeatable)"
	MsgFlagAs      = "Filename used for rule filtering when reading stdin"
	MsgFlagTo      = "Target format: vscode, idea, yaml or toml"
	MsgFlagForce   = "Overwrite the file if it already exists"
	MsgFlagHidden  = "Include hidden files and directories"
)

const MsgRootLong = `hilite highlights text files on the terminal using regular-expression
rules. Rules come from built-in defaults, a user configuration file and a
per-project configuration file, with later layers taking precedence.

With file arguments, each file is highlighted in turn. With no arguments,
hilite reads from stdin.`
