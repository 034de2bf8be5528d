// Package key defines the canonical set of configuration identifiers.
package key

// Stack construction defaults and limits.
const (
	StackDefaultKind     = "stack.default_kind"
	StackDefaultCapacity = "stack.default_capacity"
	StackMaxCapacity     = "stack.max_capacity"
	StackNodeLimit       = "stack.node_limit"
)

// Interactive shell.
const (
	ShellPrompt       = "shell.prompt"
	ShellMenuOnStart  = "shell.menu_on_start"
	ShellSaveHistory  = "shell.save_history"
	ShellHistoryLimit = "shell.history_limit"
	ShellForcePrompt  = "shell.force_prompt"
)

const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
