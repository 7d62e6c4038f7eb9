// Package completion carries the flag and command metadata that shell
// completion scripts are generated from.
package completion

// FlagInfo contains metadata about a command-line flag for completion generation.
type FlagInfo struct {
	Name        string // Flag name without dashes
	Description string // Human-readable description
	HasValue    bool   // true for string flags, false for bool flags
	ValueHint   string // Hint for value type (e.g., "DIR", "PATH", "FILE")
}

// CommandInfo contains metadata about a subcommand.
type CommandInfo struct {
	Name        string
	Description string
}

// GetFlags returns metadata for all podbridge global command-line flags.
// This is the single source of truth for shell completion generation.
func GetFlags() []FlagInfo {
	return []FlagInfo{
		{
			Name:        "project",
			Description: "Application root directory",
			HasValue:    true,
			ValueHint:   "DIR",
		},
		{
			Name:        "debug-log",
			Description: "Path to debug log file",
			HasValue:    true,
			ValueHint:   "PATH",
		},
		{
			Name:        "config-file",
			Description: "Path to configuration file",
			HasValue:    true,
			ValueHint:   "FILE",
		},
		{
			Name:        "verbose",
			Description: "Echo pod output even on success",
			HasValue:    false,
		},
		{
			Name:        "version",
			Description: "Print version information",
			HasValue:    false,
		},
	}
}

// GetCommands returns metadata for all podbridge subcommands.
func GetCommands() []CommandInfo {
	return []CommandInfo{
		{Name: "doctor", Description: "Report the CocoaPods installation state"},
		{Name: "setup", Description: "Scaffold the Podfile and xcconfig includes"},
		{Name: "sync", Description: "Run pod install when the project is stale"},
		{Name: "check", Description: "Report whether a sync would run"},
		{Name: "watch", Description: "Re-sync whenever the Podfile changes"},
		{Name: "completion", Description: "Generate shell completion scripts"},
	}
}
