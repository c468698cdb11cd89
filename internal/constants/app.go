package constants

// Application constants - single source of truth for naming throughout the codebase
const (
	// Core application identity
	BinaryName = "hookrun"

	// Configuration files
	ProjectDir     = ".hookrun"
	ConfigBaseName = "hooks"
	DefaultLogFile = "hookrun.log"

	// Default label for ad-hoc hook runs from the command line
	DefaultPhase = "cli"

	// Default shell used by the exec action
	DefaultShell = "/bin/sh"
)

// ConfigExtensions lists recognised config file extensions in lookup order.
var ConfigExtensions = []string{".yml", ".yaml", ".toml", ".json"}
