package enumfiles

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Enumeration completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration, format or kind
	ExitPermissionDenied = 11 // Listing or stat refused by the filesystem
	ExitNotDirectory     = 12 // Enumeration rooted at something that is not a directory
)

const (
	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "enumfiles.yaml"

	// EnvFileName is the dotenv file consulted for ENUMFILES_* overrides.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment variable the CLI reads.
	EnvPrefix = "ENUMFILES_"

	// DefaultConcurrency lists one directory at a time.
	DefaultConcurrency = 1

	// MaxConcurrency bounds the number of parallel directory listings.
	MaxConcurrency = 64
)
