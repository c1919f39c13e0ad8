package monkeyscript

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Header generated successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid metadata configuration
	ExitSourceError    = 11 // Configuration source missing, unreadable or not an object
	ExitOutputFailure  = 12 // Build output could not be written
	ExitApprovalDenied = 13 // User refused to overwrite an existing file
)

const (
	// DefaultBasePad is the minimum label width used to align metadata lines.
	DefaultBasePad = 10

	// ReservedKey marks a "package" shaped configuration (e.g. package.json).
	ReservedKey = "monkeyscript"

	// MetaKey is the key under ReservedKey holding authoritative metadata.
	MetaKey = "meta"

	// PackageManifest is the npm manifest file name. A configuration loaded
	// from a file with this name is always treated as package shaped.
	PackageManifest = "package.json"
)

// Build option keys. In package shaped configurations they live next to
// "meta" under ReservedKey; UseStrictKey is also honoured in metadata.
const (
	UseStrictKey  = "useStrict"
	PrependCSSKey = "prependCSS"
)

// FallbackKeys lists the top-level package fields copied into metadata
// when "meta" does not define them.
var FallbackKeys = []string{"author", "name", "version", "description"}
