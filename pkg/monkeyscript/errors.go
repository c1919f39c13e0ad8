package monkeyscript

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := compiler.Compile()
//	if errors.Is(err, monkeyscript.ErrInvalidConfig) {
//	    // A field violated its contract; no header must be used
//	}
var (
	// ErrUsage indicates the command line was misused (arguments or flags).
	ErrUsage = errors.New("usage error")

	// ErrNoConfig indicates no configuration was given at all.
	ErrNoConfig = errors.New("no configuration given")

	// ErrInvalidSource indicates the configuration could not be read, parsed,
	// or is not an object.
	ErrInvalidSource = errors.New("invalid configuration source")

	// ErrInvalidConfig indicates a metadata field violated its contract
	// (string instead of array, malformed resource, hash in include).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutputFailed indicates a generated file could not be written.
	ErrOutputFailed = errors.New("output failed")

	// ErrApprovalDenied indicates the user refused to overwrite a file.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNoConfig), errors.Is(err, ErrInvalidSource):
		return ExitSourceError
	case errors.Is(err, ErrOutputFailed):
		return ExitOutputFailure
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	return ExitGeneralError
}
