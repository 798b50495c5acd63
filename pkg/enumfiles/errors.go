package enumfiles

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// Sentinel errors for misuse of the library and the CLI.
// Filesystem failures are never wrapped in these: a listing error is
// returned exactly as the filesystem produced it.
//
// Example usage:
//
//	paths, err := t.Enumerate(root, kind, true)
//	if errors.Is(err, enumfiles.ErrInvalidKind) {
//	    // caller passed something other than KindFile or KindDirectory
//	}
var (
	// ErrInvalidKind indicates an entry kind other than KindFile or KindDirectory.
	ErrInvalidKind = errors.New("invalid entry kind")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")
)

// usageErrorPrefixes are the messages cobra produces for command line misuse.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrInvalidKind):
		return ExitConfigError
	case errors.Is(err, fs.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return ExitNotDirectory
	}

	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
