package main

import (
	"errors"
	"os"

	reflow "github.com/alnah/go-reflow"
)

// Exit codes for the reflow CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or settings
	ExitIO      = 3 // File not found, permission denied, unreadable document
	ExitEngine  = 4 // Engine/conversion errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Engine errors (exit 4)
	if errors.Is(err, reflow.ErrConversionFailed) ||
		errors.Is(err, reflow.ErrEngineInit) {
		return ExitEngine
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, reflow.ErrDocumentUnreadable) {
		return ExitIO
	}

	// Usage/config/settings errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, reflow.ErrInvalidValue) ||
		errors.Is(err, reflow.ErrUnknownDevice) ||
		errors.Is(err, reflow.ErrValueTooLong) ||
		errors.Is(err, reflow.ErrOCRUnavailable) ||
		errors.Is(err, reflow.ErrNotImplemented) ||
		errors.Is(err, reflow.ErrEmptyPath) {
		return ExitUsage
	}

	return ExitGeneral
}
