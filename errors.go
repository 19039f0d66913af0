package reflow

import "errors"

// Sentinel errors for library operations.
var (
	// Lifecycle errors.
	ErrNotInitialized = errors.New("session not initialized")

	// ErrAlreadyInitialized is informational, not fatal: Init on an
	// initialized session is a safe no-op. Check with errors.Is and
	// treat as success when repeated initialization is expected.
	ErrAlreadyInitialized = errors.New("session already initialized")

	// Setter validation errors.
	ErrInvalidValue   = errors.New("invalid value")
	ErrUnknownDevice  = errors.New("unknown device profile")
	ErrValueTooLong   = errors.New("value exceeds maximum length")
	ErrOCRUnavailable = errors.New("OCR support not available in this build")
	ErrNotImplemented = errors.New("not implemented")

	// Conversion and inspection errors.
	ErrEmptyPath          = errors.New("path cannot be empty")
	ErrEngineInit         = errors.New("engine initialization failed")
	ErrConversionFailed   = errors.New("conversion failed")
	ErrDocumentUnreadable = errors.New("document unreadable")
)
