//go:build !ocr

package reflow

// OCR support is excluded from this build. SetOCR always fails with
// ErrOCRUnavailable, even for enable=false.
const ocrAvailable = false
