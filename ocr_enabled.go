//go:build ocr

package reflow

// OCR support is compiled into this build.
const ocrAvailable = true
