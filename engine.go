package reflow

import "context"

// Version is the library version identifier, fixed per build.
const Version = "0.3.0"

// Engine abstracts the page-reflow backend so alternative
// implementations (or test fakes) can be injected via WithEngine.
//
// Convert reads the document at inputPath, reflows it per the settings
// snapshot, and writes the result to settings.OutputPath. It is
// synchronous: it returns only once the output has been fully produced
// or the conversion has failed. PageCount opens path read-only and
// reports the document's page count without touching any settings.
type Engine interface {
	Convert(ctx context.Context, settings Settings, inputPath string) error
	PageCount(path string) (int, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Engine = (*pdfcpuEngine)(nil)
