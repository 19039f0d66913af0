// Package reflow is a control shell around a page-reflow PDF engine:
// it stages conversion parameters for e-reader output and drives
// single-file, blocking conversions.
//
// # Quick Start
//
// Create a session, initialize it, stage settings, and convert:
//
//	s := reflow.NewSession()
//	if err := s.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	s.SetDevice("kindle")
//	s.SetPageRange("1-10")
//	if err := s.Process(ctx, "book.pdf", "book_kindle.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Lifecycle
//
// A Session is created uninitialized. Init allocates the engine and
// resets settings to defaults; every other operation fails with
// ErrNotInitialized until then. Init on a live session is a safe no-op
// that returns the informational ErrAlreadyInitialized. Close releases
// the engine and is safe to call from any state, any number of times.
//
// # Settings
//
// Setters are independent and may be called in any order between Init
// and Process; for each field the last successful setter wins. A device
// profile (SetDevice) overwrites width, height, and quality with the
// profile defaults; a later SetWidth or SetHeight overwrites the
// profile value in turn.
//
// # Capabilities
//
// Optional features are fixed at build time. Build with the ocr tag to
// compile in OCR support; without it SetOCR always fails with
// ErrOCRUnavailable. Query support with Capabilities or Supports
// instead of probing with a failing call.
//
// # Concurrency
//
// A Session has no internal locking and assumes one logical caller
// driving it sequentially. Process blocks until the engine has fully
// produced (or failed to produce) the output; there is no queuing and
// no background work.
package reflow
