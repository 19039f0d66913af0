package reflow

import (
	"context"
	"fmt"
)

// Process converts a single input document, writing the result to
// outputPath. The output path is staged into the session settings
// before the engine is invoked, overwriting any previously staged
// value; this mutation persists after Process returns.
//
// The call is synchronous and blocking: it processes exactly one input
// at a time and does not return until the engine has produced the
// output or failed. The context is used for cancellation; when the
// session was built with WithTimeout and ctx carries no deadline, the
// session timeout applies.
func (s *Session) Process(ctx context.Context, inputPath, outputPath string) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if inputPath == "" {
		return fmt.Errorf("%w: input path", ErrEmptyPath)
	}
	if outputPath == "" {
		return fmt.Errorf("%w: output path", ErrEmptyPath)
	}
	if len(outputPath) > MaxOutputPathLen {
		return fmt.Errorf("%w: output path is %d bytes, max %d", ErrValueTooLong, len(outputPath), MaxOutputPathLen)
	}

	s.settings.OutputPath = outputPath

	if _, ok := ctx.Deadline(); !ok && s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	if err := s.engine.Convert(ctx, s.settings, inputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	return nil
}

// PageCount reports the number of pages in the document at path.
// It opens the document read-only and mutates no settings; no prior
// Process call is required, only an initialized session.
func (s *Session) PageCount(path string) (int, error) {
	if !s.initialized {
		return 0, ErrNotInitialized
	}
	if path == "" {
		return 0, fmt.Errorf("%w: document path", ErrEmptyPath)
	}

	n, err := s.engine.PageCount(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	return n, nil
}
