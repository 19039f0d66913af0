package reflow

import (
	"context"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// pdfcpuEngine is the default Engine, backed by pdfcpu. The reflow
// pipeline is: page-range extraction (if a selector is staged), page
// resize to the target device geometry, and an optimization pass that
// re-encodes resources at lower quality levels.
//
// This backend performs no text recognition; OCR-capable builds are
// expected to supply their own Engine via WithEngine.
type pdfcpuEngine struct{}

// newPDFCPUEngine creates the default engine. It holds no state until
// a document is processed.
func newPDFCPUEngine() *pdfcpuEngine {
	return &pdfcpuEngine{}
}

// Convert reflows inputPath into settings.OutputPath.
// Transient intermediate files are removed before Convert returns.
func (e *pdfcpuEngine) Convert(ctx context.Context, settings Settings, inputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conf := model.NewDefaultConfiguration()
	src := inputPath

	// Page-range selectors are opaque until this point; a malformed
	// selector surfaces here as a conversion failure.
	if settings.PageRange != "" {
		pages, err := api.ParsePageSelection(settings.PageRange)
		if err != nil {
			return fmt.Errorf("page range %q: %w", settings.PageRange, err)
		}

		tmp, err := os.CreateTemp("", "reflow-*.pdf")
		if err != nil {
			return fmt.Errorf("staging page extraction: %w", err)
		}
		tmpPath := tmp.Name()
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("staging page extraction: %w", err)
		}
		defer os.Remove(tmpPath)

		if err := api.TrimFile(src, tmpPath, pages, conf); err != nil {
			return fmt.Errorf("extracting pages %q: %w", settings.PageRange, err)
		}
		src = tmpPath
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Resize every page to the device geometry. Pixel dimensions are
	// treated as points (72 dpi) on the output page.
	dim := fmt.Sprintf("dim:%d %d", settings.Width, settings.Height)
	resize, err := pdfcpu.ParseResizeConfig(dim, types.POINTS)
	if err != nil {
		return fmt.Errorf("resize %s: %w", dim, err)
	}
	if err := api.ResizeFile(src, settings.OutputPath, nil, resize, conf); err != nil {
		return fmt.Errorf("resizing to %dx%d: %w", settings.Width, settings.Height, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Below maximum quality, run the optimizer over the output to
	// deduplicate and prune resources.
	if settings.QualityScore < qualityScore(MaxQuality) {
		if err := api.OptimizeFile(settings.OutputPath, "", conf); err != nil {
			return fmt.Errorf("optimizing output: %w", err)
		}
	}

	return nil
}

// PageCount opens the document read-only and reports its page count.
func (e *pdfcpuEngine) PageCount(path string) (int, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return 0, err
	}
	defer f.Close()

	pdfCtx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return pdfCtx.PageCount, nil
}

// Close releases engine resources. The pdfcpu backend keeps no state
// between calls, so there is nothing to release.
func (e *pdfcpuEngine) Close() error {
	return nil
}
