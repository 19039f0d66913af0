package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the reflow CLI.
type cliFlags struct {
	config      string
	device      string
	width       int
	height      int
	quality     int
	pages       string
	ocr         bool
	timeout     string
	countOnly   bool
	listDevices bool
	quiet       bool
	verbose     bool
	version     bool

	fs *flag.FlagSet
}

// changed reports whether the named flag was set explicitly, so that
// explicit flags can override config file values without zero-value
// ambiguity.
func (f *cliFlags) changed(name string) bool {
	return f.fs.Changed(name)
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("reflow", flag.ContinueOnError)
	f := &cliFlags{fs: fs}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.device, "device", "d", "", "target device profile (see --list-devices)")
	fs.IntVar(&f.width, "width", 0, "output width in pixels")
	fs.IntVar(&f.height, "height", 0, "output height in pixels")
	fs.IntVar(&f.quality, "quality", 0, "quality level (1-3, 3 highest)")
	fs.StringVar(&f.pages, "pages", "", "page range to process, e.g. 1-10 or 1,3,5")
	fs.BoolVar(&f.ocr, "ocr", false, "enable OCR text extraction (OCR-enabled builds only)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g. 30s, 2m)")
	fs.BoolVar(&f.countOnly, "count-only", false, "print the input's page count and exit")
	fs.BoolVar(&f.listDevices, "list-devices", false, "list known device profiles and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show effective settings")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
