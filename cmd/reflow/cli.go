package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	reflow "github.com/alnah/go-reflow"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs    = errors.New("usage: reflow [flags] <input.pdf> <output.pdf>")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// run executes the CLI: informational flags first, then a single
// conversion (or page-count query) through one session.
func run(flags *cliFlags, args []string, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintf(stdout, "reflow %s\n", Version)
		return nil
	}
	if flags.listDevices {
		for _, name := range reflow.DeviceNames() {
			p, _ := reflow.LookupDevice(name)
			fmt.Fprintf(stdout, "%-8s %dx%d px, quality %d\n", name, p.Width, p.Height, p.Quality)
		}
		return nil
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	timeout, err := resolveTimeout(cfg, flags)
	if err != nil {
		return err
	}

	var opts []reflow.Option
	if timeout > 0 {
		opts = append(opts, reflow.WithTimeout(timeout))
	}
	session := reflow.NewSession(opts...)
	if err := session.Init(); err != nil && !errors.Is(err, reflow.ErrAlreadyInitialized) {
		return err
	}
	defer session.Close()

	if flags.countOnly {
		if len(args) != 1 {
			return fmt.Errorf("%w (--count-only takes one input file)", ErrInvalidArgs)
		}
		n, err := session.PageCount(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, n)
		return nil
	}

	if len(args) != 2 {
		return ErrInvalidArgs
	}
	inputPath, outputPath := args[0], args[1]

	if err := applySettings(session, cfg, flags); err != nil {
		return err
	}

	if flags.verbose {
		st, err := session.Settings()
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Device: %s, output %dx%d px, quality %d, pages %q\n",
			orDefault(st.Device, "engine default"), st.Width, st.Height, st.Quality, orDefault(st.PageRange, "all"))
	}

	if err := session.Process(context.Background(), inputPath, outputPath); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}

// applySettings stages config file values first, then explicit flags,
// so flags win. Within each source the setter order matches the
// library's last-setter-wins rule: device profile first, explicit
// dimensions after.
func applySettings(session *reflow.Session, cfg *Config, flags *cliFlags) error {
	if cfg.Device != "" {
		if err := session.SetDevice(cfg.Device); err != nil {
			return err
		}
	}
	if cfg.Width > 0 {
		if err := session.SetWidth(cfg.Width); err != nil {
			return err
		}
	}
	if cfg.Height > 0 {
		if err := session.SetHeight(cfg.Height); err != nil {
			return err
		}
	}
	if cfg.Quality != 0 {
		if err := session.SetQuality(cfg.Quality); err != nil {
			return err
		}
	}
	if cfg.Pages != "" {
		if err := session.SetPageRange(cfg.Pages); err != nil {
			return err
		}
	}
	if cfg.OCR {
		if err := session.SetOCR(true); err != nil {
			return err
		}
	}

	if flags.changed("device") {
		if err := session.SetDevice(flags.device); err != nil {
			return err
		}
	}
	if flags.changed("width") {
		if err := session.SetWidth(flags.width); err != nil {
			return err
		}
	}
	if flags.changed("height") {
		if err := session.SetHeight(flags.height); err != nil {
			return err
		}
	}
	if flags.changed("quality") {
		if err := session.SetQuality(flags.quality); err != nil {
			return err
		}
	}
	if flags.changed("pages") {
		if err := session.SetPageRange(flags.pages); err != nil {
			return err
		}
	}
	if flags.changed("ocr") {
		if err := session.SetOCR(flags.ocr); err != nil {
			return err
		}
	}
	return nil
}

// resolveTimeout picks the conversion timeout: flag over config file,
// empty meaning none.
func resolveTimeout(cfg *Config, flags *cliFlags) (time.Duration, error) {
	raw := cfg.Timeout
	if flags.changed("timeout") {
		raw = flags.timeout
	}
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return d, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// printUsage writes flag help and positional argument usage.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: reflow [flags] <input.pdf> <output.pdf>")
	fmt.Fprintln(w, "       reflow --count-only <input.pdf>")
	fmt.Fprintln(w, "       reflow --list-devices")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
