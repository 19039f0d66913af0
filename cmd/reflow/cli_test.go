package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	reflow "github.com/alnah/go-reflow"
)

// mustParse parses flags or fails the test.
func mustParse(t *testing.T, args ...string) (*cliFlags, []string) {
	t.Helper()
	flags, pos, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, err)
	}
	return flags, pos
}

// runCLI runs the CLI with captured output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	flags, pos := mustParse(t, args...)
	var stdout, stderr bytes.Buffer
	err := run(flags, pos, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout, Version) {
		t.Errorf("output = %q, want version %q", stdout, Version)
	}
}

func TestRunListDevices(t *testing.T) {
	stdout, _, err := runCLI(t, "--list-devices")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, name := range reflow.DeviceNames() {
		if !strings.Contains(stdout, name) {
			t.Errorf("output missing device %q:\n%s", name, stdout)
		}
	}
}

func TestRunArgValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "one arg", args: []string{"in.pdf"}},
		{name: "three args", args: []string{"a.pdf", "b.pdf", "c.pdf"}},
		{name: "count-only with two args", args: []string{"--count-only", "a.pdf", "b.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("run(%v) error = %v, want ErrInvalidArgs", tt.args, err)
			}
		})
	}
}

func TestRunUnknownDevice(t *testing.T) {
	_, _, err := runCLI(t, "--device", "ipad", "in.pdf", "out.pdf")
	if !errors.Is(err, reflow.ErrUnknownDevice) {
		t.Errorf("run() error = %v, want ErrUnknownDevice", err)
	}
}

func TestRunBadTimeout(t *testing.T) {
	_, _, err := runCLI(t, "--timeout", "soon", "in.pdf", "out.pdf")
	if !errors.Is(err, ErrInvalidTimeout) {
		t.Errorf("run() error = %v, want ErrInvalidTimeout", err)
	}
}

func TestRunMissingConfig(t *testing.T) {
	_, _, err := runCLI(t, "--config", "/nonexistent/reflow.yaml", "in.pdf", "out.pdf")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("run() error = %v, want ErrConfigNotFound", err)
	}
}

func TestRunCountOnlyMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "--count-only", filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, reflow.ErrDocumentUnreadable) {
		t.Errorf("run() error = %v, want ErrDocumentUnreadable", err)
	}
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(in, buildOnePagePDF(), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	stdout, _, err := runCLI(t, "--device", "kindle", in, out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout, "Created") {
		t.Errorf("output = %q, want creation message", stdout)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file: %v", err)
	}

	t.Run("quiet suppresses the creation message", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--quiet", in, filepath.Join(dir, "out2.pdf"))
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if stdout != "" {
			t.Errorf("output = %q, want empty", stdout)
		}
	})

	t.Run("count-only reports pages", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--count-only", in)
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if strings.TrimSpace(stdout) != "1" {
			t.Errorf("output = %q, want %q", strings.TrimSpace(stdout), "1")
		}
	})
}

func TestApplySettingsPrecedence(t *testing.T) {
	// Flags win over config: the config stages kv, the flag overrides
	// the width afterwards.
	session := reflow.NewSession()
	if err := session.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer session.Close()

	cfg := &Config{Device: "kv"}
	flags, _ := mustParse(t, "--width", "999", "in.pdf", "out.pdf")

	if err := applySettings(session, cfg, flags); err != nil {
		t.Fatalf("applySettings() error = %v", err)
	}

	st, err := session.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	kv, _ := reflow.LookupDevice("kv")
	if st.Width != 999 {
		t.Errorf("width = %d, want 999", st.Width)
	}
	if st.Height != kv.Height {
		t.Errorf("height = %d, want kv default %d", st.Height, kv.Height)
	}
}

// buildOnePagePDF creates a minimal valid single-page PDF with correct
// xref offsets.
func buildOnePagePDF() []byte {
	stream := "BT\n/F1 12 Tf\n72 720 Td\n(Hello) Tj\nET"

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 6)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")

	offsets[4] = b.Len()
	fmt.Fprintf(&b, "4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream)

	offsets[5] = b.Len()
	b.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefOffset := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return []byte(b.String())
}
