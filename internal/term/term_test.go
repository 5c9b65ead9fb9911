package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintf_WritesToStdout(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out)
	defer SetOutput(nil)

	Printf("installed to %s\n", "/tmp/x")

	if got := out.String(); got != "installed to /tmp/x\n" {
		t.Errorf("output = %q, want %q", got, "installed to /tmp/x\n")
	}
}

func TestPrintln_WritesToStdout(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out)
	defer SetOutput(nil)

	Println("done")

	if got := out.String(); got != "done\n" {
		t.Errorf("output = %q, want %q", got, "done\n")
	}
}

func TestWarn_WritesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out)
	SetErrOutput(&errOut)
	defer SetOutput(nil)
	defer SetErrOutput(nil)

	Warn("manifest missing: %v", "oops")

	if out.Len() != 0 {
		t.Errorf("warning leaked to stdout: %q", out.String())
	}
	got := errOut.String()
	if !strings.HasPrefix(got, "Warning: ") {
		t.Errorf("stderr = %q, want Warning: prefix", got)
	}
	if !strings.Contains(got, "oops") {
		t.Errorf("stderr = %q, want the formatted message", got)
	}
}
