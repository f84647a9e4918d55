package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestPrinter(debug bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	DisableColor()
	var out, errOut bytes.Buffer
	return New(&out, &errOut, debug), &out, &errOut
}

func TestStreams(t *testing.T) {
	p, out, errOut := newTestPrinter(false)

	p.Success("  ✅ %s", "button.component.ts")
	p.Error("failed: %s", "boom")

	if got := out.String(); got != "  ✅ button.component.ts\n" {
		t.Errorf("out = %q", got)
	}
	if got := errOut.String(); got != "failed: boom\n" {
		t.Errorf("err = %q", got)
	}
}

func TestDebugToggle(t *testing.T) {
	p, _, errOut := newTestPrinter(false)
	p.Debug("hidden %d", 1)
	if errOut.Len() != 0 {
		t.Errorf("debug output written while disabled: %q", errOut.String())
	}

	p, _, errOut = newTestPrinter(true)
	p.Debug("shown %d", 2)
	if !strings.Contains(errOut.String(), "debug: shown 2") {
		t.Errorf("debug output = %q", errOut.String())
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		diag error
		want string
	}{
		{"pass", true, nil, "[ OK ] label"},
		{"false", false, nil, "[ -- ] label"},
		{"undetermined", false, errors.New("bad json"), "[ ?? ] label: bad json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, _ := newTestPrinter(false)
			p.Check("label", tt.ok, tt.diag)
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("Check() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
