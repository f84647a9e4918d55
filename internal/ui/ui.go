// Package ui renders colored status lines for the CLI. Every command writes
// through a Printer so output can be captured in tests.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	mutedColor   = color.New(color.FgHiBlack)
	debugColor   = color.New(color.FgCyan)
	bannerColor  = color.New(color.FgHiWhite)
)

// Printer writes colored messages to an output and an error stream.
type Printer struct {
	out   io.Writer
	err   io.Writer
	debug bool
}

// New returns a Printer. Debug lines are dropped unless debug is true.
func New(out, errOut io.Writer, debug bool) *Printer {
	return &Printer{out: out, err: errOut, debug: debug}
}

// DisableColor turns off escape sequences for every Printer.
func DisableColor() {
	color.NoColor = true
}

// Out returns the underlying output writer.
func (p *Printer) Out() io.Writer { return p.out }

// Banner prints the product logo.
func (p *Printer) Banner(text string) {
	bannerColor.Fprintln(p.out, text)
}

// Title prints a section heading.
func (p *Printer) Title(format string, a ...any) {
	titleColor.Fprintf(p.out, format+"\n", a...)
}

// Info prints a progress line.
func (p *Printer) Info(format string, a ...any) {
	infoColor.Fprintf(p.out, format+"\n", a...)
}

// Success prints a completed step.
func (p *Printer) Success(format string, a ...any) {
	successColor.Fprintf(p.out, format+"\n", a...)
}

// Warn prints a recoverable problem.
func (p *Printer) Warn(format string, a ...any) {
	warnColor.Fprintf(p.out, format+"\n", a...)
}

// Error prints a failure to the error stream.
func (p *Printer) Error(format string, a ...any) {
	errorColor.Fprintf(p.err, format+"\n", a...)
}

// Muted prints secondary detail such as hints and skipped optional files.
func (p *Printer) Muted(format string, a ...any) {
	mutedColor.Fprintf(p.out, format+"\n", a...)
}

// Plain prints without color.
func (p *Printer) Plain(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Debug prints only when debug output is enabled.
func (p *Printer) Debug(format string, a ...any) {
	if !p.debug {
		return
	}
	debugColor.Fprintf(p.err, "debug: "+format+"\n", a...)
}

// Check prints a labelled boolean check result in doctor style.
// A non-nil diag marks the check as undetermined rather than false.
func (p *Printer) Check(label string, ok bool, diag error) {
	switch {
	case ok:
		successColor.Fprintf(p.out, "  [ OK ] %s\n", label)
	case diag != nil:
		warnColor.Fprintf(p.out, "  [ ?? ] %s: %v\n", label, diag)
	default:
		mutedColor.Fprintf(p.out, "  [ -- ] %s\n", label)
	}
}
