package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	errorBadge   = color.New(color.BgRed, color.FgHiWhite, color.Bold)
	successBadge = color.New(color.BgGreen, color.FgHiWhite, color.Bold)
	infoBadge    = color.New(color.BgBlue, color.FgHiWhite, color.Bold)
	warnBadge    = color.New(color.BgYellow, color.FgBlack, color.Bold)
)

// Printer writes levelled messages for a command. Return values go to the
// output stream and are never silenced; everything else is dropped in
// quiet mode except errors, which go to the error stream.
type Printer struct {
	out    io.Writer
	err    io.Writer
	quiet  bool
	colour bool
}

// NewPrinter returns a printer. Colour is used only when enabled and out
// is a terminal.
func NewPrinter(out, errOut io.Writer, quiet, colourEnabled bool) *Printer {
	return &Printer{
		out:    out,
		err:    errOut,
		quiet:  quiet,
		colour: colourEnabled && isTerminal(out),
	}
}

// Colour reports whether the printer emits escape sequences.
func (p *Printer) Colour() bool {
	return p.colour
}

// Error prints an error message to the error stream.
func (p *Printer) Error(format string, args ...any) {
	p.badge(p.err, errorBadge, " ERR. ", format, args...)
}

// Warn prints a warning to the error stream.
func (p *Printer) Warn(format string, args ...any) {
	if p.quiet {
		return
	}
	p.badge(p.err, warnBadge, " WARN ", format, args...)
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	if p.quiet {
		return
	}
	p.badge(p.out, successBadge, "  OK  ", format, args...)
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	p.badge(p.out, infoBadge, " INFO ", format, args...)
}

// Print prints a plain message.
func (p *Printer) Print(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Return prints a command result, even in quiet mode.
func (p *Printer) Return(s string) {
	fmt.Fprintln(p.out, s)
}

// Out returns the output stream.
func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) badge(w io.Writer, c *color.Color, label, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.colour {
		c.EnableColor()
		fmt.Fprintf(w, "%s %s\n", c.Sprint(label), msg)
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", strings.Trim(label, " ."), msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
