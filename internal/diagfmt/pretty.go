// Package diagfmt renders diagnostics for the CLI: a pretty format with
// source excerpts, a compact single-line format and a JSON format.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cinder/internal/diag"
	"cinder/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() (bag.Sort()
// is expected beforehand). Every diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message> [lint]
//	    <source line>
//	    ^~~~
//
// followed by its notes in the same shape when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeading(w, fs, d.Primary, severityColor(d.Severity, opts.Color), headingText(d), opts)
		printExcerpt(w, fs, d.Primary, opts)
		if !opts.ShowNotes {
			continue
		}
		noteColor := paint(opts.Color, color.FgCyan)
		for _, note := range d.Notes {
			printHeading(w, fs, note.Span, noteColor, "note: "+note.Msg, opts)
			printExcerpt(w, fs, note.Span, opts)
		}
	}
}

func headingText(d diag.Diagnostic) string {
	text := fmt.Sprintf("%s %s: %s", d.Severity.String(), d.Code.ID(), d.Message)
	if d.Lint != "" {
		text += " [" + d.Lint + "]"
	}
	return text
}

func printHeading(w io.Writer, fs *source.FileSet, span source.Span, c *color.Color, text string, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	path := "<unknown>"
	if f := fs.Get(span.File); f != nil {
		path = formatPath(f.Path, opts.PathMode)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s\n", path, start.Line, start.Col, c.Sprint(text))
}

// printExcerpt prints the first source line covered by the span with a
// ^~~~ underline beneath it. The underline width is measured with
// runewidth so tabs and wide runes stay aligned.
func printExcerpt(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	startByte := int(start.Col) - 1
	if startByte > len(line) {
		startByte = len(line)
	}
	endByte := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endByte {
		endByte = int(end.Col) - 1
	}
	if endByte < startByte {
		endByte = startByte
	}

	pad := runewidth.StringWidth(line[:startByte])
	width := runewidth.StringWidth(line[startByte:endByte])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), paint(opts.Color, color.FgGreen, color.Bold).Sprint(underline))
}

// Short formats diagnostics one per line, grep-friendly:
// <path>:<line>:<col>: <sev> <code>: <message> [lint]
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeading(w, fs, d.Primary, severityColor(d.Severity, opts.Color), headingText(d), opts)
	}
}

func formatPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	switch sev {
	case diag.SevError:
		return paint(enabled, color.FgRed, color.Bold)
	case diag.SevWarning:
		return paint(enabled, color.FgYellow, color.Bold)
	default:
		return paint(enabled, color.FgCyan)
	}
}

// paint builds a color that ignores the package-global NoColor detection,
// so output stays deterministic regardless of the environment.
func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
