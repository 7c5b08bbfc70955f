package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sx/internal/diag"
	"sx/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgCyan)
	gutterColor  = color.New(color.FgBlue)
)

// Pretty formats diagnostics for humans. It walks bag.Items() (call
// bag.Sort() beforehand) and prints for each diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY> [<ID>]: <message>
//
// followed by the offending source line with a ^~~~ underline for the
// span, then any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
		printContext(w, d.Primary, fs, opts)
		for _, note := range d.Notes {
			printNote(w, note, fs, opts)
		}
	}
}

func printHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	label := sev.String()
	if opts.Color {
		label = severityColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.FormatPath(), start.Line, start.Col, label, code.ID(), msg)
}

func printNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(note.Span.File)
	start, _ := fs.Resolve(note.Span)

	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		file.FormatPath(), start.Line, start.Col, label, note.Msg)
	printContext(w, note.Span, fs, opts)
}

// printContext prints the source line the span starts on and underlines
// the span with ^~~~. Multi-line spans are underlined on their first line
// only.
func printContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := file.GetLine(start.Line)

	gutter := fmt.Sprintf("%4d | ", start.Line)
	pad := strings.Repeat(" ", len(gutter)-2)
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	underline := "^" + strings.Repeat("~", int(width)-1)
	if opts.Color {
		underline = errorColor.Sprint(underline)
	}
	fmt.Fprintf(w, "%s| %s%s\n", pad, strings.Repeat(" ", int(start.Col)-1), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
