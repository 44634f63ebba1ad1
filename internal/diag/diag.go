// Package diag holds the diagnostic record type shared by the scanner and
// the parser. It has no dependencies on either so that both can import it
// without creating an import cycle with the public kdl package.
package diag

import (
	"fmt"
	"strings"
)

// Span is a byte range into the source buffer that produced a document.
type Span struct {
	Start  int
	Length int
}

// End returns the one-past-the-end byte offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// Diagnostic is a single structured parse error or warning.
//
// Message is the primary, one-line description of the problem. Label, when
// non-empty, is rendered immediately under the caret (e.g. "expected `)`
// closing type annotation"). Help, when non-empty, is appended as a final
// line of free-form advice.
type Diagnostic struct {
	Span    Span
	Message string
	Label   string
	Help    string
}

// Format renders a human-readable, multi-line rendition of the diagnostic
// against src: a "line:col: message" header, the offending source
// line, a caret indicator under the span, and the optional label/help.
//
// This is intentionally not a stable, machine-parsable format.
func (d Diagnostic) Format(src string) string {
	line, col, lineText := locate(src, d.Span.Start)

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s\n", line, col, d.Message)
	fmt.Fprintf(&b, "  %s\n", lineText)

	caretWidth := d.Span.Length
	remaining := len(lineText) - (col - 1)
	if remaining < 0 {
		remaining = 0
	}
	if caretWidth > remaining {
		caretWidth = remaining
	}
	if caretWidth < 1 {
		caretWidth = 1
	}
	b.WriteString("  ")
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString(strings.Repeat("^", caretWidth))
	if d.Label != "" {
		b.WriteString(" ")
		b.WriteString(d.Label)
	}
	b.WriteString("\n")
	if d.Help != "" {
		fmt.Fprintf(&b, "  help: %s\n", d.Help)
	}
	return b.String()
}

// locate computes the 1-based line/column for a byte offset by rescanning
// src for LF bytes, and returns the text of that source line (without its
// trailing newline).
func locate(src string, offset int) (line, col int, lineText string) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1

	lineEnd := strings.IndexByte(src[lineStart:], '\n')
	if lineEnd == -1 {
		lineText = src[lineStart:]
	} else {
		lineText = src[lineStart : lineStart+lineEnd]
	}
	return
}

// FormatAll renders every diagnostic in order, separated by a horizontal
// rule, so a caller can report every problem found in one parse.
func FormatAll(src string, diags []Diagnostic) string {
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteString(strings.Repeat("-", 40))
			b.WriteString("\n")
		}
		b.WriteString(d.Format(src))
	}
	return b.String()
}
