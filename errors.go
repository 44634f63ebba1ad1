package kdl

import "github.com/vippsas/kdl/internal/diag"

// Diagnostic is one parse-time problem: a source span, a message, and
// optional label/help text. It is a thin re-export of the
// internal diagnostic type, which carries the byte-offset machinery
// needed to format it against the original source.
type Diagnostic = diag.Diagnostic

// ParseError is returned by Parse/ParseWithOptions whenever the
// diagnostic buffer is non-empty, even if the grammar engine otherwise
// produced a complete tree. Error() renders all diagnostics, one per
// source span, separated by a horizontal rule.
type ParseError struct {
	Diagnostics []Diagnostic
	source      string
}

func (e *ParseError) Error() string {
	return diag.FormatAll(e.source, e.Diagnostics)
}
