package kdl

import "github.com/vippsas/kdl/internal/parser"

// Parse parses a complete KDL document from src and returns the document
// tree, or a *ParseError describing every diagnostic recorded during the
// attempt.
func Parse(src string) (*Document, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions is Parse with tracing and diagnostic-limit control.
func ParseWithOptions(src string, opts Options) (*Document, error) {
	result := parser.ParseTraced(src, opts.TraceLog)
	if len(result.Diagnostics) > 0 {
		diags := result.Diagnostics
		if opts.MaxDiagnostics > 0 && len(diags) > opts.MaxDiagnostics {
			diags = diags[:opts.MaxDiagnostics]
		}
		return nil, &ParseError{Diagnostics: diags, source: src}
	}
	doc := convertDocument(result.Document)
	return &doc, nil
}
