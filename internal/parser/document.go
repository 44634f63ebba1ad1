package parser

import (
	"github.com/vippsas/kdl/internal/diag"
	"github.com/vippsas/kdl/internal/scanner"
)

// parseDocumentNodes parses a sequence of (possibly slashdashed) nodes,
// stopping at EOF or, when insideChildren is true, at the '}' that closes
// the enclosing children-block.
func parseDocumentNodes(c *scanner.Cursor, insideChildren bool) []Node {
	var nodes []Node
	for {
		skipLineSpace(c)
		if c.AtEnd() {
			return nodes
		}
		if insideChildren && c.PeekByte(0) == '}' {
			return nodes
		}

		if !insideChildren && c.PeekByte(0) == '}' {
			start := c.Pos
			c.Advance(1)
			c.AddErrorf(c.SpanFrom(start), "unexpected '}' at document level", "no matching '{' is open here", "")
			continue
		}

		if trySlashdash(c) {
			if n, ok := tryNode(c); ok {
				_ = n // slashdashed node: parsed then discarded
			} else {
				recoverToNextLine(c)
			}
			continue
		}

		n, ok := tryNode(c)
		if !ok {
			recoverToNextLine(c)
			continue
		}
		nodes = append(nodes, n)
	}
}

// recoverToNextLine is the document-level recovery helper: when a node
// fails to parse at all (not even a name was found), record an
// "unexpected character" diagnostic over the skipped text and skip to the
// next newline so subsequent nodes can still be reported on.
func recoverToNextLine(c *scanner.Cursor) {
	start := c.Pos
	for !c.AtEnd() && !atNewline(c) {
		_, w := c.PeekRune()
		if w == 0 {
			break
		}
		c.Advance(w)
	}
	c.AddErrorf(c.SpanFrom(start), "unexpected character", "expected a node, a comment, or whitespace", "")
	if c.Pos == start && !c.AtEnd() {
		_, w := c.PeekRune()
		if w == 0 {
			w = 1
		}
		c.Advance(w)
	}
	skipNewline(c)
}

// ParseResult is the outcome of parsing a complete document: the parsed
// tree (always populated, even when diagnostics were recorded, so
// multi-diagnostic recovery has something to report against) plus any
// diagnostics. The caller (the public kdl package) treats a non-empty
// Diagnostics slice as failure regardless of whether a tree was produced.
type ParseResult struct {
	Document    Document
	Diagnostics []diag.Diagnostic
}

// Parse parses a complete KDL document from src. A single
// optional UTF-8 BOM at offset 0 is tolerated and stripped; a BOM
// anywhere else in the input is rejected by the scanner as a disallowed
// codepoint.
func Parse(src string) ParseResult {
	return ParseTraced(src, nil)
}

// ParseTraced is Parse with an attached scanner.TraceLogger; the public
// kdl package's Options.TraceLog flows down to here.
func ParseTraced(src string, trace scanner.TraceLogger) ParseResult {
	body := src
	if hasBOM(body) {
		body = body[3:]
	}
	c := scanner.New(body)
	c.Trace = trace
	c.Tracef("parse starting, %d bytes", len(body))
	nodes := parseDocumentNodes(c, false)
	if !c.AtEnd() {
		c.AddErrorf(c.SpanFrom(c.Pos), "trailing input after document end", "", "")
	}
	c.Tracef("parse finished, %d nodes, %d diagnostics", len(nodes), len(c.Diags))
	return ParseResult{Document: Document{Nodes: nodes}, Diagnostics: c.Diags}
}

func hasBOM(s string) bool {
	return len(s) >= 3 && s[0] == 0xEF && s[1] == 0xBB && s[2] == 0xBF
}
