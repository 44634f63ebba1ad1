package parser

import "github.com/vippsas/kdl/internal/scanner"

// tryPropertyEntry parses `identifier=value` (no whitespace permitted
// around `=`; node-space is what separates entries, not the `=` itself).
func tryPropertyEntry(c *scanner.Cursor) (Entry, bool) {
	return scanner.Try(c, func() (Entry, bool) {
		start := c.Pos
		name, ok := tryIdentifier(c)
		if !ok {
			return Entry{}, false
		}
		if c.PeekByte(0) != '=' {
			return Entry{}, false
		}
		c.Advance(1)
		v, ok := tryValue(c)
		if !ok {
			c.AddError(c.SpanFrom(start), "expected value after '='")
			return Entry{}, false
		}
		return Entry{NoName: false, Name: name, Value: v, Span: c.SpanFrom(start)}, true
	})
}

// tryEntry parses one entry: a property or a bare value, trying property
// first and backtracking to a bare value on failure.
func tryEntry(c *scanner.Cursor) (Entry, bool) {
	if e, ok := tryPropertyEntry(c); ok {
		return e, true
	}
	if v, ok := tryValue(c); ok {
		return Entry{NoName: true, Value: v, Span: v.Span}, true
	}
	return Entry{}, false
}

// recoverToEntryBoundary skips forward until the next node-space,
// terminator, or EOF, used after reporting "reserved keywords cannot be
// used as bare property keys" so the grammar engine can keep scanning the
// rest of the node for further diagnostics.
func recoverToEntryBoundary(c *scanner.Cursor) {
	for {
		if c.AtEnd() || atNewline(c) {
			return
		}
		switch c.PeekByte(0) {
		case ';', '{', '}':
			return
		}
		r, w := c.PeekRune()
		if w == 0 {
			return
		}
		if scanner.IsUnicodeWhitespace(r) {
			return
		}
		c.Advance(w)
	}
}
