package parser

import (
	"github.com/vippsas/kdl/internal/scanner"
)

// newlineWidth reports the byte width of the newline sequence starting at
// the cursor, trying CRLF before CR and LF, or 0 if no newline starts
// here.
func newlineWidth(c *scanner.Cursor) int {
	if c.HasPrefix("\r\n") {
		return 2
	}
	r, w := c.PeekRune()
	if w == 0 {
		return 0
	}
	switch r {
	case '\r', '\n', 0x85, 0x0B, 0x0C, 0x2028, 0x2029:
		return w
	}
	return 0
}

// atNewline reports whether a newline starts at the cursor.
func atNewline(c *scanner.Cursor) bool {
	return newlineWidth(c) > 0
}

// skipNewline consumes one newline sequence, reporting whether one was
// present.
func skipNewline(c *scanner.Cursor) bool {
	w := newlineWidth(c)
	if w == 0 {
		return false
	}
	c.Advance(w)
	return true
}

// skipInlineWhitespace consumes zero or more Unicode whitespace scalars
// and block comments (nested), treated as a single "whitespace" unit.
func skipInlineWhitespace(c *scanner.Cursor) {
	for {
		r, w := c.PeekRune()
		if w != 0 && scanner.IsUnicodeWhitespace(r) {
			c.Advance(w)
			continue
		}
		if c.HasPrefix("/*") {
			skipBlockComment(c)
			continue
		}
		return
	}
}

// skipBlockComment consumes a /* ... */ comment, honoring nesting, and
// records "unclosed block comment" if EOF is reached first.
func skipBlockComment(c *scanner.Cursor) {
	start := c.Pos
	c.Advance(2) // "/*"
	depth := 1
	for depth > 0 {
		if c.AtEnd() {
			c.AddError(c.SpanFrom(start), "unclosed block comment")
			return
		}
		switch {
		case c.HasPrefix("/*"):
			depth++
			c.Advance(2)
		case c.HasPrefix("*/"):
			depth--
			c.Advance(2)
		default:
			_, w := c.PeekRune()
			if w == 0 {
				w = 1
			}
			c.Advance(w)
		}
	}
}

// skipLineComment consumes a "// ..." comment through, but not including,
// the next newline. Assumes the cursor is positioned on the first
// '/'.
func skipLineComment(c *scanner.Cursor) {
	c.Advance(2) // "//"
	for !c.AtEnd() && !atNewline(c) {
		_, w := c.PeekRune()
		if w == 0 {
			break
		}
		c.Advance(w)
	}
}

// tryEscline attempts to consume an escline: '\' then inline whitespace
// and at most one line comment, then a newline (or EOF), then any inline
// whitespace after the newline. Reports whether one was consumed.
func tryEscline(c *scanner.Cursor) bool {
	if c.PeekByte(0) != '\\' {
		return false
	}
	_, ok := scanner.Try(c, func() (struct{}, bool) {
		c.Advance(1) // backslash
		skipInlineWhitespace(c)
		if c.HasPrefix("//") {
			skipLineComment(c)
		}
		if c.AtEnd() {
			return struct{}{}, true
		}
		if !skipNewline(c) {
			return struct{}{}, false
		}
		skipInlineWhitespace(c)
		return struct{}{}, true
	})
	return ok
}

// skipNodeSpace consumes a node-space: either one-or-more inline
// whitespace, or (inline whitespace)* escline (inline whitespace)*.
// Reports whether any node-space was consumed.
func skipNodeSpace(c *scanner.Cursor) bool {
	start := c.Pos
	for {
		before := c.Pos
		skipInlineWhitespace(c)
		if tryEscline(c) {
			continue
		}
		if c.Pos == before {
			break
		}
	}
	return c.Pos != start
}

// skipLineSpace consumes zero or more "line-space" units: a newline,
// inline whitespace, or a line comment, in any combination.
func skipLineSpace(c *scanner.Cursor) {
	for {
		before := c.Pos
		skipInlineWhitespace(c)
		if c.HasPrefix("//") {
			skipLineComment(c)
			continue
		}
		if skipNewline(c) {
			continue
		}
		if c.Pos == before {
			return
		}
	}
}

// trySlashdash attempts to consume a "/-" marker followed by the
// whitespace/newlines/esclines that may separate it from its target.
// Reports whether a slashdash marker was present.
func trySlashdash(c *scanner.Cursor) bool {
	if !c.HasPrefix("/-") {
		return false
	}
	c.Advance(2)
	for {
		skipLineSpace(c)
		if !tryEscline(c) {
			return true
		}
	}
}

// isValueTerminator reports whether the cursor sits at a position where a
// numeric (or other bare) literal may legally end.
func isValueTerminator(c *scanner.Cursor) bool {
	if c.AtEnd() {
		return true
	}
	r, w := c.PeekRune()
	if w == 0 {
		return true
	}
	if scanner.IsUnicodeWhitespace(r) || scanner.IsNewlineStart(r) {
		return true
	}
	switch r {
	case '=', ')', '{', '}', ';':
		return true
	}
	if c.HasPrefix("//") || c.HasPrefix("/*") || c.HasPrefix("/-") {
		return true
	}
	return false
}
