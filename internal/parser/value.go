package parser

import "github.com/vippsas/kdl/internal/scanner"

// tryTypeAnnotation parses an optional `(identifier)` prefix, used both on
// values and on node names. Failure to find a matching `)` after a
// committed `(` is a hard (non-speculative) error, since a lone `(` can
// only ever begin a type annotation.
func tryTypeAnnotation(c *scanner.Cursor) (string, bool, bool) {
	if c.PeekByte(0) != '(' {
		return "", false, true
	}
	start := c.Pos
	c.Advance(1)
	skipInlineWhitespace(c)
	id, ok := tryIdentifier(c)
	if !ok {
		c.AddErrorf(c.SpanFrom(start), "expected identifier after '('", "type annotations must contain a single identifier", "")
		return "", false, false
	}
	skipInlineWhitespace(c)
	if c.PeekByte(0) != ')' {
		c.AddErrorf(c.SpanFrom(start), "expected ')' closing type annotation", "", "")
		return "", false, false
	}
	c.Advance(1)
	return id.Value, true, true
}

// tryBareValue parses a value literal with no type annotation: a keyword,
// a number, or a string in any of its lexical forms (raw, quoted, or a
// bare identifier read as a string).
func tryBareValue(c *scanner.Cursor) (Value, bool) {
	if v, ok := tryKeyword(c); ok {
		return v, true
	}
	if v, ok := tryNumberValue(c); ok {
		return v, true
	}
	if v, ok := tryStringValue(c); ok {
		return v, true
	}
	if id, ok := tryBareIdentifier(c); ok {
		return Value{Kind: KindString, Str: id.Value, Lexeme: id.Lexeme, Span: id.Span}, true
	}
	return Value{}, false
}

// tryValue parses an optionally type-annotated value.
func tryValue(c *scanner.Cursor) (Value, bool) {
	return scanner.Try(c, func() (Value, bool) {
		typeTag, hasType, committed := tryTypeAnnotation(c)
		if !committed {
			return Value{}, false
		}
		if hasType {
			skipInlineWhitespace(c)
		}
		v, ok := tryBareValue(c)
		if !ok {
			if hasType {
				c.AddError(c.SpanFrom(c.Pos), "expected value after type annotation")
			}
			return Value{}, false
		}
		v.TypeTag = typeTag
		if hasType && !checkWidthTag(c, v) {
			return Value{}, false
		}
		return v, true
	})
}
