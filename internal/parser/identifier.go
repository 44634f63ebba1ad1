package parser

import (
	"github.com/vippsas/kdl/internal/scanner"
)

// reservedWords are the bare words that must be spelled as keywords
// (#true, #false, ...) and may never stand alone as an identifier or
// property key.
var reservedWords = map[string]bool{
	"true": true, "false": true, "null": true,
	"inf": true, "-inf": true, "nan": true,
}

// isReservedWord reports whether text is one of the reserved bare words.
func isReservedWord(text string) bool {
	return reservedWords[text]
}

// atNumberStart reports whether a numeric literal begins at the cursor:
// an optional sign followed by a decimal digit. Radix-prefixed
// literals (0x/0o/0b) also start with a digit, so this check subsumes
// them.
func atNumberStart(c *scanner.Cursor) bool {
	r0, w0 := c.PeekRune()
	if w0 == 0 {
		return false
	}
	if r0 == '+' || r0 == '-' {
		r1, w1 := c.PeekRuneAt(w0)
		return w1 != 0 && scanner.IsDigit(r1)
	}
	return scanner.IsDigit(r0)
}

// scanBareIdentifierText consumes the raw text of a bare identifier,
// without checking it against the reserved-word list, and without
// consuming anything on failure.
func scanBareIdentifierText(c *scanner.Cursor) (string, bool) {
	if atNumberStart(c) {
		return "", false
	}
	r0, w0 := c.PeekRune()
	if w0 == 0 || !scanner.IsIdentifierContinue(r0) {
		return "", false
	}
	if scanner.IsDigit(r0) {
		return "", false
	}
	if r0 == '.' {
		r1, w1 := c.PeekRuneAt(w0)
		if w1 != 0 && scanner.IsDigit(r1) {
			return "", false
		}
	}
	start := c.Pos
	c.Advance(w0)
	c.SkipWhile(scanner.IsIdentifierContinue)
	return c.Input[start:c.Pos], true
}

// tryBareIdentifier parses a bare identifier and rejects (without
// consuming) any of the reserved bare words, backtracking so the caller
// can try parsing them as something else.
func tryBareIdentifier(c *scanner.Cursor) (Identifier, bool) {
	return scanner.Try(c, func() (Identifier, bool) {
		start := c.Pos
		text, ok := scanBareIdentifierText(c)
		if !ok || isReservedWord(text) {
			return Identifier{}, false
		}
		span := c.SpanFrom(start)
		return Identifier{Value: text, Lexeme: text, Span: span}, true
	})
}

// tryIdentifier parses an identifier in any of its lexical forms: a bare
// word, a quoted string, or a raw string.
// The decoded string value becomes the identifier's Value; the original
// source text becomes its Lexeme, which lets the pretty-printer tell a
// bare identifier from one that had to be quoted.
func tryIdentifier(c *scanner.Cursor) (Identifier, bool) {
	if id, ok := tryBareIdentifier(c); ok {
		return id, true
	}
	return scanner.Try(c, func() (Identifier, bool) {
		start := c.Pos
		if str, ok := tryStringValue(c); ok {
			return Identifier{Value: str.Str, Lexeme: c.Input[start:c.Pos], Span: c.SpanFrom(start)}, true
		}
		return Identifier{}, false
	})
}

// looksLikeReservedPropertyKey peeks (without consuming) whether the
// cursor sits on a run of identifier-continue bytes that spells a
// reserved word and is immediately followed by '=' -- used to emit the
// dedicated "reserved keywords cannot be used as bare property keys"
// diagnostic instead of a generic parse failure.
func looksLikeReservedPropertyKey(c *scanner.Cursor) bool {
	_, ok := scanner.Try(c, func() (struct{}, bool) {
		text, ok := scanBareIdentifierText(c)
		if !ok || !isReservedWord(text) {
			return struct{}{}, false
		}
		return struct{}{}, c.PeekByte(0) == '='
	})
	return ok
}

// looksLikeReservedBareValue peeks (without consuming) whether the
// cursor sits on a bare spelling of one of the reserved words used where
// a value is expected -- e.g. "null" instead of "#null". Used to emit
// the dedicated "reserved keyword cannot be used as bare identifier"
// diagnostic instead of a generic parse failure.
func looksLikeReservedBareValue(c *scanner.Cursor) (string, bool) {
	return scanner.Try(c, func() (string, bool) {
		text, ok := scanBareIdentifierText(c)
		if !ok || !isReservedWord(text) {
			return "", false
		}
		return text, true
	})
}
