package parser

import (
	"strconv"
	"strings"

	"github.com/vippsas/kdl/internal/diag"
	"github.com/vippsas/kdl/internal/scanner"
)

// tryStringValue parses any of the three string forms (raw, multiline
// quoted, single-line quoted) into a KindString Value. It does not
// attempt keywords or identifiers-as-string; callers that need those
// compose this with tryKeyword/tryBareIdentifier.
func tryStringValue(c *scanner.Cursor) (Value, bool) {
	if v, ok := tryRawString(c); ok {
		return v, true
	}
	return tryQuotedString(c)
}

// tryQuotedString parses a `"..."` or `"""..."""` string, dispatching on
// whether the input opens with `"""` (the multiline form, which must then
// be followed by a newline) or with a single `"`.
func tryQuotedString(c *scanner.Cursor) (Value, bool) {
	if c.PeekByte(0) != '"' {
		return Value{}, false
	}
	if c.HasPrefix(`"""`) {
		return scanner.Try(c, func() (Value, bool) { return tryMultilineQuoted(c) })
	}
	return scanner.Try(c, func() (Value, bool) { return trySingleLineQuoted(c) })
}

// trySingleLineQuoted parses content between a pair of `"` delimiters,
// resolving escapes as it goes. A bare newline before the closing
// quote is a lex error ("unescaped newline in string"); EOF before the
// closing quote is "unclosed string".
func trySingleLineQuoted(c *scanner.Cursor) (Value, bool) {
	start := c.Pos
	c.Advance(1) // opening quote

	var sb strings.Builder
	for {
		if c.AtEnd() {
			c.AddError(c.SpanFrom(start), "unclosed string")
			return Value{}, false
		}
		if c.PeekByte(0) == '"' {
			c.Advance(1)
			return Value{
				Kind:   KindString,
				Str:    sb.String(),
				Lexeme: c.Input[start:c.Pos],
				Span:   c.SpanFrom(start),
			}, true
		}
		if atNewline(c) {
			c.AddError(c.SpanFrom(start), "unescaped newline in string")
			return Value{}, false
		}
		if c.PeekByte(0) == '\\' {
			text, ok := decodeEscape(c, false)
			if !ok {
				return Value{}, false
			}
			sb.WriteString(text)
			continue
		}
		r, w := c.PeekRune()
		if w == 0 {
			c.AddError(c.SpanFrom(start), "unclosed string")
			return Value{}, false
		}
		if scanner.IsDisallowed(r) {
			c.AddError(diag.Span{Start: c.Pos, Length: w}, "disallowed codepoint in string")
			c.Advance(w)
			return Value{}, false
		}
		c.Advance(w)
		sb.WriteRune(r)
	}
}

// decodeEscape resolves one backslash escape sequence at the cursor,
// appending nothing and returning "" when it is a whitespace-escape
// (which produces no output). A whitespace-escape consumes newlines as
// well as inline whitespace, in single-line and multiline strings alike;
// inMultiline is not consulted.
func decodeEscape(c *scanner.Cursor, inMultiline bool) (string, bool) {
	start := c.Pos
	c.Advance(1) // backslash
	if c.AtEnd() {
		c.AddError(c.SpanFrom(start), "unclosed string")
		return "", false
	}
	b := c.PeekByte(0)
	switch b {
	case 'n':
		c.Advance(1)
		return "\n", true
	case 'r':
		c.Advance(1)
		return "\r", true
	case 't':
		c.Advance(1)
		return "\t", true
	case '\\':
		c.Advance(1)
		return "\\", true
	case '"':
		c.Advance(1)
		return "\"", true
	case 'b':
		c.Advance(1)
		return "\b", true
	case 'f':
		c.Advance(1)
		return "\f", true
	case 's':
		c.Advance(1)
		return " ", true
	case 'u':
		return decodeUnicodeEscape(c, start)
	}
	r, w := c.PeekRune()
	if w != 0 && (r == ' ' || r == '\t' || r == '\r' || r == '\n' || scanner.IsUnicodeWhitespace(r) || scanner.IsNewlineStart(r)) {
		for {
			r, w := c.PeekRune()
			if w == 0 {
				break
			}
			if r == ' ' || r == '\t' || scanner.IsUnicodeWhitespace(r) || scanner.IsNewlineStart(r) {
				if scanner.IsNewlineStart(r) {
					skipNewline(c)
					continue
				}
				c.Advance(w)
				continue
			}
			break
		}
		return "", true
	}
	c.AddError(c.SpanFrom(start), "invalid escape sequence")
	return "", false
}

// decodeUnicodeEscape parses `\u{HHHHHH}` (1-6 hex digits), rejecting
// surrogates and disallowed codepoints.
func decodeUnicodeEscape(c *scanner.Cursor, escStart int) (string, bool) {
	c.Advance(1) // 'u'
	if c.PeekByte(0) != '{' {
		c.AddError(c.SpanFrom(escStart), "invalid escape sequence")
		return "", false
	}
	c.Advance(1)
	digitsStart := c.Pos
	for scanner.IsHexDigit(rune(c.PeekByte(0))) {
		c.Advance(1)
	}
	digits := c.Input[digitsStart:c.Pos]
	if len(digits) < 1 || len(digits) > 6 {
		c.AddError(c.SpanFrom(escStart), "invalid hex escape length")
		return "", false
	}
	if c.PeekByte(0) != '}' {
		c.AddError(c.SpanFrom(escStart), "unclosed unicode escape")
		return "", false
	}
	c.Advance(1)
	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || val > 0x10FFFF {
		c.AddError(c.SpanFrom(escStart), "invalid hex escape codepoint")
		return "", false
	}
	r := rune(val)
	if r >= 0xD800 && r <= 0xDFFF {
		c.AddError(c.SpanFrom(escStart), "surrogate codepoint forbidden in escape")
		return "", false
	}
	if scanner.IsDisallowed(r) {
		c.AddError(c.SpanFrom(escStart), "disallowed codepoint in escape")
		return "", false
	}
	return string(r), true
}

// tryMultilineQuoted parses `"""` <newline> ... <newline> <dedent>`"""`,
// splitting into lines, computing the dedent prefix from the closing
// line, stripping it from every content line, joining with LF, and only
// then resolving non-whitespace escapes.
func tryMultilineQuoted(c *scanner.Cursor) (Value, bool) {
	start := c.Pos
	c.Advance(3) // opening """
	if !skipNewline(c) {
		c.AddError(c.SpanFrom(start), `multiline string must open with """ followed by a newline`)
		return Value{}, false
	}

	rawLines, ok := collectMultilineContent(c, start, `"""`, true)
	if !ok {
		return Value{}, false
	}
	joined, ok := dedentLines(c, start, rawLines)
	if !ok {
		return Value{}, false
	}
	resolved, ok := resolveNonWhitespaceEscapes(c, start, joined)
	if !ok {
		return Value{}, false
	}
	return Value{
		Kind:   KindString,
		Str:    resolved,
		Lexeme: c.Input[start:c.Pos],
		Span:   c.SpanFrom(start),
	}, true
}

// collectMultilineContent reads content lines (escapes not yet resolved,
// except whitespace-escapes when resolveWhitespaceEscapes is true -- those
// may themselves consume a newline, merging what were two physical lines
// into one logical content line) up to but not including the closing
// delimiter line, and consumes the closing delimiter. The returned slice
// holds one entry per logical content line, with a final synthetic
// dedentMarker entry carrying the closing line's whitespace prefix.
func collectMultilineContent(c *scanner.Cursor, errSpanStart int, closeDelim string, resolveWhitespaceEscapes bool) ([]string, bool) {
	var lines []string
	for {
		if c.AtEnd() {
			c.AddError(c.SpanFrom(errSpanStart), "unclosed string")
			return nil, false
		}
		if atLineStartClosingDelim(c, closeDelim) {
			dedentPrefix := consumeClosingDelimLine(c, closeDelim)
			return append(lines, dedentMarker(dedentPrefix)), true
		}

		var sb strings.Builder
		for {
			if c.AtEnd() {
				c.AddError(c.SpanFrom(errSpanStart), "unclosed string")
				return nil, false
			}
			if atNewline(c) {
				break
			}
			if resolveWhitespaceEscapes && c.PeekByte(0) == '\\' {
				text, ok := decodeEscapeOrWhitespace(c)
				if !ok {
					return nil, false
				}
				sb.WriteString(text)
				continue
			}
			r, w := c.PeekRune()
			if w == 0 {
				c.AddError(c.SpanFrom(errSpanStart), "unclosed string")
				return nil, false
			}
			if scanner.IsDisallowed(r) {
				c.AddError(c.SpanFrom(errSpanStart), "disallowed codepoint in string")
				return nil, false
			}
			c.Advance(w)
			sb.WriteRune(r)
		}
		lines = append(lines, sb.String())
		skipNewline(c)
	}
}

// consumeClosingDelimLine consumes the closing delimiter line (leading
// whitespace, then the delimiter itself) and returns the whitespace as
// the dedent prefix. Assumes atLineStartClosingDelim already confirmed a
// match at the current position.
func consumeClosingDelimLine(c *scanner.Cursor, closeDelim string) string {
	closeLineStart := c.Pos
	c.SkipWhile(scanner.IsUnicodeWhitespace)
	dedentPrefix := c.Input[closeLineStart:c.Pos]
	c.Advance(len(closeDelim))
	return dedentPrefix
}

// dedentMarker smuggles the closing line's whitespace prefix through as a
// final synthetic element so dedentLines does not need a second return
// value threaded through collectMultilineContent's caller.
func dedentMarker(prefix string) string { return "\x00dedent\x00" + prefix }

// decodeEscapeOrWhitespace resolves an escape during multiline collection:
// whitespace-escapes are fully resolved now (may cross a line boundary),
// everything else is passed through raw (its backslash-escape form) so
// resolveNonWhitespaceEscapes can apply it after dedentation.
func decodeEscapeOrWhitespace(c *scanner.Cursor) (string, bool) {
	r, w := c.PeekRuneAt(1)
	if w != 0 && (scanner.IsUnicodeWhitespace(r) || scanner.IsNewlineStart(r) || r == ' ' || r == '\t') {
		return decodeEscape(c, true)
	}
	// Not a whitespace-escape: pass the raw backslash through unresolved;
	// the escape it introduces is resolved later, after dedentation, so
	// it cannot be split across a dedent boundary.
	c.Advance(1)
	return "\\", true
}

// atLineStartClosingDelim reports whether, ignoring any Unicode
// whitespace prefix, the closing delimiter starts at the current
// position AND the cursor is at the start of a line (the previous
// character consumed was a newline, or this is the first line) -- in
// practice this is called only right after a newline or at content
// start, so no extra bookkeeping is required beyond peeking ahead.
func atLineStartClosingDelim(c *scanner.Cursor, closeDelim string) bool {
	save := c.Save()
	defer c.Restore(save)
	c.SkipWhile(scanner.IsUnicodeWhitespace)
	return c.HasPrefix(closeDelim)
}

// dedentLines strips the dedent prefix from every non-empty line, leaves
// whitespace-only lines empty, and joins the result with LF.
func dedentLines(c *scanner.Cursor, errSpanStart int, linesWithMarker []string) (string, bool) {
	n := len(linesWithMarker)
	marker := linesWithMarker[n-1]
	lines := linesWithMarker[:n-1]
	prefix := strings.TrimPrefix(marker, "\x00dedent\x00")

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isAllUnicodeWhitespace(line) {
			out = append(out, "")
			continue
		}
		if prefix == "" {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(line, prefix) {
			out = append(out, line[len(prefix):])
			continue
		}
		c.AddErrorf(c.SpanFrom(errSpanStart), "multiline string line does not start with dedent prefix",
			"every non-blank line must share the closing line's indentation", "")
		return "", false
	}
	return strings.Join(out, "\n"), true
}

func isAllUnicodeWhitespace(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !scanner.IsUnicodeWhitespace(r) {
			return false
		}
	}
	return true
}

// resolveNonWhitespaceEscapes applies backslash escapes to the
// already-dedented, already-joined content. The content at
// this point contains literal backslashes only where a non-whitespace
// escape (or a whitespace-escape the caller chose not to pre-resolve,
// which cannot happen for well-formed input) remains.
func resolveNonWhitespaceEscapes(c *scanner.Cursor, errSpanStart int, content string) (string, bool) {
	sc := scanner.New(content)
	var sb strings.Builder
	for !sc.AtEnd() {
		if sc.PeekByte(0) == '\\' {
			text, ok := decodeEscape(sc, false)
			if !ok {
				c.AddError(c.SpanFrom(errSpanStart), "invalid escape sequence in multiline string")
				return "", false
			}
			sb.WriteString(text)
			continue
		}
		r, w := sc.PeekRune()
		if w == 0 {
			break
		}
		sc.Advance(w)
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// tryRawString parses `#"..."#`/`#"""..."""#` with an arbitrary matching
// hash count and no escape processing.
func tryRawString(c *scanner.Cursor) (Value, bool) {
	if c.PeekByte(0) != '#' {
		return Value{}, false
	}
	return scanner.Try(c, func() (Value, bool) {
		start := c.Pos
		hashes := 0
		for c.PeekByte(hashes) == '#' {
			hashes++
		}
		if c.PeekByte(hashes) != '"' {
			return Value{}, false
		}
		c.Advance(hashes)
		closeDelim := `"` + strings.Repeat("#", hashes)
		if c.HasPrefix(`"""`) {
			c.Advance(3)
			if !skipNewline(c) {
				c.AddError(c.SpanFrom(start), `multiline raw string must open with """ followed by a newline`)
				return Value{}, false
			}
			closeDelim = `"""` + strings.Repeat("#", hashes)
			lines, ok := collectRawMultilineContent(c, start, closeDelim)
			if !ok {
				return Value{}, false
			}
			joined, ok := dedentLines(c, start, lines)
			if !ok {
				return Value{}, false
			}
			return Value{Kind: KindString, Str: joined, Lexeme: c.Input[start:c.Pos], Span: c.SpanFrom(start)}, true
		}
		c.Advance(1) // opening quote
		contentStart := c.Pos
		for {
			if c.AtEnd() {
				c.AddError(c.SpanFrom(start), "unclosed string")
				return Value{}, false
			}
			if c.HasPrefix(closeDelim) {
				content := c.Input[contentStart:c.Pos]
				c.Advance(len(closeDelim))
				return Value{Kind: KindString, Str: content, Lexeme: c.Input[start:c.Pos], Span: c.SpanFrom(start)}, true
			}
			_, w := c.PeekRune()
			if w == 0 {
				w = 1
			}
			c.Advance(w)
		}
	})
}

// collectRawMultilineContent mirrors collectMultilineContent but performs
// no escape processing whatsoever, since raw strings never interpret
// backslashes.
func collectRawMultilineContent(c *scanner.Cursor, errSpanStart int, closeDelim string) ([]string, bool) {
	var lines []string
	for {
		if c.AtEnd() {
			c.AddError(c.SpanFrom(errSpanStart), "unclosed string")
			return nil, false
		}
		if atLineStartClosingDelim(c, closeDelim) {
			dedentPrefix := consumeClosingDelimLine(c, closeDelim)
			return append(lines, dedentMarker(dedentPrefix)), true
		}

		var sb strings.Builder
		for {
			if c.AtEnd() {
				c.AddError(c.SpanFrom(errSpanStart), "unclosed string")
				return nil, false
			}
			if atNewline(c) {
				break
			}
			r, w := c.PeekRune()
			if w == 0 {
				c.AddError(c.SpanFrom(errSpanStart), "unclosed string")
				return nil, false
			}
			c.Advance(w)
			sb.WriteRune(r)
		}
		lines = append(lines, sb.String())
		skipNewline(c)
	}
}
