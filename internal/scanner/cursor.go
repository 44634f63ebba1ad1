package scanner

import (
	"unicode/utf8"

	"github.com/vippsas/kdl/internal/diag"
)

// Cursor is a position-aware reader over a source buffer, carrying the
// diagnostic accumulator alongside it rather than a separate tokenizer
// object.
//
// All position arithmetic is in byte offsets; rune width is determined by
// UTF-8 decoding at each access.
type Cursor struct {
	Input string
	Pos   int
	Diags []diag.Diagnostic

	// Trace, when non-nil, receives Trace-level spans for the major
	// grammar productions. A *logrus.Logger or *logrus.Entry satisfies
	// this interface; it is declared locally so this package does not need
	// to import logrus itself.
	Trace TraceLogger
}

// TraceLogger is the minimal logging surface the scanner needs;
// *logrus.Logger and *logrus.Entry both satisfy it.
type TraceLogger interface {
	Tracef(format string, args ...interface{})
}

// New creates a cursor positioned at the start of src, with tracing
// disabled.
func New(src string) *Cursor {
	return &Cursor{Input: src}
}

// Tracef emits a trace-level message if a TraceLogger is attached; it is
// a no-op otherwise, so call sites never need to guard it themselves.
func (c *Cursor) Tracef(format string, args ...interface{}) {
	if c.Trace != nil {
		c.Trace.Tracef(format, args...)
	}
}

// Snapshot is an opaque save point for speculative parsing: it captures
// both the cursor position and the diagnostic-accumulator length, because
// a naive snapshot of position alone leaks diagnostics recorded by a
// failed branch.
type Snapshot struct {
	pos     int
	diagLen int
}

// Save captures the current position and diagnostic count.
func (c *Cursor) Save() Snapshot {
	return Snapshot{pos: c.Pos, diagLen: len(c.Diags)}
}

// Restore rewinds the cursor to s, discarding any diagnostics recorded
// since s was taken.
func (c *Cursor) Restore(s Snapshot) {
	c.Pos = s.pos
	c.Diags = c.Diags[:s.diagLen]
}

// AtEnd reports whether the cursor has consumed the entire input.
func (c *Cursor) AtEnd() bool {
	return c.Pos >= len(c.Input)
}

// PeekByte returns the byte n positions ahead of the cursor (0 = the next
// byte to be read), or 0 if that position is past the end of input.
func (c *Cursor) PeekByte(n int) byte {
	i := c.Pos + n
	if i < 0 || i >= len(c.Input) {
		return 0
	}
	return c.Input[i]
}

// PeekRune decodes the UTF-8 scalar at the cursor without consuming it,
// returning utf8.RuneError (width 0) at end of input.
func (c *Cursor) PeekRune() (rune, int) {
	if c.AtEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.Input[c.Pos:])
}

// PeekRuneAt decodes the UTF-8 scalar n bytes past the cursor.
func (c *Cursor) PeekRuneAt(n int) (rune, int) {
	i := c.Pos + n
	if i < 0 || i >= len(c.Input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.Input[i:])
}

// Advance moves the cursor forward n bytes. Callers are responsible for n
// being a valid UTF-8 boundary distance (i.e. derived from a rune width).
func (c *Cursor) Advance(n int) {
	c.Pos += n
	if c.Pos > len(c.Input) {
		c.Pos = len(c.Input)
	}
}

// AdvanceRune consumes exactly one UTF-8 scalar and returns it.
func (c *Cursor) AdvanceRune() rune {
	r, w := c.PeekRune()
	c.Advance(w)
	return r
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return len(c.Input)-c.Pos >= len(s) && c.Input[c.Pos:c.Pos+len(s)] == s
}

// SpanFrom builds a Span covering [start, c.Pos).
func (c *Cursor) SpanFrom(start int) diag.Span {
	return diag.Span{Start: start, Length: c.Pos - start}
}

// AddError appends a diagnostic with no label/help.
func (c *Cursor) AddError(span diag.Span, message string) {
	c.Diags = append(c.Diags, diag.Diagnostic{Span: span, Message: message})
}

// AddErrorf appends a diagnostic with a label and/or help text.
func (c *Cursor) AddErrorf(span diag.Span, message, label, help string) {
	c.Diags = append(c.Diags, diag.Diagnostic{Span: span, Message: message, Label: label, Help: help})
}

// Try runs fn speculatively: on failure (fn returns false) the cursor and
// diagnostic accumulator are rewound to their pre-call state, so a failed
// branch leaves no trace. On success the
// advanced cursor state and any recorded diagnostics are kept.
func Try[T any](c *Cursor, fn func() (T, bool)) (T, bool) {
	snap := c.Save()
	v, ok := fn()
	if !ok {
		c.Restore(snap)
	}
	return v, ok
}

// SkipWhile advances the cursor past every rune for which cond returns
// true, stopping at EOF or the first rune for which it returns false.
func (c *Cursor) SkipWhile(cond func(rune) bool) {
	for !c.AtEnd() {
		r, w := c.PeekRune()
		if w == 0 || !cond(r) {
			return
		}
		c.Advance(w)
	}
}
