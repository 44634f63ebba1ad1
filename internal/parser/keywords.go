package parser

import (
	"math"

	"github.com/vippsas/kdl/internal/scanner"
)

// keywordSpellings maps each recognized keyword body (the text following
// '#') to the Value it produces.
var keywordSpellings = []struct {
	text string
	make func() Value
}{
	{"true", func() Value { return Value{Kind: KindBool, Bool: true} }},
	{"false", func() Value { return Value{Kind: KindBool, Bool: false} }},
	{"null", func() Value { return Value{Kind: KindNull} }},
	{"-inf", func() Value { return Value{Kind: KindFloat64, Float64: math.Inf(-1)} }},
	{"inf", func() Value { return Value{Kind: KindFloat64, Float64: math.Inf(1)} }},
	{"nan", func() Value { return Value{Kind: KindFloat64, Float64: math.NaN()} }},
}

// tryKeyword recognizes #true/#false/#null/#inf/#-inf/#nan. The leading
// '#' is committed only once the following text matches one of these
// spellings exactly (followed by a value terminator); a '#' followed by
// '"' or another '#' is released here so raw-string parsing can claim it.
func tryKeyword(c *scanner.Cursor) (Value, bool) {
	if c.PeekByte(0) != '#' {
		return Value{}, false
	}
	if b := c.PeekByte(1); b == '"' || b == '#' {
		return Value{}, false
	}
	return scanner.Try(c, func() (Value, bool) {
		start := c.Pos
		c.Advance(1) // '#'
		for _, kw := range keywordSpellings {
			if c.HasPrefix(kw.text) {
				save := c.Save()
				c.Advance(len(kw.text))
				if isValueTerminator(c) {
					v := kw.make()
					v.Lexeme = c.Input[start:c.Pos]
					v.Span = c.SpanFrom(start)
					return v, true
				}
				c.Restore(save)
			}
		}
		return Value{}, false
	})
}
