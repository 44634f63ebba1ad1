package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/vippsas/kdl/internal/scanner"
)

// tryNumberValue parses a numeric literal in any radix, or a decimal
// float, and enforces that it is followed by a value terminator.
// Underscore digit-grouping is validated inline per radix.
func tryNumberValue(c *scanner.Cursor) (Value, bool) {
	if !atNumberStart(c) {
		return Value{}, false
	}
	return scanner.Try(c, func() (Value, bool) {
		start := c.Pos
		sign := 1
		if c.PeekByte(0) == '+' || c.PeekByte(0) == '-' {
			if c.PeekByte(0) == '-' {
				sign = -1
			}
			c.Advance(1)
		}

		var v Value
		var ok bool
		switch {
		case c.HasPrefix("0x"):
			c.Advance(2)
			v, ok = scanRadixInt(c, start, sign, 16, scanner.IsHexDigit)
		case c.HasPrefix("0o"):
			c.Advance(2)
			v, ok = scanRadixInt(c, start, sign, 8, scanner.IsOctalDigit)
		case c.HasPrefix("0b"):
			c.Advance(2)
			v, ok = scanRadixInt(c, start, sign, 2, scanner.IsBinaryDigit)
		default:
			v, ok = scanDecimal(c, start, sign)
		}
		if !ok {
			return Value{}, false
		}
		if !isValueTerminator(c) {
			c.AddError(c.SpanFrom(start), "number abuts an identifier character")
			return Value{}, false
		}
		v.Lexeme = c.Input[start:c.Pos]
		v.Span = c.SpanFrom(start)
		return v, true
	})
}

// scanDigitsWithUnderscores consumes a run of digits (validated by
// isDigit) with grouping underscores, enforcing that an underscore may
// not immediately follow the starting position passed in, may not be the
// first or last character, and that at least one digit is present.
func scanDigitsWithUnderscores(c *scanner.Cursor, isDigit func(rune) bool, noLeadingUnderscore bool) (digits string, ok bool) {
	var sb strings.Builder
	first := true
	lastWasUnderscore := false
	for {
		b := c.PeekByte(0)
		r, w := c.PeekRune()
		if w != 0 && isDigit(r) {
			sb.WriteByte(b)
			c.Advance(1)
			first = false
			lastWasUnderscore = false
			continue
		}
		if b == '_' {
			if first && noLeadingUnderscore {
				return "", false
			}
			c.Advance(1)
			lastWasUnderscore = true
			continue
		}
		break
	}
	if sb.Len() == 0 || lastWasUnderscore {
		return "", false
	}
	return sb.String(), true
}

// scanRadixInt decodes the digit run following a 0x/0o/0b prefix.
// Radix literals always materialize as BigInt, regardless of magnitude;
// unlike scanDecimal, there is no fits-in-int64 narrowing here.
func scanRadixInt(c *scanner.Cursor, start int, sign int, base int, isDigit func(rune) bool) (Value, bool) {
	digitsStart := c.Pos
	digits, ok := scanDigitsWithUnderscores(c, isDigit, true)
	if !ok {
		c.AddError(c.SpanFrom(start), "expected digits after radix prefix")
		return Value{}, false
	}
	// Reject a digit run followed immediately by a non-digit
	// identifier-continue character of the wrong radix (e.g. 0xFG): any
	// further identifier-continue scalar right after the accepted run
	// that isn't a valid value terminator is a hard error, caught by the
	// isValueTerminator check in the caller. But an invalid digit for the
	// radix (like "9" in octal) must be flagged explicitly here, since
	// the generic scan simply stopped before it.
	if r, w := c.PeekRune(); w != 0 && scanner.IsIdentifierContinue(r) && !scanner.IsUnicodeWhitespace(r) {
		if isAlnum(r) {
			c.AddErrorf(c.SpanFrom(digitsStart), "invalid digit for radix", "this character is not a valid digit in this base", "")
			return Value{}, false
		}
	}
	cleaned := strings.ReplaceAll(digits, "_", "")
	mag := new(big.Int)
	if _, ok := mag.SetString(cleaned, base); !ok {
		c.AddError(c.SpanFrom(start), "invalid digit for radix")
		return Value{}, false
	}
	if sign < 0 {
		mag.Neg(mag)
	}
	return Value{Kind: KindBigInt, BigVal: mag}, true
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// scanDecimal decodes a decimal integer or float literal (no radix
// prefix) per the digit/point/exponent grammar.
func scanDecimal(c *scanner.Cursor, start int, sign int) (Value, bool) {
	intDigits, ok := scanDigitsWithUnderscores(c, scanner.IsDigit, false)
	if !ok {
		c.AddError(c.SpanFrom(start), "expected digit")
		return Value{}, false
	}

	isFloat := false
	var fracDigits string
	if c.PeekByte(0) == '.' {
		// A lone '.' with no fractional digit ("1.") is rejected, not
		// silently treated as an integer followed by a terminator.
		save := c.Save()
		c.Advance(1)
		fd, fok := scanDigitsWithUnderscores(c, scanner.IsDigit, true)
		if !fok {
			c.Restore(save)
			if c.PeekByte(0) == '.' {
				c.AddError(c.SpanFrom(start), "expected digit after decimal point")
				return Value{}, false
			}
		} else {
			isFloat = true
			fracDigits = fd
		}
	}
	if c.PeekByte(0) == '.' {
		c.AddError(c.SpanFrom(start), "multiple decimal points in number")
		return Value{}, false
	}

	var expSign string
	var expDigits string
	if c.PeekByte(0) == 'e' || c.PeekByte(0) == 'E' {
		save := c.Save()
		c.Advance(1)
		sgn := ""
		if c.PeekByte(0) == '+' || c.PeekByte(0) == '-' {
			sgn = string(c.PeekByte(0))
			c.Advance(1)
		}
		ed, eok := scanDigitsWithUnderscores(c, scanner.IsDigit, true)
		if !eok {
			c.Restore(save)
			c.AddError(c.SpanFrom(start), "expected digit after exponent marker")
			return Value{}, false
		}
		isFloat = true
		expSign = sgn
		expDigits = ed
	}
	if c.PeekByte(0) == 'e' || c.PeekByte(0) == 'E' {
		c.AddError(c.SpanFrom(start), "multiple exponent markers in number")
		return Value{}, false
	}

	if !isFloat {
		cleaned := strings.ReplaceAll(intDigits, "_", "")
		mag := new(big.Int)
		mag.SetString(cleaned, 10)
		if sign < 0 {
			mag.Neg(mag)
		}
		return intValueFromBig(mag), true
	}

	var text strings.Builder
	if sign < 0 {
		text.WriteByte('-')
	}
	text.WriteString(strings.ReplaceAll(intDigits, "_", ""))
	if fracDigits != "" {
		text.WriteByte('.')
		text.WriteString(strings.ReplaceAll(fracDigits, "_", ""))
	}
	if expDigits != "" {
		text.WriteByte('e')
		text.WriteString(expSign)
		text.WriteString(strings.ReplaceAll(expDigits, "_", ""))
	}
	f, err := strconv.ParseFloat(text.String(), 64)
	if err != nil {
		c.AddError(c.SpanFrom(start), "malformed float literal")
		return Value{}, false
	}
	return Value{Kind: KindFloat64, Float64: f}, true
}

// intValueFromBig selects Int64 when mag fits in a signed 64-bit integer,
// otherwise keeps the arbitrary-precision representation. Narrower fixed
// widths are modeled as a range-checked accessor over these two kinds
// rather than as distinct Kind values.
func intValueFromBig(mag *big.Int) Value {
	if mag.IsInt64() {
		return Value{Kind: KindInt64, Int64: mag.Int64()}
	}
	return Value{Kind: KindBigInt, BigVal: mag}
}

// widthTag describes one of the reserved fixed-width integer type tags:
// whether it is signed, and its bit width.
type widthTag struct {
	signed bool
	bits   int
}

var reservedWidthTags = map[string]widthTag{
	"i8": {true, 8}, "u8": {false, 8},
	"i16": {true, 16}, "u16": {false, 16},
	"i32": {true, 32}, "u32": {false, 32},
	"i64": {true, 64}, "u64": {false, 64},
}

// magnitudeOf returns v's value as an arbitrary-precision integer, for
// any integer Kind. It reports false for a non-integer value, which is
// not a width-check failure -- a tag like (f32) is simply not one of the
// reserved integer widths and is left alone here.
func magnitudeOf(v Value) (*big.Int, bool) {
	switch v.Kind {
	case KindInt64:
		return big.NewInt(v.Int64), true
	case KindUInt64:
		return new(big.Int).SetUint64(v.UInt64), true
	case KindBigInt:
		if v.BigVal != nil {
			return v.BigVal, true
		}
	}
	return nil, false
}

func signedWidthRange(bits int) (lo, hi *big.Int) {
	switch bits {
	case 8:
		return big.NewInt(-1 << 7), big.NewInt(1<<7 - 1)
	case 16:
		return big.NewInt(-1 << 15), big.NewInt(1<<15 - 1)
	case 32:
		return big.NewInt(-1 << 31), big.NewInt(1<<31 - 1)
	default:
		return big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)
	}
}

func unsignedWidthRange(bits int) (lo, hi *big.Int) {
	switch bits {
	case 8:
		return big.NewInt(0), big.NewInt(1<<8 - 1)
	case 16:
		return big.NewInt(0), big.NewInt(1<<16 - 1)
	case 32:
		return big.NewInt(0), big.NewInt(1<<32 - 1)
	default:
		return big.NewInt(0), new(big.Int).SetUint64(math.MaxUint64)
	}
}

// checkWidthTag range-checks v's magnitude against the bit width named by
// v.TypeTag, when that tag is one of the reserved fixed-width integer
// spellings (i8/u8/.../i64/u64). Any other tag (including a non-integer
// value's tag) passes untouched: the narrower widths aren't distinct
// Kind values, so this is the only place that rule is enforced.
func checkWidthTag(c *scanner.Cursor, v Value) bool {
	w, isWidthTag := reservedWidthTags[v.TypeTag]
	if !isWidthTag {
		return true
	}
	mag, ok := magnitudeOf(v)
	if !ok {
		return true
	}
	var lo, hi *big.Int
	if w.signed {
		lo, hi = signedWidthRange(w.bits)
	} else {
		lo, hi = unsignedWidthRange(w.bits)
	}
	if mag.Cmp(lo) < 0 || mag.Cmp(hi) > 0 {
		c.AddErrorf(v.Span, "integer literal out of range for its type-tag-declared width",
			mag.String()+" does not fit in "+v.TypeTag, "")
		return false
	}
	return true
}
