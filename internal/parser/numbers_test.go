package parser

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vippsas/kdl/internal/scanner"
)

func parseOneNumber(t *testing.T, src string) Value {
	t.Helper()
	c := scanner.New(src)
	v, ok := tryNumberValue(c)
	assert.True(t, ok, "diags: %+v", c.Diags)
	return v
}

func TestDecimalIntFitsInt64(t *testing.T) {
	v := parseOneNumber(t, "12345")
	assert.Equal(t, KindInt64, v.Kind)
	assert.Equal(t, int64(12345), v.Int64)
}

func TestMaxInt64StaysInt64(t *testing.T) {
	v := parseOneNumber(t, "9223372036854775807")
	assert.Equal(t, KindInt64, v.Kind)
	assert.Equal(t, int64(math.MaxInt64), v.Int64)
}

func TestOneMoreThanMaxInt64BecomesBigInt(t *testing.T) {
	v := parseOneNumber(t, "9223372036854775808")
	assert.Equal(t, KindBigInt, v.Kind)
	want := new(big.Int)
	want.SetString("9223372036854775808", 10)
	assert.Equal(t, 0, want.Cmp(v.BigVal))
}

func TestNegativeDecimal(t *testing.T) {
	v := parseOneNumber(t, "-42")
	assert.Equal(t, KindInt64, v.Kind)
	assert.Equal(t, int64(-42), v.Int64)
}

func TestHexBigIntMagnitudes(t *testing.T) {
	v := parseOneNumber(t, "0xFF_FF")
	assert.Equal(t, KindBigInt, v.Kind) // radix literals are always BigInt, even when small
	assert.Equal(t, 0, big.NewInt(0xFFFF).Cmp(v.BigVal))
}

func TestOctalAndBinary(t *testing.T) {
	v := parseOneNumber(t, "0o77")
	assert.Equal(t, KindBigInt, v.Kind)
	assert.Equal(t, 0, big.NewInt(0o77).Cmp(v.BigVal))

	v = parseOneNumber(t, "0b1010")
	assert.Equal(t, KindBigInt, v.Kind)
	assert.Equal(t, 0, big.NewInt(0b1010).Cmp(v.BigVal))
}

func TestFloatBasic(t *testing.T) {
	v := parseOneNumber(t, "1.5")
	assert.Equal(t, KindFloat64, v.Kind)
	assert.Equal(t, 1.5, v.Float64)
}

func TestFloatExponentCanonicalCase(t *testing.T) {
	v := parseOneNumber(t, "1e10")
	assert.Equal(t, KindFloat64, v.Kind)
	assert.Equal(t, 1e10, v.Float64)
}

func TestTrailingDecimalPointIsRejected(t *testing.T) {
	c := scanner.New("1.")
	_, ok := tryNumberValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestUnderscoreImmediatelyAfterRadixPrefixRejected(t *testing.T) {
	c := scanner.New("0x_FF")
	_, ok := tryNumberValue(c)
	assert.False(t, ok)
}

func TestInvalidDigitForRadixIsHardError(t *testing.T) {
	c := scanner.New("0o9")
	_, ok := tryNumberValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestNumberAbuttingIdentifierIsLexError(t *testing.T) {
	c := scanner.New("123abc")
	_, ok := tryNumberValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestMultipleDecimalPointsIsHardError(t *testing.T) {
	c := scanner.New("1.2.3")
	_, ok := tryNumberValue(c)
	assert.False(t, ok)
}
