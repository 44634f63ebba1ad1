package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vippsas/kdl/internal/scanner"
)

func TestValueNoTypeAnnotation(t *testing.T) {
	c := scanner.New("42")
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Equal(t, KindInt64, v.Kind)
	assert.Equal(t, "", v.TypeTag)
}

func TestValueWithTypeAnnotation(t *testing.T) {
	c := scanner.New("(u8)42")
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Equal(t, "u8", v.TypeTag)
	assert.Equal(t, int64(42), v.Int64)
}

func TestValueTypeAnnotationWithInnerSpace(t *testing.T) {
	c := scanner.New(`("my-type") "hello"`)
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Equal(t, "my-type", v.TypeTag)
	assert.Equal(t, "hello", v.Str)
}

func TestValueTypeAnnotationMissingIdentifierIsHardError(t *testing.T) {
	c := scanner.New("()42")
	_, ok := tryValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestValueTypeAnnotationUnclosedIsHardError(t *testing.T) {
	c := scanner.New("(u8 42")
	_, ok := tryValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestValueTypeAnnotationWithoutFollowingValueIsError(t *testing.T) {
	c := scanner.New("(u8)")
	_, ok := tryValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestValueKeywordBeforeNumber(t *testing.T) {
	c := scanner.New("#null")
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Equal(t, KindNull, v.Kind)
}

func TestValueStringFallback(t *testing.T) {
	c := scanner.New(`"hi"`)
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Equal(t, "hi", v.Str)
}

func TestValueWidthTagOutOfRangeIsError(t *testing.T) {
	c := scanner.New("(u8)300")
	_, ok := tryValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestValueWidthTagNegativeOutOfRangeIsError(t *testing.T) {
	c := scanner.New("(i8)200")
	_, ok := tryValue(c)
	assert.False(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestValueWidthTagAtBoundaryIsAccepted(t *testing.T) {
	c := scanner.New("(u8)255")
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Empty(t, c.Diags)
	assert.Equal(t, int64(255), v.Int64)

	c = scanner.New("(i8)-128")
	v, ok = tryValue(c)
	assert.True(t, ok)
	assert.Empty(t, c.Diags)
	assert.Equal(t, int64(-128), v.Int64)
}

func TestValueUnrecognizedTagIsNotWidthChecked(t *testing.T) {
	c := scanner.New("(meters)300")
	v, ok := tryValue(c)
	assert.True(t, ok)
	assert.Equal(t, "meters", v.TypeTag)
	assert.Equal(t, int64(300), v.Int64)
}
