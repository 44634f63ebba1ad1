package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vippsas/kdl/internal/scanner"
)

func TestBareIdentifierBasic(t *testing.T) {
	c := scanner.New("foo-bar baz")
	id, ok := tryIdentifier(c)
	assert.True(t, ok)
	assert.Equal(t, "foo-bar", id.Value)
	assert.Equal(t, "foo-bar", id.Lexeme)
}

func TestBareIdentifierRejectsReservedWord(t *testing.T) {
	c := scanner.New("true")
	_, ok := tryBareIdentifier(c)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Pos)
}

func TestBareIdentifierRejectsNumberStart(t *testing.T) {
	c := scanner.New("123abc")
	_, ok := tryBareIdentifier(c)
	assert.False(t, ok)
}

func TestBareIdentifierAllowsLeadingDotNotFollowedByDigit(t *testing.T) {
	c := scanner.New(".foo")
	id, ok := tryBareIdentifier(c)
	assert.True(t, ok)
	assert.Equal(t, ".foo", id.Value)
}

func TestBareIdentifierRejectsLeadingDotDigit(t *testing.T) {
	c := scanner.New(".5")
	_, ok := tryBareIdentifier(c)
	assert.False(t, ok)
}

func TestIdentifierAcceptsQuotedForm(t *testing.T) {
	c := scanner.New(`"true"`)
	id, ok := tryIdentifier(c)
	assert.True(t, ok)
	assert.Equal(t, "true", id.Value)
	assert.Equal(t, `"true"`, id.Lexeme)
}

func TestIdentifierAcceptsSignAlone(t *testing.T) {
	// A lone "+" or "-" is a valid bare identifier since it is not
	// followed by a digit.
	c := scanner.New("- rest")
	id, ok := tryIdentifier(c)
	assert.True(t, ok)
	assert.Equal(t, "-", id.Value)
}

func TestLooksLikeReservedPropertyKey(t *testing.T) {
	c := scanner.New("null=1")
	assert.True(t, looksLikeReservedPropertyKey(c))
	assert.Equal(t, 0, c.Pos, "peek must not consume")
}

func TestLooksLikeReservedPropertyKeyFalseWhenNotFollowedByEquals(t *testing.T) {
	c := scanner.New("null 1")
	assert.False(t, looksLikeReservedPropertyKey(c))
}

func TestLooksLikeReservedPropertyKeyFalseForOrdinaryIdentifier(t *testing.T) {
	c := scanner.New("foo=1")
	assert.False(t, looksLikeReservedPropertyKey(c))
}
