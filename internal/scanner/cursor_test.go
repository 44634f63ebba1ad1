package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vippsas/kdl/internal/diag"
)

func TestCursorBasics(t *testing.T) {
	c := New("abc")
	assert.False(t, c.AtEnd())
	r, w := c.PeekRune()
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, w)
	c.Advance(1)
	assert.Equal(t, byte('b'), c.PeekByte(0))
	c.Advance(2)
	assert.True(t, c.AtEnd())
}

func TestTryRestoresOnFailure(t *testing.T) {
	c := New("hello")
	c.AddError(diag.Span{}, "pre-existing diagnostic")
	pre := len(c.Diags)

	_, ok := Try(c, func() (string, bool) {
		c.Advance(3)
		c.AddError(diag.Span{}, "should be rolled back")
		return "", false
	})
	assert.False(t, ok)
	assert.Equal(t, 0, c.Pos)
	assert.Equal(t, pre, len(c.Diags))
}

func TestTryKeepsStateOnSuccess(t *testing.T) {
	c := New("hello")
	v, ok := Try(c, func() (string, bool) {
		c.Advance(2)
		return "he", true
	})
	assert.True(t, ok)
	assert.Equal(t, "he", v)
	assert.Equal(t, 2, c.Pos)
}

func TestSkipWhile(t *testing.T) {
	c := New("   abc")
	c.SkipWhile(IsUnicodeWhitespace)
	assert.Equal(t, 3, c.Pos)
}

func TestHasPrefix(t *testing.T) {
	c := New("foo bar")
	assert.True(t, c.HasPrefix("foo"))
	assert.False(t, c.HasPrefix("bar"))
}
