package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vippsas/kdl/internal/scanner"
)

func parseOneNode(t *testing.T, src string) (Node, *scanner.Cursor) {
	t.Helper()
	c := scanner.New(src)
	n, ok := tryNode(c)
	assert.True(t, ok, "diags: %+v", c.Diags)
	return n, c
}

func TestNodeNameOnly(t *testing.T) {
	n, _ := parseOneNode(t, "foo")
	assert.Equal(t, "foo", n.Name.Value)
	assert.Empty(t, n.Entries)
	assert.False(t, n.HasChildren)
}

func TestNodeWithArgumentsAndProperties(t *testing.T) {
	n, _ := parseOneNode(t, `foo 1 2 bar=3`)
	assert.Len(t, n.Entries, 3)
	assert.True(t, n.Entries[0].NoName)
	assert.True(t, n.Entries[1].NoName)
	assert.Equal(t, "bar", n.Entries[2].Name.Value)
}

func TestNodeWithTypeAnnotation(t *testing.T) {
	n, _ := parseOneNode(t, "(pkg)foo 1")
	assert.Equal(t, "pkg", n.TypeTag)
	assert.True(t, n.HasTypeTag)
}

func TestNodeWithChildren(t *testing.T) {
	n, _ := parseOneNode(t, "foo {\n  bar\n  baz\n}")
	assert.True(t, n.HasChildren)
	assert.Len(t, n.Children, 2)
	assert.Equal(t, "bar", n.Children[0].Name.Value)
	assert.Equal(t, "baz", n.Children[1].Name.Value)
}

func TestNodeEmptyChildrenBlock(t *testing.T) {
	n, _ := parseOneNode(t, "foo {\n}")
	assert.True(t, n.HasChildren)
	assert.Empty(t, n.Children)
}

func TestNodeDuplicateChildrenBlockIsError(t *testing.T) {
	c := scanner.New("foo {\n bar\n} {\n baz\n}")
	_, ok := tryNode(c)
	assert.True(t, ok)
	assert.NotEmpty(t, c.Diags)
}

func TestNodeSlashdashEntryIsDiscarded(t *testing.T) {
	n, _ := parseOneNode(t, "foo /-1 2")
	assert.Len(t, n.Entries, 1)
	assert.Equal(t, int64(2), n.Entries[0].Value.Int64)
}

func TestNodeSlashdashChildrenIsDiscarded(t *testing.T) {
	n, _ := parseOneNode(t, "foo /-{\n bar\n} baz=1")
	assert.False(t, n.HasChildren)
	assert.Len(t, n.Entries, 1)
	assert.Equal(t, "baz", n.Entries[0].Name.Value)
}

func TestNodeTerminatedBySemicolon(t *testing.T) {
	c := scanner.New("foo;bar")
	n, ok := tryNode(c)
	assert.True(t, ok)
	assert.Equal(t, "foo", n.Name.Value)
	assert.Equal(t, "bar", c.Input[c.Pos:])
}

func TestNodeReservedWordAsPropertyKeyIsError(t *testing.T) {
	c := scanner.New("foo null=1")
	n, ok := tryNode(c)
	assert.True(t, ok)
	assert.NotEmpty(t, c.Diags)
	assert.Empty(t, n.Entries)
}

func TestNodeMissingClosingBraceIsError(t *testing.T) {
	c := scanner.New("foo {\n bar\n")
	_, ok := tryNode(c)
	assert.True(t, ok)
	assert.NotEmpty(t, c.Diags)
}
