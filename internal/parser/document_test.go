package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmptyDocument(t *testing.T) {
	r := Parse("")
	assert.Empty(t, r.Document.Nodes)
	assert.Empty(t, r.Diagnostics)
}

func TestParseMultipleTopLevelNodes(t *testing.T) {
	r := Parse("foo 1\nbar 2\n")
	assert.Empty(t, r.Diagnostics)
	assert.Len(t, r.Document.Nodes, 2)
	assert.Equal(t, "foo", r.Document.Nodes[0].Name.Value)
	assert.Equal(t, "bar", r.Document.Nodes[1].Name.Value)
}

func TestParseStripsLeadingBOM(t *testing.T) {
	r := Parse("\xEF\xBB\xBFfoo 1\n")
	assert.Empty(t, r.Diagnostics)
	assert.Len(t, r.Document.Nodes, 1)
}

func TestParseNestedChildren(t *testing.T) {
	r := Parse("parent {\n  child1\n  child2 1\n}\n")
	assert.Empty(t, r.Diagnostics)
	assert.Len(t, r.Document.Nodes, 1)
	parent := r.Document.Nodes[0]
	assert.True(t, parent.HasChildren)
	assert.Len(t, parent.Children, 2)
}

func TestParseSlashdashedTopLevelNodeIsDiscarded(t *testing.T) {
	r := Parse("/-foo 1\nbar 2\n")
	assert.Empty(t, r.Diagnostics)
	assert.Len(t, r.Document.Nodes, 1)
	assert.Equal(t, "bar", r.Document.Nodes[0].Name.Value)
}

func TestParseLineCommentsAreIgnored(t *testing.T) {
	r := Parse("// comment\nfoo 1 // trailing\n")
	assert.Empty(t, r.Diagnostics)
	assert.Len(t, r.Document.Nodes, 1)
}

func TestParseSkipsUnparseableLineAndContinues(t *testing.T) {
	// A line that never resolves to a node is skipped wholesale so later
	// nodes still get parsed; this matches the "sync to the next newline"
	// recovery strategy used throughout the grammar engine.
	r := Parse(")))\nfoo 1\n")
	assert.Len(t, r.Document.Nodes, 1)
	assert.Equal(t, "foo", r.Document.Nodes[0].Name.Value)
}

func TestParseUnclosedChildrenBlockIsError(t *testing.T) {
	r := Parse("foo {\n  bar\n")
	assert.NotEmpty(t, r.Diagnostics)
}

func TestParseStrayTopLevelClosingBraceIsError(t *testing.T) {
	r := Parse("foo 1\n}\n")
	assert.NotEmpty(t, r.Diagnostics)
	assert.Len(t, r.Document.Nodes, 1)
	assert.Equal(t, "foo", r.Document.Nodes[0].Name.Value)
}
