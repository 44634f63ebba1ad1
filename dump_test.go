package kdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpIncludesNodeName(t *testing.T) {
	doc, err := Parse("foo 1\n")
	assert.NoError(t, err)
	out := Dump(doc)
	assert.Contains(t, out, "foo")
}
