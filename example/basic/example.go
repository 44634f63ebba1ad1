// Package example demonstrates embedding and parsing a KDL document at
// program init.
package example

import (
	"embed"

	"github.com/vippsas/kdl"
)

//go:embed sample.kdl
var sampleFS embed.FS

// Document is the parsed form of sample.kdl, built once at package init.
// MustParse panics on a malformed embedded document, which is appropriate
// here: an embedded file failing to parse is a build-time bug, not a
// runtime condition callers should handle.
var Document = MustParse()

// MustParse reads and parses sample.kdl, panicking on any error. It is a
// function rather than inlined into the package-level var so tests can
// call it directly to assert on failure modes without depending on
// package-init side effects.
func MustParse() *kdl.Document {
	src, err := sampleFS.ReadFile("sample.kdl")
	if err != nil {
		panic(err)
	}
	doc, err := kdl.Parse(string(src))
	if err != nil {
		panic(err)
	}
	return doc
}
