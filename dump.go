package kdl

import "github.com/alecthomas/repr"

// Dump renders a document with github.com/alecthomas/repr for debugging
// and test-failure output.
func Dump(d *Document) string {
	return repr.String(d, repr.Indent("  "))
}
