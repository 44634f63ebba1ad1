// Package parser implements the grammar engine and value decoders: it
// drives an internal/scanner.Cursor directly, recursive descent over a
// cursor with no separate token stream.
//
// It builds an *internal*, format-hint-carrying tree (Document/Node/Entry/
// Value below) rather than the public kdl.Document: the public package
// converts this tree on the way out, which keeps kdl free to import
// parser without parser importing kdl back.
package parser

import (
	"math/big"

	"github.com/vippsas/kdl/internal/diag"
)

// Kind is the tagged-union discriminator for Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNull
	KindInt64
	KindUInt64
	KindBigInt
	KindFloat64
	KindFloat32
)

// Identifier carries both the decoded value of an identifier and its
// original lexical form, so the pretty-printer can tell a bare identifier
// from one that was written quoted.
type Identifier struct {
	Value  string
	Lexeme string
	Span   diag.Span
}

// Value is the internal representation of a KDL value: a Kind tag, the
// decoded payload (only the field matching Kind is meaningful), an
// optional type tag, and the original source lexeme for format-preserving
// use.
type Value struct {
	Kind Kind

	Str     string   // KindString (includes the Date/Time/DateTime/Duration tagged-string convention)
	Bool    bool     // KindBool
	Int64   int64    // KindInt64
	UInt64  uint64   // KindUInt64
	Float64 float64  // KindFloat64
	Float32 float32  // KindFloat32
	BigVal  *big.Int // KindBigInt

	TypeTag string // "" if absent
	Lexeme  string // original source text of the value literal
	Span    diag.Span
}

// Entry is a single node-entry: a value, optionally named. An entry with
// an empty Name.Value and NoName == false is impossible; NoName is an
// explicit "absent" discriminator instead of relying on a sentinel empty
// string (an empty-string property name is not otherwise reachable,
// since an identifier cannot be empty, but the explicit flag keeps the
// invariant obvious at the type level).
type Entry struct {
	NoName bool
	Name   Identifier
	Value  Value
	Span   diag.Span
}

// Node is a single KDL node: a name, optional type tag, ordered entries,
// and an optional child list. HasChildren distinguishes "no {} present"
// from "present but empty".
type Node struct {
	TypeTag     string
	HasTypeTag  bool
	Name        Identifier
	Entries     []Entry
	HasChildren bool
	Children    []Node
	Span        diag.Span
}

// Document is an ordered top-level list of nodes.
type Document struct {
	Nodes []Node
}
