// Package kdl implements a parser, document model, and pretty-printer for
// the KDL 2.0 document language. The lexer and grammar engine live under
// internal/parser and internal/scanner; this package converts their
// format-hint-carrying internal tree into the plain public tree below
// and exposes the parse/render/accessor surface.
package kdl

import "math/big"

// Kind discriminates the payload carried by a Value.
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

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindInt64:
		return "int64"
	case KindUInt64:
		return "uint64"
	case KindBigInt:
		return "bigint"
	case KindFloat64:
		return "float64"
	case KindFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// Value is a single KDL value: a Kind tag, the decoded payload (only the
// field matching Kind is meaningful), and an optional type tag.
//
// Integer width below int64/uint64 is deliberately not modeled as
// separate Kind values (eight of them, one per KDL integer type
// annotation) -- it is instead surfaced through AsInt/AsUint, which
// range-check a KindInt64/KindBigInt value down to the requested width.
// This keeps Kind's switch statements (in the pretty-printer, in
// accessors, in tests) to a handful of cases instead of fourteen.
type Value struct {
	Kind Kind

	Str     string
	Bool    bool
	Int64   int64
	UInt64  uint64
	Float64 float64
	Float32 float32
	BigVal  *big.Int

	// TypeTag is the value's KDL type annotation, e.g. "u8" or
	// "date-time", or "" if none was present.
	TypeTag string
}

// Entry is an argument or property value as it appears in source order.
// Name is "" for an argument.
type Entry struct {
	Name  string
	Value Value
}

// Node is a single KDL node: an optional type tag, a name,
// ordered arguments, a property map, and
// optional children. HasChildren distinguishes "no {} present" from
// "present but empty".
type Node struct {
	TypeTag    string
	HasTypeTag bool
	Name       string

	Arguments  []Value
	Properties map[string]Value
	// Entries preserves the full interleaved source order of arguments
	// and properties together, for callers that need it; Arguments and
	// Properties are the common-case view, and the ones the pretty-printer
	// renders.
	Entries []Entry

	HasChildren bool
	Children    []Node
}

// Document is an ordered top-level list of nodes.
type Document struct {
	Nodes []Node
}
