package kdl

import "math/big"

// AsString returns v's string payload and true if v.Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// AsBool returns v's boolean payload and true if v.Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// AsInt64 returns v's value as a signed 64-bit integer, succeeding for
// KindInt64 directly and for KindBigInt when it fits in int64.
func (v Value) AsInt64() (int64, bool) {
	switch v.Kind {
	case KindInt64:
		return v.Int64, true
	case KindBigInt:
		if v.BigVal != nil && v.BigVal.IsInt64() {
			return v.BigVal.Int64(), true
		}
	}
	return 0, false
}

// AsBigInt returns v's value as an arbitrary-precision integer, for any
// integer Kind.
func (v Value) AsBigInt() (*big.Int, bool) {
	switch v.Kind {
	case KindInt64:
		return big.NewInt(v.Int64), true
	case KindUInt64:
		return new(big.Int).SetUint64(v.UInt64), true
	case KindBigInt:
		if v.BigVal != nil {
			return v.BigVal, true
		}
	}
	return nil, false
}

// AsFloat64 returns v's value as a float64, converting from any numeric
// Kind (integers convert exactly up to 2^53, as with any float
// conversion).
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindFloat64:
		return v.Float64, true
	case KindFloat32:
		return float64(v.Float32), true
	case KindInt64:
		return float64(v.Int64), true
	case KindUInt64:
		return float64(v.UInt64), true
	case KindBigInt:
		if v.BigVal != nil {
			f := new(big.Float).SetInt(v.BigVal)
			result, _ := f.Float64()
			return result, true
		}
	}
	return 0, false
}

// AsInt narrows v to a signed integer of the given bit width (8, 16, 32,
// or 64), reporting false if v is not an integer Kind or does not fit.
func (v Value) AsInt(bits int) (int64, bool) {
	big_, ok := v.AsBigInt()
	if !ok {
		return 0, false
	}
	if !big_.IsInt64() {
		return 0, false
	}
	n := big_.Int64()
	lo, hi := signedRange(bits)
	if n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// AsUint narrows v to an unsigned integer of the given bit width (8, 16,
// 32, or 64), reporting false if v is not a non-negative integer Kind or
// does not fit.
func (v Value) AsUint(bits int) (uint64, bool) {
	big_, ok := v.AsBigInt()
	if !ok || big_.Sign() < 0 {
		return 0, false
	}
	if !big_.IsUint64() {
		return 0, false
	}
	n := big_.Uint64()
	_, hi := unsignedRange(bits)
	if n > hi {
		return 0, false
	}
	return n, true
}

func signedRange(bits int) (lo, hi int64) {
	switch bits {
	case 8:
		return -1 << 7, 1<<7 - 1
	case 16:
		return -1 << 15, 1<<15 - 1
	case 32:
		return -1 << 31, 1<<31 - 1
	default:
		return -1 << 63, 1<<63 - 1
	}
}

func unsignedRange(bits int) (lo, hi uint64) {
	switch bits {
	case 8:
		return 0, 1<<8 - 1
	case 16:
		return 0, 1<<16 - 1
	case 32:
		return 0, 1<<32 - 1
	default:
		return 0, 1<<64 - 1
	}
}

// Property looks up a property by name, reporting whether it was
// present.
func (n Node) Property(name string) (Value, bool) {
	v, ok := n.Properties[name]
	return v, ok
}

// Arg returns the i'th argument, reporting whether the index was in
// range.
func (n Node) Arg(i int) (Value, bool) {
	if i < 0 || i >= len(n.Arguments) {
		return Value{}, false
	}
	return n.Arguments[i], true
}

// ChildrenNamed returns every direct child node with the given name, in
// source order.
func (n Node) ChildrenNamed(name string) []Node {
	var out []Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// NodesNamed returns every top-level node with the given name, in source
// order.
func (d Document) NodesNamed(name string) []Node {
	var out []Node
	for _, n := range d.Nodes {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}
