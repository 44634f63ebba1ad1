package kdl

import "github.com/vippsas/kdl/internal/parser"

// convertDocument flattens the internal format-carrying tree into the
// public one: entries without a name become ordered arguments,
// entries with a name become properties (later occurrences of the same
// key overwrite earlier ones, matching source order), and each entry's
// type tag moves onto the Value it wraps.
func convertDocument(d parser.Document) Document {
	out := Document{Nodes: make([]Node, len(d.Nodes))}
	for i, n := range d.Nodes {
		out.Nodes[i] = convertNode(n)
	}
	return out
}

func convertNode(n parser.Node) Node {
	node := Node{
		TypeTag:     n.TypeTag,
		HasTypeTag:  n.HasTypeTag,
		Name:        n.Name.Value,
		Properties:  map[string]Value{},
		HasChildren: n.HasChildren,
	}
	for _, e := range n.Entries {
		v := convertValue(e.Value)
		if e.NoName {
			node.Arguments = append(node.Arguments, v)
			node.Entries = append(node.Entries, Entry{Value: v})
		} else {
			node.Properties[e.Name.Value] = v
			node.Entries = append(node.Entries, Entry{Name: e.Name.Value, Value: v})
		}
	}
	if n.HasChildren {
		node.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			node.Children[i] = convertNode(child)
		}
	}
	return node
}

func convertValue(v parser.Value) Value {
	return Value{
		Kind:    Kind(v.Kind),
		Str:     v.Str,
		Bool:    v.Bool,
		Int64:   v.Int64,
		UInt64:  v.UInt64,
		Float64: v.Float64,
		Float32: v.Float32,
		BigVal:  v.BigVal,
		TypeTag: v.TypeTag,
	}
}
