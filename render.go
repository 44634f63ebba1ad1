package kdl

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vippsas/kdl/internal/scanner"
)

// Render renders a document to canonical KDL text: children
// indented four spaces per level, properties sorted by key, floats in
// canonical form, a trailing newline after the last node.
func Render(d *Document) string {
	var sb strings.Builder
	renderNodes(&sb, d.Nodes, 0)
	return sb.String()
}

// RenderCompact renders a document to a single-line form: entries
// separated by spaces, nodes separated by ';'.
func RenderCompact(d *Document) string {
	var sb strings.Builder
	renderNodesCompact(&sb, d.Nodes)
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []Node, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, n := range nodes {
		sb.WriteString(indent)
		renderNode(sb, n, depth)
		sb.WriteByte('\n')
	}
}

func renderNode(sb *strings.Builder, n Node, depth int) {
	if n.HasTypeTag {
		sb.WriteByte('(')
		sb.WriteString(renderIdentifier(n.TypeTag))
		sb.WriteByte(')')
	}
	sb.WriteString(renderIdentifier(n.Name))
	renderEntries(sb, n)
	if n.HasChildren {
		sb.WriteString(" {")
		if len(n.Children) > 0 {
			sb.WriteByte('\n')
			renderNodes(sb, n.Children, depth+1)
			sb.WriteString(strings.Repeat("    ", depth))
		}
		sb.WriteByte('}')
	}
}

// renderEntries emits a node's arguments in source order followed by its
// properties in sorted key order, for deterministic output.
func renderEntries(sb *strings.Builder, n Node) {
	for _, v := range n.Arguments {
		sb.WriteByte(' ')
		renderValue(sb, v)
	}
	for _, key := range sortedPropertyKeys(n.Properties) {
		sb.WriteByte(' ')
		sb.WriteString(renderIdentifier(key))
		sb.WriteByte('=')
		renderValue(sb, n.Properties[key])
	}
}

func renderNodesCompact(sb *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString("; ")
		}
		renderNodeCompact(sb, n)
	}
}

func renderNodeCompact(sb *strings.Builder, n Node) {
	if n.HasTypeTag {
		sb.WriteByte('(')
		sb.WriteString(renderIdentifier(n.TypeTag))
		sb.WriteByte(')')
	}
	sb.WriteString(renderIdentifier(n.Name))
	renderEntries(sb, n)
	if n.HasChildren {
		sb.WriteString(" {")
		renderNodesCompact(sb, n.Children)
		sb.WriteString("}")
	}
}

func renderValue(sb *strings.Builder, v Value) {
	if v.TypeTag != "" {
		sb.WriteByte('(')
		sb.WriteString(renderIdentifier(v.TypeTag))
		sb.WriteByte(')')
	}
	sb.WriteString(v.String())
}

// String renders a single value in canonical form.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return renderQuotedString(v.Str)
	case KindBool:
		if v.Bool {
			return "#true"
		}
		return "#false"
	case KindNull:
		return "#null"
	case KindInt64:
		return strconv.FormatInt(v.Int64, 10)
	case KindUInt64:
		return strconv.FormatUint(v.UInt64, 10)
	case KindBigInt:
		if v.BigVal != nil {
			// A radix literal always parses back as KindBigInt, while a
			// decimal one that fits in int64 parses as KindInt64, so such
			// values are written in hex to survive a round trip.
			if v.BigVal.IsInt64() {
				s := v.BigVal.Text(16)
				if strings.HasPrefix(s, "-") {
					return "-0x" + s[1:]
				}
				return "0x" + s
			}
			return v.BigVal.String()
		}
		return "0"
	case KindFloat64:
		return formatFloat(v.Float64)
	case KindFloat32:
		return formatFloat(float64(v.Float32))
	default:
		return ""
	}
}

// formatFloat renders a float in canonical form: scientific
// notation (uppercase E, explicit exponent sign) for magnitude >= 1e10 or
// (nonzero and magnitude < 1e-5); otherwise plain decimal. The mantissa
// always contains a decimal point, with trailing zeros trimmed but at
// least one digit kept after it.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "#nan"
	case math.IsInf(f, 1):
		return "#inf"
	case math.IsInf(f, -1):
		return "#-inf"
	}

	mag := math.Abs(f)
	useScientific := mag != 0 && (mag >= 1e10 || mag < 1e-5)

	if useScientific {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		if !strings.Contains(mantissa, ".") {
			mantissa += ".0"
		}
		expNum, _ := strconv.Atoi(exp)
		sign := "+"
		if expNum < 0 {
			sign = "-"
			expNum = -expNum
		}
		return fmt.Sprintf("%sE%s%d", mantissa, sign, expNum)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// renderIdentifier emits name bare when it needs no quoting, or as a
// quoted string otherwise.
func renderIdentifier(name string) string {
	if identifierNeedsQuoting(name) {
		return renderQuotedString(name)
	}
	return name
}

func identifierNeedsQuoting(name string) bool {
	if name == "" {
		return true
	}
	runes := []rune(name)
	if scanner.IsDigit(runes[0]) {
		return true
	}
	for _, r := range runes {
		if !scanner.IsIdentifierContinue(r) {
			return true
		}
	}
	if isReservedWord(name) {
		return true
	}
	return false
}

// isReservedWord duplicates internal/parser's reserved-word check; it is
// intentionally tiny and not worth sharing across the internal/public
// package boundary.
func isReservedWord(s string) bool {
	switch s {
	case "true", "false", "null", "inf", "-inf", "nan":
		return true
	}
	return false
}

func renderQuotedString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if scanner.IsDisallowed(r) {
				sb.WriteString(fmt.Sprintf(`\u{%x}`, r))
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// sortedPropertyKeys is exposed for tests that want to assert on
// deterministic property ordering without duplicating the sort here.
func sortedPropertyKeys(props map[string]Value) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
