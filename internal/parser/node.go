package parser

import "github.com/vippsas/kdl/internal/scanner"

// tryNode parses one node: optional type annotation, name, entries,
// optional children-block, and terminator.
// Leading line-space must already have been skipped by the caller.
func tryNode(c *scanner.Cursor) (Node, bool) {
	return scanner.Try(c, func() (Node, bool) {
		start := c.Pos
		typeTag, hasType, committed := tryTypeAnnotation(c)
		if !committed {
			return Node{}, false
		}
		if hasType {
			skipInlineWhitespace(c)
		}
		name, ok := tryIdentifier(c)
		if !ok {
			if hasType {
				c.AddError(c.SpanFrom(start), "expected node name after type annotation")
			}
			return Node{}, false
		}

		c.Tracef("node %q at offset %d", name.Value, start)
		node := Node{TypeTag: typeTag, HasTypeTag: hasType, Name: name}
		parseNodeTail(c, &node, start)
		node.Span = c.SpanFrom(start)
		return node, true
	})
}

// parseNodeTail drives the entry/children loop and consumes the node's
// terminator. It never fails the overall node (a name has already been
// committed); errors are recorded as diagnostics and recovered from so
// the rest of the document can still be scanned.
func parseNodeTail(c *scanner.Cursor, node *Node, nodeStart int) {
	for {
		skipNodeSpace(c)

		if atNodeTerminator(c) {
			break
		}

		if trySlashdash(c) {
			if c.PeekByte(0) == '{' {
				parseAndDiscardChildren(c)
			} else if e, ok := tryEntry(c); ok {
				_ = e // slashdashed: parsed then discarded
			} else if looksLikeReservedPropertyKey(c) {
				reportReservedPropertyKey(c)
			} else {
				c.AddError(c.SpanFrom(c.Pos), "expected entry or children block after slashdash")
				recoverToEntryBoundary(c)
			}
			continue
		}

		if c.PeekByte(0) == '{' {
			if node.HasChildren {
				c.AddErrorf(c.SpanFrom(c.Pos), "node may have at most one children block", "", "")
				parseAndDiscardChildren(c)
				continue
			}
			children, ok := parseChildrenBlock(c)
			if !ok {
				return
			}
			node.HasChildren = true
			node.Children = children
			continue
		}

		if e, ok := tryEntry(c); ok {
			node.Entries = append(node.Entries, e)
			continue
		}

		if looksLikeReservedPropertyKey(c) {
			reportReservedPropertyKey(c)
			continue
		}

		if word, ok := looksLikeReservedBareValue(c); ok {
			reportReservedBareValue(c, word)
			continue
		}

		if atNodeTerminator(c) {
			break
		}
		c.AddErrorf(c.SpanFrom(c.Pos), "unexpected character in node", "expected an entry, a children block, or a terminator", "")
		recoverToEntryBoundary(c)
		if atNodeTerminator(c) || c.AtEnd() {
			break
		}
	}
	consumeNodeTerminator(c)
}

// reportReservedPropertyKey emits the dedicated diagnostic for a reserved
// bare word used as a property key, then recovers to the next entry
// boundary.
func reportReservedPropertyKey(c *scanner.Cursor) {
	start := c.Pos
	recoverToEntryBoundary(c)
	c.AddErrorf(c.SpanFrom(start), "reserved keywords cannot be used as bare property keys",
		"wrap this key in quotes to use it literally", "")
}

// reportReservedBareValue emits the dedicated diagnostic for a reserved
// bare word standing in for a value (e.g. "null" instead of "#null"),
// then recovers to the next entry boundary.
func reportReservedBareValue(c *scanner.Cursor, word string) {
	start := c.Pos
	recoverToEntryBoundary(c)
	c.AddErrorf(c.SpanFrom(start), "reserved keyword '"+word+"' cannot be used as bare identifier",
		"write '#"+word+"' instead", "")
}

// atNodeTerminator reports whether the cursor sits at a position that
// legally ends a node: EOF, a newline, ';', or the '}' closing an
// enclosing children-block. The '}' itself is not consumed here.
func atNodeTerminator(c *scanner.Cursor) bool {
	if c.AtEnd() || atNewline(c) {
		return true
	}
	switch c.PeekByte(0) {
	case ';', '}':
		return true
	}
	return false
}

// consumeNodeTerminator consumes the newline or ';' ending a node, if
// present (EOF and '}' are left for the caller to observe).
func consumeNodeTerminator(c *scanner.Cursor) {
	if c.PeekByte(0) == ';' {
		c.Advance(1)
		return
	}
	skipNewline(c)
}

// parseAndDiscardChildren parses a children-block purely to advance the
// cursor past it (used for slashdashed or duplicate children-blocks); its
// result is never attached to a node.
func parseAndDiscardChildren(c *scanner.Cursor) {
	parseChildrenBlock(c)
}

// parseChildrenBlock parses `{` nested-document `}`, including
// post-children validation of the character immediately following `}`.
func parseChildrenBlock(c *scanner.Cursor) ([]Node, bool) {
	start := c.Pos
	c.Advance(1) // '{'
	nodes := parseDocumentNodes(c, true)
	if c.PeekByte(0) != '}' {
		c.AddErrorf(c.SpanFrom(start), "expected '}' closing children block", "", "")
		return nodes, false
	}
	c.Advance(1)
	validatePostChildren(c)
	return nodes, true
}

// validatePostChildren enforces that whatever immediately follows a
// children-block's closing '}' is whitespace, a newline, ';', '}',
// slashdash, or EOF.
func validatePostChildren(c *scanner.Cursor) {
	if c.AtEnd() || atNewline(c) {
		return
	}
	r, w := c.PeekRune()
	if w != 0 && scanner.IsUnicodeWhitespace(r) {
		return
	}
	switch c.PeekByte(0) {
	case ';', '}':
		return
	}
	if c.HasPrefix("/-") || c.HasPrefix("//") || c.HasPrefix("/*") {
		return
	}
	start := c.Pos
	c.AddErrorf(c.SpanFrom(start), "missing terminator after children block", "", "")
}
