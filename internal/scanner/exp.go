package scanner

// Context classifiers: pure predicates over the upcoming input. Each one
// consults only the cursor contents, the current column, and the flow
// nesting depth. Several markers share a first character, so callers must
// test them in the priority order of scanNextToken.

func isBreak(b byte) bool { return b == '\n' || b == '\r' }
func isBlank(b byte) bool { return b == ' ' || b == '\t' }

// isBlankOrBreakAt reports whether the byte i positions ahead is a blank, a
// break, or end of input.
func isBlankOrBreakAt(c *Cursor, i int) bool {
	b, ok := c.PeekAt(i)
	return !ok || isBlank(b) || isBreak(b)
}

// isWhitespaceEatable reports whether ch may be consumed as insignificant
// whitespace. A space always is. A tab only counts in flow context or when
// a simple key is not currently allowed, so a tab can never silently act as
// block indentation.
func isWhitespaceEatable(ch byte, flowLevel int, simpleKeyAllowed bool) bool {
	if ch == ' ' {
		return true
	}
	return ch == '\t' && (flowLevel > 0 || !simpleKeyAllowed)
}

func isDocumentIndicator(c *Cursor, marker string) bool {
	// the marker is only reserved at the start of a line
	if c.Pos().Column != 0 {
		return false
	}
	for i := 0; i < len(marker); i++ {
		b, ok := c.PeekAt(i)
		if !ok || b != marker[i] {
			return false
		}
	}
	return isBlankOrBreakAt(c, len(marker))
}

func isDocumentStart(c *Cursor) bool { return isDocumentIndicator(c, "---") }
func isDocumentEnd(c *Cursor) bool   { return isDocumentIndicator(c, "...") }

// isBlockEntry matches a sequence entry dash followed by a boundary.
func isBlockEntry(c *Cursor) bool {
	b, ok := c.Peek()
	return ok && b == '-' && isBlankOrBreakAt(c, 1)
}

// isKey matches the explicit key marker. A bare '?' suffices in flow
// context; in block context it must sit before a blank or break.
func isKey(c *Cursor, flowLevel int) bool {
	b, ok := c.Peek()
	if !ok || b != '?' {
		return false
	}
	if flowLevel > 0 {
		return true
	}
	return isBlankOrBreakAt(c, 1)
}

// isValue matches the value marker. In block context the ':' must be
// followed by a blank, break, or end of input; in flow context it may sit
// directly against the value.
func isValue(c *Cursor, flowLevel int) bool {
	b, ok := c.Peek()
	if !ok || b != ':' {
		return false
	}
	if flowLevel > 0 {
		return true
	}
	return isBlankOrBreakAt(c, 1)
}

// isPlainScalarStart reports whether the next character may open an
// unquoted scalar. Indicator characters are excluded, except that '-', '?'
// and ':' glued to more content start a scalar (-17, :port).
func isPlainScalarStart(c *Cursor, flowLevel int) bool {
	b, ok := c.Peek()
	if !ok || isBlank(b) || isBreak(b) {
		return false
	}
	switch b {
	case ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	case '-', '?', ':':
		return !isBlankOrBreakAt(c, 1)
	}
	return true
}
