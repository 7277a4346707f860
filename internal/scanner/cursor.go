package scanner

import (
	"bufio"
	"io"
	"strings"
)

// Position is a location in the input stream. Offset counts bytes from the
// start of the input; Column resets to 0 after every line break.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Cursor wraps the character source and keeps the current position up to
// date on every consuming read. Reading past the end of input reports
// ok=false; it never fails.
type Cursor struct {
	r   *bufio.Reader
	pos Position
}

// NewCursor returns a Cursor reading from r.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: bufio.NewReader(r)}
}

// Pos returns the current position.
func (c *Cursor) Pos() Position { return c.pos }

// Peek looks at the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) { return c.PeekAt(0) }

// PeekAt looks i bytes beyond the next one without consuming anything.
func (c *Cursor) PeekAt(i int) (byte, bool) {
	buf, _ := c.r.Peek(i + 1)
	if len(buf) <= i {
		return 0, false
	}
	return buf[i], true
}

// Get consumes one byte and updates the position.
func (c *Cursor) Get() (byte, bool) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, false
	}
	c.pos.Offset++
	c.pos.Column++
	if b == '\n' {
		c.pos.Column = 0
		c.pos.Line++
	}
	return b, true
}

// GetString consumes up to n bytes and returns them as text.
func (c *Cursor) GetString(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		b, ok := c.Get()
		if !ok {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// Eat consumes n bytes.
func (c *Cursor) Eat(n int) {
	for i := 0; i < n; i++ {
		if _, ok := c.Get(); !ok {
			return
		}
	}
}

// SkipLine consumes exactly one line break, resetting the column. A \r\n
// pair counts as a single break.
func (c *Cursor) SkipLine() {
	b, ok := c.Get()
	if !ok || b == '\n' {
		return
	}
	if b == '\r' {
		if next, ok := c.Peek(); ok && next == '\n' {
			c.Get()
			return
		}
		c.pos.Column = 0
		c.pos.Line++
	}
}
