package scanner

import (
	"strings"

	"github.com/pkg/errors"
)

// scanPlainScalar consumes an unquoted scalar. It stops at a line break, at
// a ':' that acts as a value marker, at a comment opening after whitespace,
// and in flow context at any flow indicator. Trailing blanks are not part
// of the text.
func (s *Scanner) scanPlainScalar(t *Token) error {
	var sb strings.Builder
	sawBlank := false
	for {
		b, ok := s.cursor.Peek()
		if !ok || isBreak(b) {
			break
		}
		if b == '#' && sawBlank {
			break
		}
		if b == ':' && (s.flowLevel > 0 || isBlankOrBreakAt(s.cursor, 1)) {
			break
		}
		if s.flowLevel > 0 && (b == ',' || b == '[' || b == ']' || b == '{' || b == '}') {
			break
		}
		s.cursor.Eat(1)
		sb.WriteByte(b)
		sawBlank = isBlank(b)
	}
	t.Text = strings.TrimRight(sb.String(), " \t")
	return nil
}

// scanQuotedScalar consumes a single- or double-quoted scalar. The token
// text carries the decoded contents without the surrounding quotes: ''
// collapses to ' in single-quoted scalars, and backslash escapes are
// resolved in double-quoted ones.
func (s *Scanner) scanQuotedScalar(t *Token) error {
	start := s.cursor.Pos()
	quote, _ := s.cursor.Get()

	var sb strings.Builder
	for {
		b, ok := s.cursor.Peek()
		if !ok {
			return errors.WithStack(&UnterminatedScalarError{Pos: start})
		}
		s.cursor.Eat(1)

		if b == quote {
			if quote == '\'' {
				if next, ok := s.cursor.Peek(); ok && next == '\'' {
					s.cursor.Eat(1)
					sb.WriteByte('\'')
					continue
				}
			}
			t.Text = sb.String()
			return nil
		}
		if quote == '"' && b == '\\' {
			if err := decodeEscape(s.cursor, start, &sb); err != nil {
				return err
			}
			continue
		}
		sb.WriteByte(b)
	}
}

// decodeEscape consumes one escape sequence following the backslash and
// appends the decoded character. Unknown escapes keep the literal
// character.
func decodeEscape(c *Cursor, start Position, sb *strings.Builder) error {
	b, ok := c.Get()
	if !ok {
		return errors.WithStack(&UnterminatedScalarError{Pos: start})
	}
	switch b {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case '0':
		sb.WriteByte(0)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'u':
		var v rune
		for i := 0; i < 4; i++ {
			h, ok := c.Get()
			if !ok {
				return errors.WithStack(&UnterminatedScalarError{Pos: start})
			}
			if !isHexDigit(h) {
				return errors.WithStack(&UnrecognizedInputError{Pos: c.Pos(), Char: h})
			}
			v = v<<4 | rune(hexValue(h))
		}
		sb.WriteRune(v)
	default:
		sb.WriteByte(b)
	}
	return nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
