package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "StreamStart", StreamStart.String())
	assert.Equal(t, "BlockMappingStart", BlockMappingStart.String())
	assert.Equal(t, "QuotedScalar", QuotedScalar.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "Key", (&Token{Kind: Key}).String())
	assert.Equal(t, `PlainScalar("abc")`, (&Token{Kind: PlainScalar, Text: "abc"}).String())
	assert.Equal(t, `QuotedScalar("a b")`, (&Token{Kind: QuotedScalar, Text: "a b"}).String())
}

func TestErrors_Messages(t *testing.T) {
	unrec := &UnrecognizedInputError{Pos: Position{Line: 2, Column: 4}, Char: '@'}
	assert.Equal(t, `unrecognized input '@' at line 3, column 5`, unrec.Error())

	unterm := &UnterminatedScalarError{Pos: Position{Line: 0, Column: 7}}
	assert.Equal(t, "unterminated quoted scalar starting at line 1, column 8", unterm.Error())
}
