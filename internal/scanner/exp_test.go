package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cursorAt(input string, skip int) *Cursor {
	c := NewCursor(strings.NewReader(input))
	c.Eat(skip)
	return c
}

func TestIsWhitespaceEatable(t *testing.T) {
	tests := []struct {
		name       string
		ch         byte
		flowLevel  int
		keyAllowed bool
		want       bool
	}{
		{"space in block", ' ', 0, true, true},
		{"space in flow", ' ', 1, false, true},
		{"tab in flow", '\t', 1, true, true},
		{"tab in block after content", '\t', 0, false, true},
		{"tab where a key could start", '\t', 0, true, false},
		{"letter", 'a', 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWhitespaceEatable(tt.ch, tt.flowLevel, tt.keyAllowed))
		})
	}
}

func TestDocumentIndicators(t *testing.T) {
	assert.True(t, isDocumentStart(cursorAt("---\n", 0)))
	assert.True(t, isDocumentStart(cursorAt("--- ", 0)))
	assert.True(t, isDocumentStart(cursorAt("---", 0)))
	assert.False(t, isDocumentStart(cursorAt("---x", 0)), "marker must end at a boundary")
	assert.False(t, isDocumentStart(cursorAt("--\n", 0)))
	assert.True(t, isDocumentEnd(cursorAt("...\n", 0)))
	assert.False(t, isDocumentEnd(cursorAt("..x\n", 0)))

	// only reserved in the first column
	c := cursorAt(" ---\n", 1)
	assert.False(t, isDocumentStart(c))
}

func TestIsBlockEntry(t *testing.T) {
	assert.True(t, isBlockEntry(cursorAt("- a", 0)))
	assert.True(t, isBlockEntry(cursorAt("-\n", 0)))
	assert.True(t, isBlockEntry(cursorAt("-", 0)))
	assert.False(t, isBlockEntry(cursorAt("-1", 0)), "glued content is a scalar")
	assert.False(t, isBlockEntry(cursorAt("a", 0)))
}

func TestIsValue(t *testing.T) {
	assert.True(t, isValue(cursorAt(": x", 0), 0))
	assert.True(t, isValue(cursorAt(":", 0), 0))
	assert.False(t, isValue(cursorAt(":port", 0), 0), "glued ':' is scalar content in block context")
	assert.True(t, isValue(cursorAt(":port", 0), 1), "flow context accepts a bare ':'")
	assert.False(t, isValue(cursorAt("x:", 0), 0))
}

func TestIsKey(t *testing.T) {
	assert.True(t, isKey(cursorAt("? a", 0), 0))
	assert.False(t, isKey(cursorAt("?a", 0), 0))
	assert.True(t, isKey(cursorAt("?a", 0), 1))
	assert.False(t, isKey(cursorAt("a", 0), 0))
}

func TestIsPlainScalarStart(t *testing.T) {
	tests := []struct {
		input     string
		flowLevel int
		want      bool
	}{
		{"abc", 0, true},
		{"123", 0, true},
		{"-17", 0, true},
		{":port", 0, true},
		{"?x", 0, true},
		{"- a", 0, false},
		{": a", 0, false},
		{"# comment", 0, false},
		{"[", 0, false},
		{"{", 0, false},
		{"\"q\"", 0, false},
		{"'q'", 0, false},
		{"&anchor", 0, false},
		{"*alias", 0, false},
		{"!tag", 0, false},
		{"|", 0, false},
		{">", 0, false},
		{"%directive", 0, false},
		{"@at", 0, false},
		{"`tick", 0, false},
		{" x", 0, false},
		{"\n", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, isPlainScalarStart(cursorAt(tt.input, 0), tt.flowLevel))
		})
	}
}
