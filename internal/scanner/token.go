package scanner

import "fmt"

// Kind identifies one lexical unit in the token catalog.
type Kind int

const (
	StreamStart Kind = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	BlockSequenceStart
	BlockMappingStart
	BlockEnd
	FlowSequenceStart
	FlowSequenceEnd
	FlowMappingStart
	FlowMappingEnd
	FlowEntry
	BlockEntry
	Key
	Value
	PlainScalar
	QuotedScalar
)

// String returns the kind name. The mapping is spelled out per kind so that
// token formatting never relies on reflection.
func (k Kind) String() string {
	switch k {
	case StreamStart:
		return "StreamStart"
	case StreamEnd:
		return "StreamEnd"
	case DocumentStart:
		return "DocumentStart"
	case DocumentEnd:
		return "DocumentEnd"
	case BlockSequenceStart:
		return "BlockSequenceStart"
	case BlockMappingStart:
		return "BlockMappingStart"
	case BlockEnd:
		return "BlockEnd"
	case FlowSequenceStart:
		return "FlowSequenceStart"
	case FlowSequenceEnd:
		return "FlowSequenceEnd"
	case FlowMappingStart:
		return "FlowMappingStart"
	case FlowMappingEnd:
		return "FlowMappingEnd"
	case FlowEntry:
		return "FlowEntry"
	case BlockEntry:
		return "BlockEntry"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case PlainScalar:
		return "PlainScalar"
	case QuotedScalar:
		return "QuotedScalar"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit produced by the Scanner.
//
// Two facets track delivery state. Possible is cleared when later context
// invalidates the token (an unconfirmed simple key, say); such tokens are
// dropped at the queue front and never delivered. Valid is false while a
// token still awaits confirmation; the queue treats an invalid front as
// "not yet available" and keeps scanning. Every token handed out by
// GetNextToken has Possible and Valid both set.
type Token struct {
	Kind Kind
	Text string // decoded scalar text, empty for non-scalar kinds
	Pos  Position

	Possible bool
	Valid    bool
}

// String formats the token for debug output, including the scalar payload
// where one exists.
func (t *Token) String() string {
	switch t.Kind {
	case PlainScalar, QuotedScalar:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
