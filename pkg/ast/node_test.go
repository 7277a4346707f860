package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_Get(t *testing.T) {
	m := &Node{Kind: MappingNode, Pairs: []Pair{
		{Key: Scalar("a"), Value: Scalar("1")},
		{Key: Scalar("b"), Value: &Node{Kind: SequenceNode, Items: []*Node{Scalar("x")}}},
	}}

	assert.Equal(t, "1", m.Get("a").Value)
	assert.Equal(t, SequenceNode, m.Get("b").Kind)
	assert.Nil(t, m.Get("missing"))
	assert.Nil(t, Scalar("a").Get("a"), "Get on a non-mapping is nil")
}

func TestNode_Len(t *testing.T) {
	assert.Equal(t, 0, Scalar("x").Len())
	assert.Equal(t, 2, (&Node{Kind: SequenceNode, Items: []*Node{Scalar("a"), Scalar("b")}}).Len())
	assert.Equal(t, 1, (&Node{Kind: MappingNode, Pairs: []Pair{{Key: Scalar("a"), Value: Scalar("b")}}}).Len())
}

func TestNode_IsNull(t *testing.T) {
	assert.True(t, Scalar("").IsNull())
	assert.False(t, Scalar("x").IsNull())
	assert.False(t, (&Node{Kind: ScalarNode, Quoted: true}).IsNull(), "quoted empty string is not null")
	assert.False(t, (&Node{Kind: MappingNode}).IsNull())
}

func TestNode_PairsKeepDocumentOrder(t *testing.T) {
	m := &Node{Kind: MappingNode, Pairs: []Pair{
		{Key: Scalar("z"), Value: Scalar("1")},
		{Key: Scalar("a"), Value: Scalar("2")},
		{Key: Scalar("m"), Value: Scalar("3")},
	}}
	var keys []string
	for _, p := range m.Pairs {
		keys = append(keys, p.Key.Value)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestNode_StringDump(t *testing.T) {
	m := &Node{Kind: MappingNode, Pairs: []Pair{
		{Key: Scalar("a"), Value: &Node{Kind: SequenceNode, Items: []*Node{Scalar("1"), Scalar("2")}}},
	}}
	expected := `{mapping}
  {key}
    "a"
  {value}
    {sequence}
      "1"
      "2"
`
	assert.Equal(t, expected, m.String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Scalar", ScalarNode.String())
	assert.Equal(t, "Sequence", SequenceNode.String())
	assert.Equal(t, "Mapping", MappingNode.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
