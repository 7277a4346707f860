// Package parser assembles document trees from the scanner's token stream.
//
// The builder is a plain token-consumption loop with no state machine of
// its own: block and flow structure arrive pre-resolved as explicit
// start/end tokens, so the parser only matches brackets and pairs. A token
// it cannot use in its current position is a malformed document and is
// surfaced as an error, never silently dropped.
package parser

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/KingKiller100/yaml/internal/scanner"
	"github.com/KingKiller100/yaml/pkg/ast"
)

// UnexpectedTokenError reports a token the builder cannot use in its
// current position.
type UnexpectedTokenError struct {
	Token *scanner.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s at line %d, column %d",
		e.Token, e.Token.Pos.Line+1, e.Token.Pos.Column+1)
}

// Parser pulls tokens from a Scanner and builds one tree per document.
type Parser struct {
	scanner *scanner.Scanner
	started bool
	docs    int
}

// New returns a Parser reading from r, with options forwarded to the
// underlying scanner.
func New(r io.Reader, opts ...scanner.Option) *Parser {
	return &Parser{scanner: scanner.New(r, opts...)}
}

// Close releases the underlying scanner.
func (p *Parser) Close() { p.scanner.Close() }

// NextDocument parses and returns the next document in the stream, or
// (nil, nil) once the stream is exhausted.
func (p *Parser) NextDocument() (*ast.Node, error) {
	if !p.started {
		t, err := p.scanner.GetNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, nil
		}
		if t.Kind != scanner.StreamStart {
			return nil, &UnexpectedTokenError{Token: t}
		}
		p.started = true
	}

	for {
		t, err := p.scanner.PeekNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, nil
		}
		switch t.Kind {
		case scanner.StreamEnd:
			p.scanner.EatNextToken()
			return nil, nil
		case scanner.DocumentStart, scanner.DocumentEnd:
			p.scanner.EatNextToken()
			continue
		}

		p.docs++
		node, err := p.parseNode()
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", p.docs)
		}
		return node, nil
	}
}

// parseNode dispatches on the next token kind.
func (p *Parser) parseNode() (*ast.Node, error) {
	t, err := p.scanner.PeekNextToken()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("unexpected end of token stream")
	}

	switch t.Kind {
	case scanner.PlainScalar, scanner.QuotedScalar:
		p.scanner.EatNextToken()
		return &ast.Node{
			Kind:   ast.ScalarNode,
			Value:  t.Text,
			Quoted: t.Kind == scanner.QuotedScalar,
		}, nil
	case scanner.BlockMappingStart, scanner.FlowMappingStart:
		return p.parseMapping()
	case scanner.BlockSequenceStart, scanner.FlowSequenceStart:
		return p.parseSequence()
	}
	return nil, &UnexpectedTokenError{Token: t}
}

// parseMapping consumes a mapping start token, then Key/Value-bracketed
// pairs until the matching end token.
func (p *Parser) parseMapping() (*ast.Node, error) {
	start, err := p.scanner.GetNextToken()
	if err != nil {
		return nil, err
	}
	flow := start.Kind == scanner.FlowMappingStart
	end := scanner.BlockEnd
	if flow {
		end = scanner.FlowMappingEnd
	}

	node := &ast.Node{Kind: ast.MappingNode}
	for {
		t, err := p.scanner.PeekNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, errors.New("mapping not closed before end of stream")
		}
		if t.Kind == end {
			p.scanner.EatNextToken()
			return node, nil
		}

		var key *ast.Node
		switch t.Kind {
		case scanner.Key:
			p.scanner.EatNextToken()
			key, err = p.parseSlot(false, scanner.Value, end, scanner.FlowEntry)
			if err != nil {
				return nil, err
			}
		case scanner.Value:
			// value with no key: the key slot is null
			key = ast.Scalar("")
		default:
			return nil, &UnexpectedTokenError{Token: t}
		}

		value := ast.Scalar("")
		t, err = p.scanner.PeekNextToken()
		if err != nil {
			return nil, err
		}
		if t != nil && t.Kind == scanner.Value {
			p.scanner.EatNextToken()
			if flow {
				value, err = p.parseSlot(false, scanner.FlowEntry, end)
			} else {
				value, err = p.parseSlot(true, scanner.Key, end)
			}
			if err != nil {
				return nil, err
			}
		}
		node.Pairs = append(node.Pairs, ast.Pair{Key: key, Value: value})

		if flow {
			t, err = p.scanner.PeekNextToken()
			if err != nil {
				return nil, err
			}
			if t == nil {
				return nil, errors.New("mapping not closed before end of stream")
			}
			if t.Kind == scanner.FlowEntry {
				p.scanner.EatNextToken()
			} else if t.Kind != end {
				return nil, &UnexpectedTokenError{Token: t}
			}
		}
	}
}

// parseSequence consumes a sequence start token, then entries until the
// matching end token.
func (p *Parser) parseSequence() (*ast.Node, error) {
	start, err := p.scanner.GetNextToken()
	if err != nil {
		return nil, err
	}
	node := &ast.Node{Kind: ast.SequenceNode}

	if start.Kind == scanner.FlowSequenceStart {
		for {
			t, err := p.scanner.PeekNextToken()
			if err != nil {
				return nil, err
			}
			if t == nil {
				return nil, errors.New("sequence not closed before end of stream")
			}
			if t.Kind == scanner.FlowSequenceEnd {
				p.scanner.EatNextToken()
				return node, nil
			}
			item, err := p.parseSlot(false, scanner.FlowEntry, scanner.FlowSequenceEnd)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, item)

			t, err = p.scanner.PeekNextToken()
			if err != nil {
				return nil, err
			}
			if t == nil {
				return nil, errors.New("sequence not closed before end of stream")
			}
			if t.Kind == scanner.FlowEntry {
				p.scanner.EatNextToken()
			} else if t.Kind != scanner.FlowSequenceEnd {
				return nil, &UnexpectedTokenError{Token: t}
			}
		}
	}

	for {
		t, err := p.scanner.PeekNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, errors.New("sequence not closed before end of stream")
		}
		if t.Kind == scanner.BlockEnd {
			p.scanner.EatNextToken()
			return node, nil
		}
		if t.Kind != scanner.BlockEntry {
			return nil, &UnexpectedTokenError{Token: t}
		}
		p.scanner.EatNextToken()

		item, err := p.parseSlot(false, scanner.BlockEntry, scanner.BlockEnd)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
}

// parseSlot parses the node occupying a key, value, or entry slot. A slot
// followed immediately by one of the stop kinds (or a stream/document
// boundary) is vacant and yields a null scalar. When indentless is set, a
// BlockEntry in the slot starts an indentless sequence: entries at the same
// column as their parent mapping key, which the scanner emits without a
// surrounding BlockSequenceStart/BlockEnd bracket.
func (p *Parser) parseSlot(indentless bool, stops ...scanner.Kind) (*ast.Node, error) {
	t, err := p.scanner.PeekNextToken()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return ast.Scalar(""), nil
	}
	if indentless && t.Kind == scanner.BlockEntry {
		return p.parseIndentlessSequence()
	}
	switch t.Kind {
	case scanner.StreamEnd, scanner.DocumentStart, scanner.DocumentEnd:
		return ast.Scalar(""), nil
	}
	for _, k := range stops {
		if t.Kind == k {
			return ast.Scalar(""), nil
		}
	}
	return p.parseNode()
}

// parseIndentlessSequence consumes BlockEntry-led items until the next
// token is no longer a BlockEntry. There is no end bracket; the sequence
// ends where its parent's next key (or end) begins.
func (p *Parser) parseIndentlessSequence() (*ast.Node, error) {
	node := &ast.Node{Kind: ast.SequenceNode}
	for {
		t, err := p.scanner.PeekNextToken()
		if err != nil {
			return nil, err
		}
		if t == nil || t.Kind != scanner.BlockEntry {
			return node, nil
		}
		p.scanner.EatNextToken()

		item, err := p.parseSlot(false, scanner.BlockEntry, scanner.BlockEnd, scanner.Key)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
}
