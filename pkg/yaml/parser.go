// Package yaml parses an indentation-sensitive, YAML-like data language
// into document trees.
//
// The package covers block and flow mappings and sequences, plain and
// quoted scalars, comments, and multi-document streams. Anchors, aliases,
// tags, and literal/folded block scalars are not implemented; input using
// them fails with an unrecognized-input error.
//
// # Thread safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines: each call builds its own scanner and parser with no shared
// mutable state.
//
// # Parsing APIs
//
//   - Parse(string) — parses a single document from a string
//   - ParseReader(io.Reader) — the same, from any io.Reader
//   - ParseMultiDoc / ParseMultiDocReader — parses a stream of documents
//     separated by --- markers
//   - Validate(string) — checks syntax without keeping the tree
//
// Example:
//
//	node, err := yaml.Parse("name: Alice\nage: 30\n")
//	if err != nil {
//	    // handle error
//	}
//	name := node.Get("name").Value // "Alice"
package yaml

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/KingKiller100/yaml/internal/parser"
	"github.com/KingKiller100/yaml/internal/scanner"
	"github.com/KingKiller100/yaml/pkg/ast"
)

// Parse parses a single document from a string.
//
// Returns the document tree: a mapping, sequence, or scalar node. An empty
// input yields an empty mapping node. Input containing a second document is
// an error; use ParseMultiDoc for document streams.
func Parse(input string) (*ast.Node, error) {
	return ParseReader(strings.NewReader(input))
}

// ParseReader parses a single document from an io.Reader. The reader is
// consumed incrementally; memory use is bounded by the document's tree, not
// the input size.
func ParseReader(r io.Reader) (*ast.Node, error) {
	p := parser.New(r)
	defer p.Close()

	doc, err := p.NextDocument()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &ast.Node{Kind: ast.MappingNode}, nil
	}

	extra, err := p.NextDocument()
	if err != nil {
		return nil, err
	}
	if extra != nil {
		return nil, errors.New("unexpected content after document")
	}
	return doc, nil
}

// ParseMultiDoc parses a stream of documents separated by --- markers and
// optionally terminated by ... markers, returning one tree per document.
func ParseMultiDoc(input string) ([]*ast.Node, error) {
	return ParseMultiDocReader(strings.NewReader(input))
}

// ParseMultiDocReader is ParseMultiDoc over an io.Reader.
func ParseMultiDocReader(r io.Reader) ([]*ast.Node, error) {
	p := parser.New(r)
	defer p.Close()

	var docs []*ast.Node
	for {
		doc, err := p.NextDocument()
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return docs, nil
		}
		docs = append(docs, doc)
	}
}

// Validate checks whether input is syntactically valid, discarding the
// tree. Returns nil for valid input, or an error describing the problem.
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// DebugTokens scans input and logs every delivered token to logger, one
// log line per token with its kind, payload, and position. Intended for
// debugging scanner behavior on a given document.
func DebugTokens(input string, logger log.Logger) error {
	s := scanner.New(strings.NewReader(input))
	defer s.Close()

	for {
		t, err := s.GetNextToken()
		if err != nil {
			return err
		}
		if t == nil {
			return nil
		}
		if err := logger.Log("token", t.String(), "line", t.Pos.Line, "column", t.Pos.Column); err != nil {
			return err
		}
	}
}
