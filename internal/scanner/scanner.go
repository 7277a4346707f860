// Package scanner turns a character stream into the token sequence a tree
// builder consumes.
//
// The grammar is context-sensitive in three dimensions at once: the current
// column drives block structure, the flow nesting depth switches the
// recognition rules, and a scalar's role as a mapping key is only known
// after further lookahead. The last is resolved with the Possible/Valid
// facets on Token: key candidates enter the delivery queue invalid and are
// confirmed or cancelled in place as more input is seen.
package scanner

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Scanner produces tokens on demand via GetNextToken / PeekNextToken.
//
// A Scanner owns every token it constructs until the token crosses the
// GetNextToken boundary. Tokens under construction are held in a limbo set
// so a failure mid-scan leaves them reachable; Close releases whatever is
// still queued or in limbo. Not safe for concurrent use.
type Scanner struct {
	cursor *Cursor
	queue  tokenQueue
	limbo  map[*Token]struct{}

	indents   []int
	flowLevel int
	keys      []*pendingKey // one pending simple-key slot per flow level

	simpleKeyAllowed bool
	startedStream    bool
	endedStream      bool

	logger log.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger installs a trace logger. Token production and indentation
// moves are logged at debug level.
func WithLogger(l log.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// New returns a Scanner reading from r.
func New(r io.Reader, opts ...Option) *Scanner {
	s := &Scanner{
		cursor:  NewCursor(r),
		limbo:   make(map[*Token]struct{}),
		indents: []int{indentSentinel},
		keys:    []*pendingKey{nil},
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases every token still owned by the scanner, whether queued for
// delivery or stranded in limbo by a failed scan.
func (s *Scanner) Close() {
	s.queue.reset()
	for t := range s.limbo {
		delete(s.limbo, t)
	}
}

func (s *Scanner) newToken(kind Kind) *Token {
	return &Token{Kind: kind, Pos: s.cursor.Pos(), Possible: true, Valid: true}
}

// scanAndEnqueue holds the token in limbo while its payload is scanned and
// commits it to the queue only on success. A token whose scan fails stays
// in limbo until Close.
func (s *Scanner) scanAndEnqueue(t *Token, scan func(*Token) error) error {
	s.limbo[t] = struct{}{}
	if scan != nil {
		if err := scan(t); err != nil {
			return err
		}
	}
	s.queue.push(t)
	delete(s.limbo, t)
	level.Debug(s.logger).Log("msg", "token", "kind", t.Kind,
		"line", t.Pos.Line, "column", t.Pos.Column)
	return nil
}

// PeekNextToken returns the next deliverable token without consuming it,
// scanning more input as needed. Queue-front tokens that were invalidated
// are dropped here; tokens still awaiting confirmation trigger further
// scanning. It returns (nil, nil) once the stream has ended and the queue
// is drained.
func (s *Scanner) PeekNextToken() (*Token, error) {
	for {
		for t := s.queue.front(); t != nil; t = s.queue.front() {
			if !t.Possible {
				s.queue.pop()
				continue
			}
			if !t.Valid {
				break
			}
			return t, nil
		}
		if s.endedStream {
			return nil, nil
		}
		if err := s.scanNextToken(); err != nil {
			return nil, err
		}
	}
}

// GetNextToken consumes and returns ownership of the next valid token, or
// (nil, nil) when the stream is exhausted. Exhaustion is terminal: further
// calls keep returning (nil, nil).
func (s *Scanner) GetNextToken() (*Token, error) {
	t, err := s.PeekNextToken()
	if err != nil || t == nil {
		return nil, err
	}
	s.queue.pop()
	return t, nil
}

// PopNextToken discards the token last obtained via PeekNextToken.
func (s *Scanner) PopNextToken() {
	s.queue.pop()
}

// EatNextToken is an alias for PopNextToken.
func (s *Scanner) EatNextToken() { s.PopNextToken() }

// scanNextToken runs the tokenizing step once, pushing zero or more tokens
// onto the queue. Classifier order matters: several token classes are
// prefixes of what a plain scalar scan would otherwise swallow.
func (s *Scanner) scanNextToken() error {
	if s.endedStream {
		return nil
	}
	if !s.startedStream {
		return s.fetchStreamStart()
	}

	s.scanToNextToken()
	s.checkSimpleKey()
	s.popIndentTo(s.cursor.Pos().Column)

	b, ok := s.cursor.Peek()
	if !ok {
		return s.fetchStreamEnd()
	}

	if isDocumentStart(s.cursor) {
		return s.fetchDocumentIndicator(DocumentStart)
	}
	if isDocumentEnd(s.cursor) {
		return s.fetchDocumentIndicator(DocumentEnd)
	}

	switch b {
	case '[':
		return s.fetchFlowCollectionStart(FlowSequenceStart)
	case '{':
		return s.fetchFlowCollectionStart(FlowMappingStart)
	case ']':
		return s.fetchFlowCollectionEnd(FlowSequenceEnd)
	case '}':
		return s.fetchFlowCollectionEnd(FlowMappingEnd)
	case ',':
		return s.fetchFlowEntry()
	}

	if isBlockEntry(s.cursor) {
		return s.fetchBlockEntry()
	}
	if isKey(s.cursor, s.flowLevel) {
		return s.fetchKey()
	}
	if isValue(s.cursor, s.flowLevel) {
		return s.fetchValue()
	}

	if b == '\'' || b == '"' {
		return s.fetchQuotedScalar()
	}
	if isPlainScalarStart(s.cursor, s.flowLevel) {
		return s.fetchPlainScalar()
	}

	return errors.WithStack(&UnrecognizedInputError{Pos: s.cursor.Pos(), Char: b})
}

// scanToNextToken advances past eatable whitespace, comments, and line
// breaks, leaving the cursor at the next token-starting character.
func (s *Scanner) scanToNextToken() {
	for {
		for {
			b, ok := s.cursor.Peek()
			if !ok || !isWhitespaceEatable(b, s.flowLevel, s.simpleKeyAllowed) {
				break
			}
			s.cursor.Eat(1)
		}

		if b, ok := s.cursor.Peek(); ok && b == '#' {
			for {
				b, ok := s.cursor.Peek()
				if !ok || isBreak(b) {
					break
				}
				s.cursor.Eat(1)
			}
		}

		b, ok := s.cursor.Peek()
		if !ok || !isBreak(b) {
			return
		}
		s.cursor.SkipLine()

		// a simple key cannot span the break
		s.checkSimpleKey()
		if s.flowLevel == 0 {
			s.simpleKeyAllowed = true
		}
	}
}

func (s *Scanner) fetchStreamStart() error {
	s.startedStream = true
	s.simpleKeyAllowed = true
	return s.scanAndEnqueue(s.newToken(StreamStart), nil)
}

func (s *Scanner) fetchStreamEnd() error {
	// nothing pending can be confirmed anymore, at any level
	for lvl := range s.keys {
		s.removeSimpleKeyAt(lvl)
	}
	s.popIndentTo(indentSentinel)
	s.simpleKeyAllowed = false
	s.endedStream = true
	return s.scanAndEnqueue(s.newToken(StreamEnd), nil)
}

func (s *Scanner) fetchDocumentIndicator(kind Kind) error {
	s.removeSimpleKey()
	s.popIndentTo(indentSentinel)
	s.simpleKeyAllowed = false
	t := s.newToken(kind)
	s.cursor.Eat(3)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchFlowCollectionStart(kind Kind) error {
	// the collection itself may turn out to be a key: {a: b}: v
	s.saveSimpleKey()
	s.flowLevel++
	s.keys = append(s.keys, nil)
	s.simpleKeyAllowed = true
	t := s.newToken(kind)
	s.cursor.Eat(1)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchFlowCollectionEnd(kind Kind) error {
	s.removeSimpleKey()
	if s.flowLevel > 0 {
		s.flowLevel--
		s.keys = s.keys[:len(s.keys)-1]
	}
	s.simpleKeyAllowed = false
	t := s.newToken(kind)
	s.cursor.Eat(1)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchFlowEntry() error {
	s.removeSimpleKey()
	s.simpleKeyAllowed = true
	t := s.newToken(FlowEntry)
	s.cursor.Eat(1)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchBlockEntry() error {
	s.removeSimpleKey()
	s.pushIndentTo(s.cursor.Pos().Column, true)
	s.simpleKeyAllowed = true
	t := s.newToken(BlockEntry)
	s.cursor.Eat(1)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchKey() error {
	s.removeSimpleKey()
	if s.flowLevel == 0 {
		s.pushIndentTo(s.cursor.Pos().Column, false)
	}
	s.simpleKeyAllowed = s.flowLevel == 0
	t := s.newToken(Key)
	s.cursor.Eat(1)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchValue() error {
	s.checkSimpleKey()
	if s.confirmSimpleKey() {
		s.simpleKeyAllowed = false
	} else {
		// a ':' with no pending key opens (or continues) a mapping here
		if s.flowLevel == 0 {
			s.pushIndentTo(s.cursor.Pos().Column, false)
		}
		s.simpleKeyAllowed = s.flowLevel == 0
	}
	t := s.newToken(Value)
	s.cursor.Eat(1)
	return s.scanAndEnqueue(t, nil)
}

func (s *Scanner) fetchPlainScalar() error {
	s.saveSimpleKey()
	s.simpleKeyAllowed = false
	return s.scanAndEnqueue(s.newToken(PlainScalar), s.scanPlainScalar)
}

func (s *Scanner) fetchQuotedScalar() error {
	s.saveSimpleKey()
	s.simpleKeyAllowed = false
	return s.scanAndEnqueue(s.newToken(QuotedScalar), s.scanQuotedScalar)
}
