package scanner

import "github.com/go-kit/log/level"

// indentSentinel sits at the bottom of the indentation stack so that the
// outermost content, at column 0, is always more indented than the base.
// The stack is never popped past it.
const indentSentinel = -1

// pushIndentTo opens a block collection at the given column and enqueues
// its start token. It returns the enqueued token, or nil when nothing was
// pushed: flow context, or a column that does not exceed the current top.
func (s *Scanner) pushIndentTo(column int, sequence bool) *Token {
	if s.flowLevel > 0 {
		return nil
	}
	if column <= s.indents[len(s.indents)-1] {
		return nil
	}
	s.indents = append(s.indents, column)

	kind := BlockMappingStart
	if sequence {
		kind = BlockSequenceStart
	}
	t := s.newToken(kind)
	s.queue.push(t)
	level.Debug(s.logger).Log("msg", "indent pushed", "column", column, "kind", kind)
	return t
}

// popIndentTo closes every block collection opened deeper than column,
// enqueuing one BlockEnd per pop. This is what turns a dedent into explicit
// end markers the tree builder can consume without tracking columns itself.
// No-op in flow context.
func (s *Scanner) popIndentTo(column int) {
	if s.flowLevel > 0 {
		return
	}
	for s.indents[len(s.indents)-1] > column {
		popped := s.indents[len(s.indents)-1]
		s.indents = s.indents[:len(s.indents)-1]
		s.queue.push(s.newToken(BlockEnd))
		level.Debug(s.logger).Log("msg", "indent popped", "column", popped)
	}
}

// retractIndent undoes a speculative push whose mapping never materialized.
// No BlockEnd is enqueued: the matching start token was cancelled.
func (s *Scanner) retractIndent(column int) {
	if top := len(s.indents) - 1; s.indents[top] == column {
		s.indents = s.indents[:top]
	}
}
