package scanner

// maxSimpleKeyLength bounds how many bytes a pending simple key may span
// before its ':' arrives.
const maxSimpleKeyLength = 1024

// pendingKey records a position where a just-scanned token may still turn
// out to be a mapping key. The key token (and, in block context, a
// speculatively opened BlockMappingStart) already sit in the queue with
// Valid=false; confirmation or invalidation resolves them in place.
type pendingKey struct {
	pos      Position
	key      *Token
	mapStart *Token // nil in flow context, or when the mapping was already open
}

// saveSimpleKey registers the upcoming token as a simple-key candidate at
// the current flow level. In block context this may speculatively open a
// mapping at the current column. At most one candidate exists per level.
func (s *Scanner) saveSimpleKey() {
	if !s.simpleKeyAllowed {
		return
	}
	s.removeSimpleKey()

	k := &pendingKey{pos: s.cursor.Pos()}
	if t := s.pushIndentTo(k.pos.Column, false); t != nil {
		t.Valid = false
		k.mapStart = t
	}
	k.key = s.newToken(Key)
	k.key.Valid = false
	s.queue.push(k.key)
	s.keys[s.flowLevel] = k
}

// removeSimpleKey drops the pending candidate at the current flow level.
func (s *Scanner) removeSimpleKey() { s.removeSimpleKeyAt(s.flowLevel) }

// removeSimpleKeyAt marks the queued candidate tokens at the given level
// impossible and retracts a speculatively pushed indent column.
func (s *Scanner) removeSimpleKeyAt(flowLevel int) {
	k := s.keys[flowLevel]
	if k == nil {
		return
	}
	k.key.Possible = false
	if k.mapStart != nil {
		k.mapStart.Possible = false
		s.retractIndent(k.pos.Column)
	}
	s.keys[flowLevel] = nil
}

// confirmSimpleKey resolves the pending candidate at the current level into
// a real key, reporting whether one was confirmed.
func (s *Scanner) confirmSimpleKey() bool {
	k := s.keys[s.flowLevel]
	if k == nil {
		return false
	}
	k.key.Valid = true
	if k.mapStart != nil {
		k.mapStart.Valid = true
	}
	s.keys[s.flowLevel] = nil
	return true
}

// checkSimpleKey invalidates the pending candidate once it can no longer be
// confirmed: the cursor left the candidate's line, or moved past the
// allowed span. Never an error; a malformed simple key simply stops being
// a key.
func (s *Scanner) checkSimpleKey() {
	k := s.keys[s.flowLevel]
	if k == nil {
		return
	}
	pos := s.cursor.Pos()
	if pos.Line != k.pos.Line || pos.Offset-k.pos.Offset > maxSimpleKeyLength {
		s.removeSimpleKey()
	}
}
