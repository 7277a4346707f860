package scanner

// tokenQueue is the FIFO of produced tokens awaiting delivery.
type tokenQueue struct {
	items []*Token
}

func (q *tokenQueue) push(t *Token) { q.items = append(q.items, t) }

func (q *tokenQueue) front() *Token {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *tokenQueue) pop() *Token {
	if len(q.items) == 0 {
		return nil
	}
	t := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return t
}

func (q *tokenQueue) len() int { return len(q.items) }

func (q *tokenQueue) reset() { q.items = nil }
