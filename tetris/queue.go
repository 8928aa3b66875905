package tetris

// Randomizer is the source of piece draws. *rand.Rand from math/rand/v2
// satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// Queue is the preview of upcoming kinds. Every draw is independent and
// uniform over all kinds.
type Queue struct {
	kinds []Kind
	rng   Randomizer
}

// NewQueue fills a queue of the given length from rng.
func NewQueue(length int, rng Randomizer) Queue {
	q := Queue{kinds: make([]Kind, 0, length), rng: rng}
	for range length {
		q.kinds = append(q.kinds, q.draw())
	}
	return q
}

func (q *Queue) draw() Kind {
	return Kind(q.rng.IntN(KindCount))
}

// Pop removes the front kind and appends a fresh draw.
func (q *Queue) Pop() Kind {
	front := q.kinds[0]
	copy(q.kinds, q.kinds[1:])
	q.kinds[len(q.kinds)-1] = q.draw()
	return front
}

// Peek returns a copy of the upcoming kinds, front first.
func (q *Queue) Peek() []Kind {
	out := make([]Kind, len(q.kinds))
	copy(out, q.kinds)
	return out
}

// Len returns the preview length.
func (q *Queue) Len() int { return len(q.kinds) }
