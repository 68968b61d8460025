package input

import "grid-games/game/types"

// DirectionQueue buffers movement intents between ticks. An intent that
// reverses the current tail direction is dropped, so the snake can never turn
// back into itself in a single step.
type DirectionQueue struct {
	pending []types.Direction
	flushed types.Direction
}

// NewDirectionQueue returns an empty queue whose applied direction is RIGHT.
func NewDirectionQueue() *DirectionQueue {
	return &DirectionQueue{flushed: types.RIGHT}
}

// Enqueue appends d unless it is the opposite of Last or not a movable
// direction.
func (q *DirectionQueue) Enqueue(d types.Direction) {
	if d == types.NONE || d == q.Last().Opposite() {
		return
	}
	q.pending = append(q.pending, d)
}

func (q *DirectionQueue) Up()    { q.Enqueue(types.UP) }
func (q *DirectionQueue) Down()  { q.Enqueue(types.DOWN) }
func (q *DirectionQueue) Left()  { q.Enqueue(types.LEFT) }
func (q *DirectionQueue) Right() { q.Enqueue(types.RIGHT) }

// Next pops the oldest pending direction and records it as applied. With
// nothing pending it returns the last applied direction.
func (q *DirectionQueue) Next() types.Direction {
	if len(q.pending) > 0 {
		q.flushed = q.pending[0]
		q.pending = q.pending[1:]
	}
	return q.flushed
}

// Last is the direction the next enqueue is checked against: the newest
// pending one, or the applied one when nothing is pending.
func (q *DirectionQueue) Last() types.Direction {
	if len(q.pending) > 0 {
		return q.pending[len(q.pending)-1]
	}
	return q.flushed
}

// Flushed returns the last applied direction without consuming anything.
func (q *DirectionQueue) Flushed() types.Direction {
	return q.flushed
}

func (q *DirectionQueue) Len() int {
	return len(q.pending)
}

// Reset drops pending intents and sets the applied direction.
func (q *DirectionQueue) Reset(d types.Direction) {
	q.pending = nil
	q.flushed = d
}
