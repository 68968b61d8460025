package entity

import (
	"grid-games/game/input"
	"grid-games/game/types"
	"grid-games/ui"
)

// StartHead and StartBody are the opening layout, body listed head to tail.
var (
	StartHead = types.Point{X: 4, Y: 0}
	StartBody = []types.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
)

type Snake struct {
	Head  *Head
	Body  []*Cell
	queue *input.DirectionQueue
}

func NewSnake(r *ui.Renderer, queue *input.DirectionQueue) *Snake {
	return NewSnakeAt(r, queue, StartHead, StartBody)
}

// NewSnakeAt builds a snake with an explicit layout, body head to tail.
func NewSnakeAt(r *ui.Renderer, queue *input.DirectionQueue, head types.Point, body []types.Point) *Snake {
	s := &Snake{
		Head:  NewHead(r, head),
		Body:  make([]*Cell, 0, len(body)),
		queue: queue,
	}
	for _, p := range body {
		s.Body = append(s.Body, NewCell(r, p))
	}
	return s
}

// Draw paints the body, then the head on top.
func (s *Snake) Draw() {
	for _, part := range s.Body {
		part.Draw()
	}
	s.Head.Draw()
}

// Eat grows the snake by one segment at the food's position. The tail is not
// removed.
func (s *Snake) Eat(f *Food) {
	s.Body = append([]*Cell{f.ToCell()}, s.Body...)
}

// Move drops and clears the tail, pushes the head's current position onto
// the front of the body, then steps the head by the next queued direction.
func (s *Snake) Move() {
	if n := len(s.Body); n > 0 {
		tail := s.Body[n-1]
		s.Body = s.Body[:n-1]
		tail.Clear()
		s.Body = append([]*Cell{s.Head.ToCell()}, s.Body...)
	} else {
		// A bare head leaves nothing behind.
		s.Head.Clear()
	}
	s.Head.Step(s.queue.Next())
}

func (s *Snake) HeadPosition() types.Point {
	return s.Head.Pos
}

// BodyPositions returns the body cells head to tail.
func (s *Snake) BodyPositions() []types.Point {
	out := make([]types.Point, len(s.Body))
	for i, c := range s.Body {
		out[i] = c.Pos
	}
	return out
}

// Positions returns the head followed by the body.
func (s *Snake) Positions() []types.Point {
	return append([]types.Point{s.Head.Pos}, s.BodyPositions()...)
}

// HeadOnBody reports whether the head shares a cell with a body segment.
func (s *Snake) HeadOnBody() bool {
	for _, c := range s.Body {
		if c.Pos == s.Head.Pos {
			return true
		}
	}
	return false
}

// Occupies reports whether p is the head or a body segment.
func (s *Snake) Occupies(p types.Point) bool {
	if s.Head.Pos == p {
		return true
	}
	for _, c := range s.Body {
		if c.Pos == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Queue returns the direction queue the snake steers by.
func (s *Snake) Queue() *input.DirectionQueue {
	return s.queue
}
