package entity

import (
	"functional-snake/game/types"
)

// SegmentDrawer is anything that can blit one body segment.
type SegmentDrawer interface {
	DrawSegment(p types.Point)
}

// Snake keeps its body head-first: Body[0] is the head, new segments go on the end.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	cellSize  int
}

func NewSnake(startPos types.Point, cellSize int) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.DOWN,
		cellSize:  cellSize,
	}
}

// SetDirection records the facing used by the next Step. Reversing into the
// body is allowed.
func (s *Snake) SetDirection(dir types.Direction) {
	s.Direction = dir
}

// Step shifts every segment onto its predecessor's previous position, tail
// first, then moves the head one cell.
func (s *Snake) Step() {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction.ToPoint(s.cellSize))
}

// Grow appends a sentinel segment that real positions shift into on later steps.
func (s *Snake) Grow() {
	s.Body = append(s.Body, types.Sentinel)
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Length() int {
	return len(s.Body)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

func (s *Snake) Draw(d SegmentDrawer) {
	for _, p := range s.Body {
		d.DrawSegment(p)
	}
}
