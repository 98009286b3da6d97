package entity

import (
	"sync"
	"termsnake/game/types"
)

// Placeholder is where a freshly grown segment sits until the next
// propagation moves it behind its predecessor. It is a wall cell, so a
// live head can never match it.
var Placeholder = types.Point{X: 0, Y: 0}

// Segment is one body cell trailing the head
type Segment struct {
	Pos  types.Point
	Prev types.Point // Position held before the last propagation
}

// Snake is the whole player record. Mutex guards every field: the tick loop
// holds it while advancing, the input handler while applying a key.
type Snake struct {
	Head      types.Point
	Prev      types.Point
	Direction types.Direction
	Moved     types.Direction // Direction of the last Advance
	Running   bool
	Score     int
	Segments  []Segment
	Autopilot bool
	Cause     types.Cause
	Mutex     sync.RWMutex
}

func NewSnake(start types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head:      start,
		Prev:      start,
		Direction: dir,
		Moved:     dir,
		Running:   true,
		Segments:  make([]Segment, 0),
	}
}

// Turn changes the heading unless dir reverses either the current heading
// or the last move. It reports whether dir was taken.
func (s *Snake) Turn(dir types.Direction) bool {
	if dir == s.Direction.Opposite() || dir == s.Moved.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Advance records the current head as previous and moves one cell
func (s *Snake) Advance() {
	s.Prev = s.Head
	s.Head = s.Head.Add(s.Direction.ToPoint())
	s.Moved = s.Direction
}

// Grow appends a segment at the tail
func (s *Snake) Grow() {
	s.Segments = append(s.Segments, Segment{Pos: Placeholder, Prev: Placeholder})
}

// Follow moves every segment into the cell its predecessor held before this
// tick. The first segment follows the head's previous position.
func (s *Snake) Follow() {
	lead := s.Prev
	for i := range s.Segments {
		seg := &s.Segments[i]
		seg.Prev = seg.Pos
		seg.Pos = lead
		lead = seg.Prev
	}
}

// HitsBody reports whether p matches any segment
func (s *Snake) HitsBody(p types.Point) bool {
	for _, seg := range s.Segments {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// Occupies reports whether p is covered by the head or the body
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.HitsBody(p)
}

// Stop ends the run. The first cause recorded wins.
func (s *Snake) Stop(cause types.Cause) {
	s.Running = false
	if s.Cause == types.NoCause {
		s.Cause = cause
	}
}

// Body returns a copy of the segment positions from head to tail
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.Segments))
	for i, seg := range s.Segments {
		body[i] = seg.Pos
	}
	return body
}
