package types

import "time"

// Game constants
const (
	GridWidth        = 20
	GridHeight       = 20
	TickPeriod       = 200 * time.Millisecond
	InputPollTimeout = 50 * time.Millisecond
	FoodMargin       = 3 // Minimum distance between food and the outer edge
)

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the play field used by the game
var DefaultGrid = Grid{Width: GridWidth, Height: GridHeight}

// Contains reports whether p lies in [0, Width) x [0, Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsBorder reports whether p is one of the wall cells framing the grid.
// Anything outside the grid counts as wall too.
func (g Grid) IsBorder(p Point) bool {
	return p.X <= 0 || p.X >= g.Width-1 || p.Y <= 0 || p.Y >= g.Height-1
}

// Center returns the middle cell of the grid
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Inset returns the inclusive corners of the region keeping margin cells
// away from every edge: margin <= x <= Width-margin, same for y.
func (g Grid) Inset(margin int) (min, max Point) {
	return Point{X: margin, Y: margin}, Point{X: g.Width - margin, Y: g.Height - margin}
}

// Direction represents a cardinal direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ToPoint converts a Direction into a movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cause records why a game stopped running
type Cause int

const (
	NoCause Cause = iota
	WallCollision
	SelfCollision
	Quit
	BoardFull
)

func (c Cause) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case Quit:
		return "quit"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}
