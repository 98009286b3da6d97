package ui

import (
	"errors"
	"fmt"
	"termsnake/game/types"
	"time"
)

// Screen placement of the play field, in character cells
const (
	FieldRow = 1
	FieldCol = 8
)

// helpText is printed below the play field
var helpText = []string{
	"  'wasd/hjkl' to control the snake.",
	"  'b' to toggle bot control.",
	"  'q' to quit.",
}

var (
	ErrNotTerminal      = errors.New("standard input is not a terminal")
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// Glyph is what occupies a play-field cell
type Glyph int

const (
	GlyphHead Glyph = iota
	GlyphBody
	GlyphFood
)

// Key is a single input event. Printable keys carry their rune, special
// keys use the negative constants below.
type Key rune

const (
	KeyNone Key = 0
)

const (
	KeyArrowUp Key = -1 - iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEscape
	KeyInterrupt
)

// KeySource delivers keys one at a time
type KeySource interface {
	// PollKey waits up to timeout for a key. ok is false when none arrived.
	PollKey(timeout time.Duration) (key Key, ok bool)
}

// Surface is the drawing and input device the game runs on. Field
// coordinates are relative to the play field, row/col to the whole screen.
type Surface interface {
	KeySource
	Clear()
	Box()
	SetCell(x, y int, g Glyph)
	Print(row, col int, text string)
	Show()
	// Close restores the device. It is safe to call more than once.
	Close()
}

// ScreenSize returns the character grid needed for the field, score line
// and help text.
func ScreenSize(grid types.Grid) (width, height int) {
	width = FieldCol + grid.Width
	for _, line := range helpText {
		if len(line) > width {
			width = len(line)
		}
	}
	height = grid.Height + 2 + len(helpText)
	return width, height
}

// CheckSize fails when a width x height screen cannot hold the game
func CheckSize(grid types.Grid, width, height int) error {
	needW, needH := ScreenSize(grid)
	if width < needW || height < needH {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTerminalTooSmall, width, height, needW, needH)
	}
	return nil
}
