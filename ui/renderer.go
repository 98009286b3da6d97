package ui

import (
	"fmt"
	"termsnake/game"
)

// Renderer redraws the whole screen from a snapshot every tick
type Renderer struct {
	surface Surface
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

func (r *Renderer) Draw(snap game.Snapshot) {
	s := r.surface
	s.Clear()
	s.Box()

	s.SetCell(snap.Head.X, snap.Head.Y, GlyphHead)
	s.SetCell(snap.Food.X, snap.Food.Y, GlyphFood)
	for _, p := range snap.Body {
		s.SetCell(p.X, p.Y, GlyphBody)
	}

	s.Print(0, 0, scoreLine(snap))
	for i, line := range helpText {
		s.Print(snap.Grid.Height+2+i, 0, line)
	}
	s.Show()
}

func scoreLine(snap game.Snapshot) string {
	line := fmt.Sprintf("score: %d", snap.Score)
	if snap.Autopilot {
		line += " [bot]"
	}
	if !snap.Running {
		line += fmt.Sprintf("  game over (%s)", snap.Cause)
	}
	return line
}
