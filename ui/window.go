package ui

import (
	"errors"
	"runtime"
	"sync"
	"termsnake/game/types"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	charWidth  = 10 // Pixel width of a text column
	rowHeight  = 20 // Pixel height of a text row and of a field cell
	fontSize   = 20
	windowFPS  = 60
	keyBacklog = 16
)

var ErrNoWindow = errors.New("could not open window")

type windowCell struct {
	x, y  int
	glyph Glyph
}

type windowText struct {
	row, col int
	text     string
}

// frame is one complete picture handed to the render thread
type frame struct {
	boxed bool
	cells []windowCell
	texts []windowText
}

// Window is a Surface drawn in a raylib window. raylib must be driven from
// a single OS thread, so all rl calls happen in loop; the Surface methods
// only build frames and read keys from a channel.
type Window struct {
	grid      types.Grid
	pending   frame
	frames    chan frame
	keys      chan Key
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewWindow(grid types.Grid) (*Window, error) {
	w := &Window{
		grid:   grid,
		frames: make(chan frame, 1),
		keys:   make(chan Key, keyBacklog),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	ready := make(chan error, 1)
	go w.loop(ready)
	if err := <-ready; err != nil {
		<-w.done
		return nil, err
	}
	return w, nil
}

func (w *Window) loop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	cols, rows := ScreenSize(w.grid)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32((cols+2)*charWidth), int32((rows+1)*rowHeight), "snake")
	if !rl.IsWindowReady() {
		ready <- ErrNoWindow
		return
	}
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(windowFPS)
	ready <- nil

	var current frame
	closing := false
	for {
		select {
		case <-w.stop:
			return
		case f := <-w.frames:
			current = f
		default:
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		w.draw(current)
		rl.EndDrawing()

		for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
			if key, ok := translateRaylibKey(k); ok {
				w.push(key)
			}
		}
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			w.push(Key(c))
		}
		if rl.WindowShouldClose() && !closing {
			closing = true
			w.push(KeyInterrupt)
		}
	}
}

func (w *Window) draw(f frame) {
	originX := int32(FieldCol * charWidth)
	originY := int32(FieldRow * rowHeight)

	if f.boxed {
		rl.DrawRectangleLines(originX, originY, int32(w.grid.Width*rowHeight), int32(w.grid.Height*rowHeight), rl.DarkGray)
	}
	for _, c := range f.cells {
		color := rl.Green
		switch c.glyph {
		case GlyphHead:
			color = rl.Lime
		case GlyphFood:
			color = rl.Red
		}
		rl.DrawRectangle(originX+int32(c.x*rowHeight), originY+int32(c.y*rowHeight), rowHeight, rowHeight, color)
	}
	for _, t := range f.texts {
		rl.DrawText(t.text, int32(t.col*charWidth), int32(t.row*rowHeight), fontSize, rl.RayWhite)
	}
}

func translateRaylibKey(k int32) (Key, bool) {
	switch k {
	case rl.KeyUp:
		return KeyArrowUp, true
	case rl.KeyDown:
		return KeyArrowDown, true
	case rl.KeyLeft:
		return KeyArrowLeft, true
	case rl.KeyRight:
		return KeyArrowRight, true
	case rl.KeyEscape:
		return KeyEscape, true
	}
	return KeyNone, false
}

// push drops the key when nobody is reading
func (w *Window) push(k Key) {
	select {
	case w.keys <- k:
	default:
	}
}

func (w *Window) Clear() {
	w.pending = frame{}
}

func (w *Window) Box() {
	w.pending.boxed = true
}

func (w *Window) SetCell(x, y int, g Glyph) {
	w.pending.cells = append(w.pending.cells, windowCell{x: x, y: y, glyph: g})
}

func (w *Window) Print(row, col int, text string) {
	w.pending.texts = append(w.pending.texts, windowText{row: row, col: col, text: text})
}

// Show hands the pending frame to the render thread, replacing any frame
// it has not picked up yet.
func (w *Window) Show() {
	f := w.pending
	select {
	case <-w.frames:
	default:
	}
	select {
	case w.frames <- f:
	default:
	}
}

func (w *Window) PollKey(timeout time.Duration) (Key, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-w.keys:
		return k, true
	case <-w.done:
		return KeyInterrupt, true
	case <-timer.C:
		return KeyNone, false
	}
}

func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.stop)
		<-w.done
	})
}
