package ui

import (
	"fmt"
	"time"
)

// fakeSurface records draw calls and replays queued keys
type fakeSurface struct {
	calls  []string
	cells  map[[2]int]Glyph
	texts  map[int]string
	keys   chan Key
	shows  int
	closed int
}

func newFakeSurface(keys ...Key) *fakeSurface {
	f := &fakeSurface{
		cells: make(map[[2]int]Glyph),
		texts: make(map[int]string),
		keys:  make(chan Key, len(keys)+1),
	}
	for _, k := range keys {
		f.keys <- k
	}
	return f
}

func (f *fakeSurface) Clear() {
	f.calls = append(f.calls, "clear")
	f.cells = make(map[[2]int]Glyph)
	f.texts = make(map[int]string)
}

func (f *fakeSurface) Box() { f.calls = append(f.calls, "box") }

func (f *fakeSurface) SetCell(x, y int, g Glyph) {
	f.calls = append(f.calls, fmt.Sprintf("cell %d,%d %d", x, y, g))
	f.cells[[2]int{x, y}] = g
}

func (f *fakeSurface) Print(row, col int, text string) {
	f.calls = append(f.calls, "print")
	f.texts[row] = text
}

func (f *fakeSurface) Show() {
	f.calls = append(f.calls, "show")
	f.shows++
}

func (f *fakeSurface) PollKey(timeout time.Duration) (Key, bool) {
	select {
	case k := <-f.keys:
		return k, true
	case <-time.After(timeout):
		return KeyNone, false
	}
}

func (f *fakeSurface) Close() { f.closed++ }
