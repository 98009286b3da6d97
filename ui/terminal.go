package ui

import (
	"fmt"
	"os"
	"sync"
	"termsnake/game/types"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"golang.org/x/term"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	styleText    = styleDefault
)

var glyphs = map[Glyph]struct {
	r     rune
	style tcell.Style
}{
	GlyphHead: {tcell.RuneBlock, styleDefault.Foreground(tcell.ColorLime)},
	GlyphBody: {tcell.RuneBlock, styleDefault.Foreground(tcell.ColorGreen)},
	GlyphFood: {'*', styleDefault.Foreground(tcell.ColorRed)},
}

// Terminal is a Surface on a tcell screen. The play field is a viewport
// placed at FieldRow, FieldCol.
type Terminal struct {
	screen    tcell.Screen
	field     *views.ViewPort
	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// NewTerminal checks that stdin is a terminal large enough for grid, then
// switches it to raw mode with the cursor hidden.
func NewTerminal(grid types.Grid) (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	if err := CheckSize(grid, width, height); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newTerminal(screen, grid), nil
}

// newTerminal wraps an initialised screen
func newTerminal(screen tcell.Screen, grid types.Grid) *Terminal {
	screen.SetStyle(styleDefault)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		field:  views.NewViewPort(screen, FieldCol, FieldRow, grid.Width, grid.Height),
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Box draws a line border on the outermost cells of the play field
func (t *Terminal) Box() {
	w, h := t.field.Size()
	for x := 1; x < w-1; x++ {
		t.field.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		t.field.SetContent(x, h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y < h-1; y++ {
		t.field.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		t.field.SetContent(w-1, y, tcell.RuneVLine, nil, styleBorder)
	}
	t.field.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	t.field.SetContent(w-1, 0, tcell.RuneURCorner, nil, styleBorder)
	t.field.SetContent(0, h-1, tcell.RuneLLCorner, nil, styleBorder)
	t.field.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, styleBorder)
}

func (t *Terminal) SetCell(x, y int, g Glyph) {
	gl := glyphs[g]
	t.field.SetContent(x, y, gl.r, nil, gl.style)
}

func (t *Terminal) Print(row, col int, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(col+i, row, r, nil, styleText)
	}
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) PollKey(timeout time.Duration) (Key, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return KeyNone, false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if key, ok := translateKey(ev); ok {
					return key, true
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-timer.C:
			return KeyNone, false
		}
	}
}

func translateKey(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune()), true
	case tcell.KeyUp:
		return KeyArrowUp, true
	case tcell.KeyDown:
		return KeyArrowDown, true
	case tcell.KeyLeft:
		return KeyArrowLeft, true
	case tcell.KeyRight:
		return KeyArrowRight, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyCtrlC:
		return KeyInterrupt, true
	}
	return KeyNone, false
}

// Close leaves raw mode and restores the terminal
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}
