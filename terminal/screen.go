// Package terminal owns the raw terminal: the cell buffer the game renders
// into and the decoding of raw input into logical keys. Both are backed by
// tcell, which also acquires raw mode for the life of the screen and
// restores the previous mode when it is closed.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/gotris/game"
)

var colors = map[game.Color]tcell.Color{
	game.Black:  tcell.ColorBlack,
	game.Red:    tcell.ColorRed,
	game.Green:  tcell.ColorGreen,
	game.Orange: tcell.ColorOrange,
	game.Blue:   tcell.ColorBlue,
	game.Purple: tcell.ColorPurple,
	game.Cyan:   tcell.ColorDarkCyan,
	game.White:  tcell.ColorWhite,
}

// Screen adapts a tcell screen to the game's Display and KeySource
// contracts.
type Screen struct {
	screen tcell.Screen
}

func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.HideCursor()
	screen.Clear()
	return &Screen{screen: screen}, nil
}

// Close restores the terminal to its previous mode and unblocks any pending
// ReadKey.
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) SetText(text string, x, y int, fg, bg game.Color) {
	style := tcell.StyleDefault.
		Foreground(colors[fg]).
		Background(colors[bg])

	col := x
	for _, r := range text {
		s.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func (s *Screen) ClearBuffer() {
	s.screen.Clear()
}

func (s *Screen) Render() {
	s.screen.Show()
}

// ReadKey blocks until the next logical key. Resize and mouse events are
// absorbed here; ok is false once the screen has been finalized.
func (s *Screen) ReadKey() (game.KeyEvent, bool) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if key, ok := decodeKey(ev); ok {
				return key, true
			}
		case nil:
			return game.KeyEvent{}, false
		}
	}
}

func decodeKey(ev *tcell.EventKey) (game.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyEvent{Key: game.KeyUp}, true
	case tcell.KeyDown:
		return game.KeyEvent{Key: game.KeyDown}, true
	case tcell.KeyLeft:
		return game.KeyEvent{Key: game.KeyLeft}, true
	case tcell.KeyRight:
		return game.KeyEvent{Key: game.KeyRight}, true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return game.KeyEvent{Key: game.KeyCtrlC}, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return game.KeyEvent{Key: game.KeySpace}, true
		}
		return game.KeyEvent{Key: game.KeyChar, Char: ev.Rune()}, true
	}
	return game.KeyEvent{}, false
}
